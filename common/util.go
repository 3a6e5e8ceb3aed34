package common

import (
	"errors"
	"sync"
)

// RunParallel runs every fn in its own goroutine and waits for all of them.
// It returns how many failed and their errors joined together.
func RunParallel(funcs ...func() error) (int, error) {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, fn := range funcs {
		wg.Add(1)
		go func(fn func() error) {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(fn)
	}
	wg.Wait()
	return len(errs), errors.Join(errs...)
}
