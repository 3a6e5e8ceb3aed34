// Package mintcache remembers, per wallet address, which art pieces were
// minted and under which transaction, so a gallery can be shown without
// asking a chain indexer.
//
// The whole address -> records mapping lives under one key of a
// kvstore.Store. Appends read the mapping, change only the active address's
// entry, and write it back with a compare-and-swap against the version they
// read, retrying from scratch when another writer got there first.
package mintcache

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avast/retry-go"
	"github.com/sirupsen/logrus"

	"github.com/tranvictor/monascii/common"
	"github.com/tranvictor/monascii/util/kvstore"
)

const (
	DefaultKey         = "monascii-cache"
	DefaultMaxAttempts = 10
	DefaultRetryDelay  = 20 * time.Millisecond
)

type AddressCache struct {
	mu       sync.Mutex
	store    kvstore.Store
	key      string
	attempts uint
	delay    time.Duration
	log      *logrus.Entry
}

type Option func(*AddressCache)

// WithKey changes the store key the mapping is kept under.
func WithKey(key string) Option {
	return func(c *AddressCache) {
		c.key = key
	}
}

// WithMaxAttempts bounds how many times Append retries on conflicts.
func WithMaxAttempts(n uint) Option {
	return func(c *AddressCache) {
		if n > 0 {
			c.attempts = n
		}
	}
}

func WithRetryDelay(d time.Duration) Option {
	return func(c *AddressCache) {
		c.delay = d
	}
}

func WithLogger(log *logrus.Entry) Option {
	return func(c *AddressCache) {
		c.log = log
	}
}

func New(store kvstore.Store, opts ...Option) *AddressCache {
	c := &AddressCache{
		store:    store,
		key:      DefaultKey,
		attempts: DefaultMaxAttempts,
		delay:    DefaultRetryDelay,
		log:      common.GetLoggerEntry("mintcache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *AddressCache) read() (*blob, kvstore.Version, error) {
	raw, version, err := c.store.Get(c.key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return newBlob(), kvstore.NoVersion, nil
	}
	if err != nil {
		return nil, kvstore.NoVersion, fmt.Errorf("reading mint cache: %w", err)
	}
	b, err := parseBlob(raw)
	if err != nil {
		return nil, kvstore.NoVersion, err
	}
	return b, version, nil
}

// Load returns the records of address, newest first. An address that never
// minted, or a store that was never written, gives an empty slice.
func (c *AddressCache) Load(address string) ([]MintRecord, error) {
	addr := NormalizeAddress(address)
	if addr == "" {
		return nil, ErrNoAddress
	}
	b, _, err := c.read()
	if err != nil {
		return nil, err
	}
	return b.records(addr)
}

// Append puts record in front of address's records, persists the whole
// mapping and returns the updated records. Nothing is written when the
// stored mapping is corrupt.
func (c *AddressCache) Append(address string, record MintRecord) ([]MintRecord, error) {
	addr := NormalizeAddress(address)
	if addr == "" {
		return nil, ErrNoAddress
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var result []MintRecord
	err := retry.Do(
		func() error {
			b, version, err := c.read()
			if err != nil {
				return err
			}
			records, err := b.records(addr)
			if err != nil {
				return err
			}
			updated := make([]MintRecord, 0, len(records)+1)
			updated = append(updated, record)
			updated = append(updated, records...)
			if err := b.put(addr, updated); err != nil {
				return err
			}
			data, err := b.bytes()
			if err != nil {
				return err
			}
			if _, err := c.store.CompareAndSwap(c.key, version, data); err != nil {
				return err
			}
			result = updated
			return nil
		},
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.MaxDelay(500*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, kvstore.ErrVersionConflict)
		}),
		retry.OnRetry(func(n uint, err error) {
			c.log.WithFields(logrus.Fields{
				"address": addr,
				"attempt": n + 1,
			}).Debug("mint cache changed while appending, retrying")
		}),
	)
	if errors.Is(err, kvstore.ErrVersionConflict) {
		return nil, fmt.Errorf("%w after %d attempts: %w", ErrTooManyConflicts, c.attempts, err)
	}
	if err != nil {
		return nil, err
	}
	c.log.WithFields(logrus.Fields{
		"address": addr,
		"tx":      record.TxID,
		"count":   len(result),
	}).Info("mint recorded")
	return result, nil
}
