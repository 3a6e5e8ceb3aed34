// Package kvstore is the durable byte storage behind the mint cache.
//
// Every backend supports a compare-and-swap write so that several processes
// sharing one store (two terminals minting from the same machine) never
// silently drop each other's updates.
package kvstore

import "errors"

var (
	ErrNotFound        = errors.New("key not found")
	ErrVersionConflict = errors.New("stored value changed since it was read")
	ErrEmptyKey        = errors.New("empty key")
)

// Version identifies one stored value of a key. It is opaque to callers and
// only meaningful to the backend that produced it.
type Version string

// NoVersion is the version of a key that has never been written.
const NoVersion Version = ""

type Store interface {
	// Get returns the value and its version, or ErrNotFound.
	Get(key string) ([]byte, Version, error)
	// Set writes value unconditionally.
	Set(key string, value []byte) error
	// CompareAndSwap writes value only if the key is still at expected
	// (NoVersion: still absent). It returns the new version, or
	// ErrVersionConflict leaving the stored value untouched.
	CompareAndSwap(key string, expected Version, value []byte) (Version, error)
	Close() error
}
