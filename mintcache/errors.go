package mintcache

import "errors"

var (
	// ErrCorruptStore means the persisted mapping exists but can't be parsed.
	// It is reported instead of being reset, since resetting would throw
	// away the user's mint history.
	ErrCorruptStore = errors.New("mint cache is corrupt")
	// ErrNoAddress means no wallet address was given.
	ErrNoAddress = errors.New("no wallet address")
	// ErrTooManyConflicts means other writers kept changing the store
	// while an append was trying to land.
	ErrTooManyConflicts = errors.New("mint cache kept changing under concurrent writers")
)
