package kvstore

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"go.etcd.io/bbolt"
)

var (
	bucketValues   = []byte("values")
	bucketVersions = []byte("versions")
)

// Bolt keeps values in a bbolt file. bbolt allows a single writer at a time
// and takes a file lock on open, so CompareAndSwap runs its check and its
// write in one Update transaction.
type Bolt struct {
	db *bbolt.DB
}

func OpenBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt store: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketValues, bucketVersions} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("creating bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Bolt{db: db}, nil
}

func boltVersion(tx *bbolt.Tx, key []byte) (uint64, bool) {
	raw := tx.Bucket(bucketVersions).Get(key)
	if len(raw) != 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(raw), true
}

func boltPut(tx *bbolt.Tx, key, value []byte) (Version, error) {
	next, _ := boltVersion(tx, key)
	next++
	if err := tx.Bucket(bucketValues).Put(key, value); err != nil {
		return NoVersion, err
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], next)
	if err := tx.Bucket(bucketVersions).Put(key, buf[:]); err != nil {
		return NoVersion, err
	}
	return Version(strconv.FormatUint(next, 10)), nil
}

func (b *Bolt) Get(key string) ([]byte, Version, error) {
	if key == "" {
		return nil, NoVersion, ErrEmptyKey
	}
	var (
		value   []byte
		version = NoVersion
	)
	err := b.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketValues).Get([]byte(key))
		if raw == nil {
			return ErrNotFound
		}
		// bbolt values are only valid for the life of the transaction
		value = append([]byte{}, raw...)
		if v, ok := boltVersion(tx, []byte(key)); ok {
			version = Version(strconv.FormatUint(v, 10))
		}
		return nil
	})
	if err != nil {
		return nil, NoVersion, err
	}
	return value, version, nil
}

func (b *Bolt) Set(key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		_, err := boltPut(tx, []byte(key), value)
		return err
	})
}

func (b *Bolt) CompareAndSwap(key string, expected Version, value []byte) (Version, error) {
	if key == "" {
		return NoVersion, ErrEmptyKey
	}
	var next Version
	err := b.db.Update(func(tx *bbolt.Tx) error {
		current := NoVersion
		if tx.Bucket(bucketValues).Get([]byte(key)) != nil {
			v, _ := boltVersion(tx, []byte(key))
			current = Version(strconv.FormatUint(v, 10))
		}
		if current != expected {
			return ErrVersionConflict
		}
		var err error
		next, err = boltPut(tx, []byte(key), value)
		return err
	})
	if err != nil {
		return NoVersion, err
	}
	return next, nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
