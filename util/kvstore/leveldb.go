package kvstore

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"

	"github.com/syndtr/goleveldb/leveldb"
)

// LevelDB keeps values in a goleveldb directory. Writes go through a
// leveldb transaction, which excludes every other writer until it commits.
type LevelDB struct {
	db *leveldb.DB
}

func OpenLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("opening leveldb store: %w", err)
	}
	return &LevelDB{db: db}, nil
}

func valueKey(key string) []byte   { return []byte("value/" + key) }
func versionKey(key string) []byte { return []byte("version/" + key) }

func levelVersion(get func([]byte) ([]byte, error), key string) (uint64, bool, error) {
	raw, err := get(versionKey(key))
	if errors.Is(err, leveldb.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if len(raw) != 8 {
		return 0, false, fmt.Errorf("bad version record for %s", key)
	}
	return binary.BigEndian.Uint64(raw), true, nil
}

func (l *LevelDB) Get(key string) ([]byte, Version, error) {
	if key == "" {
		return nil, NoVersion, ErrEmptyKey
	}
	snap, err := l.db.GetSnapshot()
	if err != nil {
		return nil, NoVersion, err
	}
	defer snap.Release()

	value, err := snap.Get(valueKey(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, NoVersion, ErrNotFound
	}
	if err != nil {
		return nil, NoVersion, err
	}
	v, _, err := levelVersion(func(k []byte) ([]byte, error) { return snap.Get(k, nil) }, key)
	if err != nil {
		return nil, NoVersion, err
	}
	return value, Version(strconv.FormatUint(v, 10)), nil
}

func (l *LevelDB) Set(key string, value []byte) error {
	_, err := l.write(key, value, nil)
	return err
}

func (l *LevelDB) CompareAndSwap(key string, expected Version, value []byte) (Version, error) {
	return l.write(key, value, &expected)
}

// write puts value under key inside one transaction; when expected is not
// nil the current version must match it.
func (l *LevelDB) write(key string, value []byte, expected *Version) (Version, error) {
	if key == "" {
		return NoVersion, ErrEmptyKey
	}
	tr, err := l.db.OpenTransaction()
	if err != nil {
		return NoVersion, err
	}
	get := func(k []byte) ([]byte, error) { return tr.Get(k, nil) }

	v, found, err := levelVersion(get, key)
	if err != nil {
		tr.Discard()
		return NoVersion, err
	}
	if expected != nil {
		current := NoVersion
		if _, err := tr.Get(valueKey(key), nil); err == nil {
			current = Version(strconv.FormatUint(v, 10))
		} else if !errors.Is(err, leveldb.ErrNotFound) {
			tr.Discard()
			return NoVersion, err
		}
		if current != *expected {
			tr.Discard()
			return NoVersion, ErrVersionConflict
		}
	}
	if !found {
		v = 0
	}
	v++

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	if err := tr.Put(valueKey(key), value, nil); err != nil {
		tr.Discard()
		return NoVersion, err
	}
	if err := tr.Put(versionKey(key), buf[:], nil); err != nil {
		tr.Discard()
		return NoVersion, err
	}
	if err := tr.Commit(); err != nil {
		return NoVersion, err
	}
	return Version(strconv.FormatUint(v, 10)), nil
}

func (l *LevelDB) Close() error {
	return l.db.Close()
}
