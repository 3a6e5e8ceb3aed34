package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	BackendFile    = "file"
	BackendBolt    = "bolt"
	BackendLevelDB = "leveldb"
	BackendMemory  = "memory"
)

var Backends = []string{BackendFile, BackendBolt, BackendLevelDB, BackendMemory}

// Open returns the backend named by backend rooted at dir.
func Open(backend, dir string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendFile, "":
		f, err := NewFile(dir)
		if err != nil {
			return nil, err
		}
		return f, nil
	case BackendBolt:
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("couldn't create store dir %s: %w", dir, err)
		}
		b, err := OpenBolt(filepath.Join(dir, "cache.bolt"))
		if err != nil {
			return nil, err
		}
		return b, nil
	case BackendLevelDB:
		l, err := OpenLevelDB(filepath.Join(dir, "cache.ldb"))
		if err != nil {
			return nil, err
		}
		return l, nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf(
			"unknown store backend %q, valid values: %s",
			backend, strings.Join(Backends, ", "),
		)
	}
}
