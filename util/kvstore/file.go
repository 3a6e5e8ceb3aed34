package kvstore

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/tranvictor/monascii/common"
)

var log = common.GetLoggerEntry("kvstore")

// DefaultDir is where the CLI keeps its files unless told otherwise.
func DefaultDir() string {
	usr, err := user.Current()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ".monascii"
		}
		return filepath.Join(home, ".monascii")
	}
	return filepath.Join(usr.HomeDir, ".monascii")
}

// File stores each key as one document, <dir>/<key>.json. Writers hold an
// exclusive lock on <dir>/<key>.lock for the whole compare-and-swap and
// replace the document by renaming a fully written temp file, so readers
// always see either the old or the new content.
//
// The version of a document is the blake2b-256 hash of its bytes.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("couldn't create store dir %s: %w", dir, err)
	}
	return &File{dir: dir}, nil
}

func (f *File) Dir() string {
	return f.dir
}

func (f *File) docPath(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) lockFor(key string) *flock.Flock {
	return flock.New(filepath.Join(f.dir, key+".lock"))
}

func checkFileKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("key %q can't be used as a file name", key)
	}
	return nil
}

func contentVersion(content []byte) Version {
	sum := blake2b.Sum256(content)
	return Version(hex.EncodeToString(sum[:]))
}

func (f *File) read(key string) ([]byte, Version, error) {
	content, err := os.ReadFile(f.docPath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, NoVersion, ErrNotFound
	}
	if err != nil {
		return nil, NoVersion, err
	}
	return content, contentVersion(content), nil
}

// syncFile and syncDir are replaced in tests.
var (
	syncFile = func(file *os.File) error { return file.Sync() }
	syncDir  = func(dir string) error {
		if runtime.GOOS == "windows" {
			// directories can't be opened for syncing there
			return nil
		}
		d, err := os.Open(dir)
		if err != nil {
			return err
		}
		defer d.Close()
		return d.Sync()
	}
)

// write replaces the document. The temp file is flushed to disk before the
// rename and the directory after it, so a crash leaves either the old or the
// new document, never an empty one.
func (f *File) write(key string, value []byte) (Version, error) {
	tmp := filepath.Join(f.dir, fmt.Sprintf(".%s.%s.tmp", key, uuid.NewString()))
	file, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return NoVersion, err
	}
	if _, err := file.Write(value); err != nil {
		file.Close()
		os.Remove(tmp)
		return NoVersion, err
	}
	if err := syncFile(file); err != nil {
		file.Close()
		os.Remove(tmp)
		return NoVersion, fmt.Errorf("couldn't sync %s: %w", tmp, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return NoVersion, err
	}
	if err := os.Rename(tmp, f.docPath(key)); err != nil {
		os.Remove(tmp)
		return NoVersion, err
	}
	if err := syncDir(f.dir); err != nil {
		return NoVersion, fmt.Errorf("couldn't sync %s: %w", f.dir, err)
	}
	return contentVersion(value), nil
}

func (f *File) Get(key string) ([]byte, Version, error) {
	if err := checkFileKey(key); err != nil {
		return nil, NoVersion, err
	}
	lock := f.lockFor(key)
	if err := lock.RLock(); err != nil {
		return nil, NoVersion, fmt.Errorf("couldn't lock %s: %w", key, err)
	}
	defer lock.Unlock()

	return f.read(key)
}

func (f *File) Set(key string, value []byte) error {
	if err := checkFileKey(key); err != nil {
		return err
	}
	lock := f.lockFor(key)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("couldn't lock %s: %w", key, err)
	}
	defer lock.Unlock()

	_, err := f.write(key, value)
	return err
}

func (f *File) CompareAndSwap(key string, expected Version, value []byte) (Version, error) {
	if err := checkFileKey(key); err != nil {
		return NoVersion, err
	}
	lock := f.lockFor(key)
	if err := lock.Lock(); err != nil {
		return NoVersion, fmt.Errorf("couldn't lock %s: %w", key, err)
	}
	defer lock.Unlock()

	_, current, err := f.read(key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return NoVersion, err
	}
	if current != expected {
		log.WithField("key", key).Debug("version moved under us")
		return NoVersion, ErrVersionConflict
	}
	return f.write(key, value)
}

func (f *File) Close() error {
	return nil
}
