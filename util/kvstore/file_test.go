package kvstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubSync(t *testing.T, file func(*os.File) error, dir func(string) error) {
	t.Helper()
	oldFile, oldDir := syncFile, syncDir
	syncFile, syncDir = file, dir
	t.Cleanup(func() { syncFile, syncDir = oldFile, oldDir })
}

func TestFileWriteSyncsBeforeAndAfterRename(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFile(dir)
	require.NoError(t, err)

	var steps []string
	stubSync(t,
		func(f *os.File) error {
			// the document must not be in place yet
			_, err := os.Stat(filepath.Join(dir, "monascii-cache.json"))
			assert.True(t, errors.Is(err, os.ErrNotExist))
			steps = append(steps, "file:"+filepath.Ext(f.Name()))
			return f.Sync()
		},
		func(d string) error {
			raw, err := os.ReadFile(filepath.Join(d, "monascii-cache.json"))
			require.NoError(t, err)
			assert.Equal(t, `{"0xb":[]}`, string(raw))
			steps = append(steps, "dir")
			return nil
		},
	)

	_, err = s.CompareAndSwap("monascii-cache", NoVersion, []byte(`{"0xb":[]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"file:.tmp", "dir"}, steps)
}

func TestFailedSyncKeepsOldDocument(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("monascii-cache", []byte(`{"0xb":[{"art":"(^_^)"}]}`)))

	diskErr := errors.New("i/o error")
	stubSync(t, func(*os.File) error { return diskErr }, syncDir)

	_, v, err := s.Get("monascii-cache")
	require.NoError(t, err)
	_, err = s.CompareAndSwap("monascii-cache", v, []byte(`{"0xa":[]}`))
	require.ErrorIs(t, err, diskErr)

	raw, _, err := s.Get("monascii-cache")
	require.NoError(t, err)
	assert.Equal(t, `{"0xb":[{"art":"(^_^)"}]}`, string(raw))

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}
