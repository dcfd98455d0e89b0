package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir(), zap.NewNop())
}

func TestStore_UserDir(t *testing.T) {
	s := New("/data/images", zap.NewNop())
	assert.Equal(t, filepath.Join("/data/images", "42"), s.UserDir(42))
}

func TestStore_EnsureUserDir_Idempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.EnsureUserDir(5))
	fi, err := os.Stat(s.UserDir(5))
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	// second call on an existing directory is a no-op
	require.NoError(t, s.EnsureUserDir(5))
}

func TestStore_WriteFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.EnsureUserDir(5))

	require.NoError(t, s.WriteFile(5, "a.jpg", []byte("one")))
	got, err := os.ReadFile(filepath.Join(s.UserDir(5), "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), got)

	// overwrite replaces content
	require.NoError(t, s.WriteFile(5, "a.jpg", []byte("two")))
	got, err = os.ReadFile(filepath.Join(s.UserDir(5), "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)
}

func TestStore_DeleteFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.EnsureUserDir(5))
	require.NoError(t, s.WriteFile(5, "a.jpg", []byte("x")))

	s.DeleteFile(5, "a.jpg")
	_, err := os.Stat(filepath.Join(s.UserDir(5), "a.jpg"))
	assert.True(t, os.IsNotExist(err))

	// an already-absent file is fine, including for users with no directory
	s.DeleteFile(5, "a.jpg")
	s.DeleteFile(404, "nope.jpg")
}

func TestStore_RemoveUserDir(t *testing.T) {
	t.Run("absent directory is success", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.RemoveUserDir(404))
	})

	t.Run("empty directory removed", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.EnsureUserDir(5))

		require.NoError(t, s.RemoveUserDir(5))
		_, err := os.Stat(s.UserDir(5))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("non-empty directory left in place", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.EnsureUserDir(5))
		require.NoError(t, s.WriteFile(5, "stray.jpg", []byte("x")))

		require.NoError(t, s.RemoveUserDir(5))
		fi, err := os.Stat(s.UserDir(5))
		require.NoError(t, err)
		assert.True(t, fi.IsDir())
	})
}
