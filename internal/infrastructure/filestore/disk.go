package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"go.uber.org/zap"

	"record-manager-api/internal/domain/user"
)

// Store keeps image bytes on local disk, one directory per user id under root.
// Files are named exactly as recorded in the user_images rows.
type Store struct {
	root   string
	logger *zap.Logger
}

func New(root string, logger *zap.Logger) *Store {
	return &Store{
		root:   root,
		logger: logger,
	}
}

func (s *Store) UserDir(id user.ID) string {
	return filepath.Join(s.root, strconv.FormatInt(int64(id), 10))
}

// EnsureUserDir is idempotent: it creates the user's directory with any
// missing parents and never errors on pre-existence.
func (s *Store) EnsureUserDir(id user.ID) error {
	return os.MkdirAll(s.UserDir(id), 0o755)
}

func (s *Store) WriteFile(id user.ID, filename string, data []byte) error {
	return os.WriteFile(filepath.Join(s.UserDir(id), filename), data, 0o644)
}

// DeleteFile is best-effort: an already-absent file is success, anything else
// is logged and swallowed. Callers cannot distinguish "deleted" from
// "failed-but-ignored" except through the log.
func (s *Store) DeleteFile(id user.ID, filename string) {
	path := filepath.Join(s.UserDir(id), filename)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("delete image file failed",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}

// RemoveUserDir removes the user's (expected-empty) directory. An absent or
// non-empty directory is tolerated; any other error is propagated. Note the
// asymmetry with DeleteFile, which suppresses everything.
func (s *Store) RemoveUserDir(id user.ID) error {
	dir := s.UserDir(id)
	err := os.Remove(dir)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case errors.Is(err, syscall.ENOTEMPTY):
		s.logger.Warn("user directory not empty, leaving in place", zap.String("dir", dir))
		return nil
	default:
		return fmt.Errorf("remove user directory %s: %w", dir, err)
	}
}
