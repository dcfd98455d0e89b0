package ports

import (
	"record-manager-api/internal/domain/user"
)

type FileStore interface {
	EnsureUserDir(id user.ID) error
	WriteFile(id user.ID, filename string, data []byte) error
	DeleteFile(id user.ID, filename string)
	RemoveUserDir(id user.ID) error
}
