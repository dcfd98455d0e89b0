package user

import (
	"errors"
	"time"
)

// ErrNotFound is returned by operations that require an existing user row,
// e.g. attaching an upload to a user id that was never created.
var ErrNotFound = errors.New("user record does not exist")

type (
	ID   int64
	User struct {
		ID       ID
		Username string

		DateCreated  time.Time
		DateModified *time.Time
	}
	Users []*User
)
