package user

import (
	"time"
)

type (
	User struct {
		ID       int64
		Username string

		DateModified *time.Time
		DateCreated  time.Time
	}
	Users []*User
)
