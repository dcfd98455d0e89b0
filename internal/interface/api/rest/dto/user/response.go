package user

import (
	"time"
)

type (
	User struct {
		ID           int64      `json:"Id"`
		Username     string     `json:"Username"`
		DateModified *time.Time `json:"DateModified"`
		DateCreated  time.Time  `json:"DateCreated"`
	}
	Users []User

	// ListResponse wraps reads; data always holds a list, absent single
	// reads answer with an empty one.
	ListResponse struct {
		Message string `json:"message"`
		Data    Users  `json:"data"`
	}
	CreateResponse struct {
		Message string `json:"message"`
		Data    User   `json:"data"`
		ID      int64  `json:"id"`
	}
	UpdateResponse struct {
		Message string `json:"message"`
		ID      int64  `json:"id"`
		Changes int64  `json:"changes"`
	}
	MessageResponse struct {
		Message string `json:"message"`
	}
)
