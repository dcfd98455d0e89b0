package image

import (
	"time"
)

type UserImage struct {
	ID           int64      `json:"Id"`
	UserID       int64      `json:"UserId"`
	Mimetype     string     `json:"Mimetype"`
	Filename     string     `json:"Filename"`
	Size         int64      `json:"Size"`
	DateModified *time.Time `json:"DateModified"`
	DateCreated  time.Time  `json:"DateCreated"`
}
