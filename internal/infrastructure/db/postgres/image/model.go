package image

import (
	"time"
)

type (
	UserImage struct {
		ID     int64
		UserID int64

		Mimetype string
		Filename string
		Size     int64

		DateModified *time.Time
		DateCreated  time.Time
	}
	UserImages []*UserImage
)
