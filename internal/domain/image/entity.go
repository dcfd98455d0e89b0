package image

import (
	"time"

	"record-manager-api/internal/domain/user"
)

// UserImage describes one stored image file: the metadata row backing a file
// under the owning user's directory. UserID is a logical reference only, it is
// checked at ingestion time and not enforced by a foreign key.
type (
	UserImage struct {
		ID     int64
		UserID user.ID

		Filename string
		Mimetype string
		Size     int64

		DateCreated  time.Time
		DateModified *time.Time
	}
	UserImages []*UserImage
)
