package image

import (
	"record-manager-api/internal/domain/image"
)

func ToResponseUserImage(imgDomain image.UserImage) UserImage {
	var img = UserImage{
		ID:           imgDomain.ID,
		UserID:       int64(imgDomain.UserID),
		Mimetype:     imgDomain.Mimetype,
		Filename:     imgDomain.Filename,
		Size:         imgDomain.Size,
		DateModified: imgDomain.DateModified,
		DateCreated:  imgDomain.DateCreated,
	}

	return img
}
