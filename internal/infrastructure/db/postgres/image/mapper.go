package image

import (
	domain "record-manager-api/internal/domain/image"
	"record-manager-api/internal/domain/user"
)

func fromDBModel(model *UserImage) *domain.UserImage {
	var img = &domain.UserImage{
		ID:     model.ID,
		UserID: user.ID(model.UserID),

		Filename: model.Filename,
		Mimetype: model.Mimetype,
		Size:     model.Size,

		DateCreated:  model.DateCreated,
		DateModified: model.DateModified,
	}

	return img
}
