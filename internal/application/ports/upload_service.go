package ports

import (
	"context"
	"mime/multipart"

	"record-manager-api/internal/domain/image"
	"record-manager-api/internal/domain/user"
)

type UploadService interface {
	StoreSingle(ctx context.Context, userID user.ID, in *multipart.FileHeader) (*image.UserImage, error)
	// StoreBatch returns the number of files actually persisted; per-file
	// failures do not fail the batch.
	StoreBatch(ctx context.Context, userID user.ID, in []*multipart.FileHeader) (int, error)
}
