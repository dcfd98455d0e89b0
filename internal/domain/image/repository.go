package image

import (
	"context"

	"github.com/jackc/pgx/v5"

	"record-manager-api/internal/domain/user"
)

type Repository interface {
	FetchFilenames(ctx context.Context, userID user.ID) ([]string, error)
	CreateUserImage(ctx context.Context, req *UserImage) (*UserImage, error)
	// DeleteUserImages runs inside the caller's transaction scope together
	// with the user-row delete.
	DeleteUserImages(ctx context.Context, tx pgx.Tx, userID user.ID) (int64, error)
}
