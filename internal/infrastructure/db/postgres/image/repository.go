package image

import (
	"context"

	"github.com/jackc/pgx/v5"

	"record-manager-api/internal/domain/image"
	"record-manager-api/internal/domain/user"
	"record-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) image.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFilenames(ctx context.Context, userID user.ID) ([]string, error) {
	rows, err := r.db.Query(ctx, SelectFilenamesByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

func (r *Repository) CreateUserImage(ctx context.Context, req *image.UserImage) (*image.UserImage, error) {
	img := new(UserImage)

	err := r.db.QueryRow(
		ctx,
		InsertUserImage,
		req.UserID, req.Mimetype, req.Filename, req.Size,
	).Scan(
		&img.ID,
		&img.UserID,

		&img.Mimetype,
		&img.Filename,
		&img.Size,

		&img.DateModified,
		&img.DateCreated,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(img), err
}

func (r *Repository) DeleteUserImages(ctx context.Context, tx pgx.Tx, userID user.ID) (int64, error) {
	tag, err := tx.Exec(ctx, DeleteUserImagesByUser, userID)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
