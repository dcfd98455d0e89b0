package user

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	FetchUsers(ctx context.Context) (Users, error)
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	CreateUser(ctx context.Context, username string) (*User, error)
	UpdateUser(ctx context.Context, id ID, username string) (*User, error)
	// DeleteUser runs inside the caller's transaction scope together with the
	// image-descriptor delete.
	DeleteUser(ctx context.Context, tx pgx.Tx, id ID) (int64, error)
}
