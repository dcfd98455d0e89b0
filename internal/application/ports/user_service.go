package ports

import (
	"context"

	"record-manager-api/internal/domain/user"
)

type UserService interface {
	FindUsers(ctx context.Context) (user.Users, error)
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	CreateUser(ctx context.Context, username string) (*user.User, error)
	UpdateUser(ctx context.Context, id user.ID, username string) (*user.User, error)
	DeleteUser(ctx context.Context, id user.ID) error
}
