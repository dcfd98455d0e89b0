package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"record-manager-api/internal/domain/user"
	"record-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUsers(ctx context.Context) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u := new(User)

		if err = rows.Scan(
			&u.ID,
			&u.Username,
			&u.DateModified,
			&u.DateCreated,
		); err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, id).Scan(
		&u.ID,
		&u.Username,
		&u.DateModified,
		&u.DateCreated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) CreateUser(ctx context.Context, username string) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(ctx, InsertUser, username).Scan(
		&u.ID,
		&u.Username,
		&u.DateModified,
		&u.DateCreated,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) UpdateUser(ctx context.Context, id user.ID, username string) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(ctx, UpdateUserByID, username, id).Scan(
		&u.ID,
		&u.Username,
		&u.DateModified,
		&u.DateCreated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) DeleteUser(ctx context.Context, tx pgx.Tx, id user.ID) (int64, error) {
	tag, err := tx.Exec(ctx, DeleteUserByID, id)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
