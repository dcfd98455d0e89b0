package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/im7mortal/kmutex"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"

	"record-manager-api/internal/application/ports"
	"record-manager-api/internal/domain/image"
	domain "record-manager-api/internal/domain/user"
	"record-manager-api/internal/infrastructure/mq"
	"record-manager-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository  domain.Repository
	imageRepository image.Repository
	files           ports.FileStore
	tx              ports.TxRunner
	userLocks       *kmutex.Kmutex
	mq              ports.RabbitMQ
	mCounter        *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	imageRepository image.Repository,
	files ports.FileStore,
	tx ports.TxRunner,
	userLocks *kmutex.Kmutex,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository:  userRepository,
		imageRepository: imageRepository,
		files:           files,
		tx:              tx,
		userLocks:       userLocks,
		mq:              mq,
		mCounter:        mCounter,
	}
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	uRet, err := us.userRepository.CreateUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.publishEvent(http.MethodPost, uRet)
	}

	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserService) UpdateUser(ctx context.Context, id domain.ID, username string) (*domain.User, error) {
	uRet, err := us.userRepository.UpdateUser(ctx, id, username)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.publishEvent(http.MethodPatch, uRet)
	}

	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

// DeleteUser removes a user's files, directory and metadata rows as one
// logical cascade. Filesystem deletions happen before the metadata
// transaction commits and are never compensated: a crash in between leaves
// orphan descriptor rows, which stay visible through reads rather than being
// silently repaired. The method returns only once the commit outcome is
// known, so the caller's response reflects it.
func (us *UserService) DeleteUser(ctx context.Context, id domain.ID) error {
	us.userLocks.Lock(id)
	defer us.userLocks.Unlock(id)

	// fetched up front so the deletion event can carry the final row state
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return err
	}

	// read-then-act: the enumeration is not isolated from the deletes below,
	// only the per-user lock keeps concurrent uploads out
	names, err := us.imageRepository.FetchFilenames(ctx, id)
	if err != nil {
		return err
	}

	for _, name := range names {
		us.files.DeleteFile(id, name)
	}
	if err = us.files.RemoveUserDir(id); err != nil {
		return err
	}

	if err = us.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		if _, err := us.imageRepository.DeleteUserImages(ctx, tx, id); err != nil {
			return fmt.Errorf("delete image descriptors: %w", err)
		}
		if _, err := us.userRepository.DeleteUser(ctx, tx, id); err != nil {
			return fmt.Errorf("delete user record: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}

	if u != nil {
		us.publishEvent(http.MethodDelete, u)
	}

	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}

func (us *UserService) publishEvent(method string, u *domain.User) {
	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  method,
		UserID:  strconv.FormatInt(int64(u.ID), 10),
		Payload: user.ToResponseUser(*u),
	}
}
