package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/im7mortal/kmutex"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"record-manager-api/internal/application/ports"
	"record-manager-api/internal/domain/image"
	domain "record-manager-api/internal/domain/user"
)

// MaxBatchFiles caps one multi-file request; anything past the cap is ignored.
const MaxBatchFiles = 3

// storedExt is appended to every generated filename regardless of the actual
// content type, dropping the original extension. Inherited behavior, kept on
// purpose: consumers may depend on the on-disk names.
const storedExt = ".jpg"

type UploadService struct {
	userRepository  domain.Repository
	imageRepository image.Repository
	files           ports.FileStore
	userLocks       *kmutex.Kmutex
	mCounter        *prometheus.CounterVec
	logger          *zap.Logger
}

func NewUploadService(
	userRepository domain.Repository,
	imageRepository image.Repository,
	files ports.FileStore,
	userLocks *kmutex.Kmutex,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.UploadService {
	return &UploadService{
		userRepository:  userRepository,
		imageRepository: imageRepository,
		files:           files,
		userLocks:       userLocks,
		mCounter:        mCounter,
		logger:          logger,
	}
}

// StoreSingle ingests one uploaded file for an existing user: ensure the
// user's directory, write the bytes under a generated name, record the
// descriptor row. The per-user lock is held from before the existence check,
// so a deletion cascade cannot run between the check and the write. A failure
// after the write leaves the file in place; the orphan is observable on disk,
// no compensation is attempted.
func (s *UploadService) StoreSingle(
	ctx context.Context,
	userID domain.ID,
	in *multipart.FileHeader,
) (*image.UserImage, error) {
	s.userLocks.Lock(userID)
	defer s.userLocks.Unlock(userID)

	u, err := s.userRepository.FetchUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}

	data, err := readPayload(in)
	if err != nil {
		return nil, err
	}

	if err = s.files.EnsureUserDir(userID); err != nil {
		return nil, fmt.Errorf("ensure user directory: %w", err)
	}

	stem, err := randomStem()
	if err != nil {
		return nil, err
	}
	filename := stem + storedExt

	if err = s.files.WriteFile(userID, filename, data); err != nil {
		return nil, fmt.Errorf("write image file: %w", err)
	}

	img, err := s.imageRepository.CreateUserImage(ctx, &image.UserImage{
		UserID:   userID,
		Filename: filename,
		Mimetype: in.Header.Get("Content-Type"),
		Size:     in.Size,
	})
	if err != nil {
		s.logger.Warn("image descriptor insert failed, file left on disk",
			zap.Int64("user_id", int64(userID)),
			zap.String("filename", filename),
			zap.Error(err),
		)
		return nil, err
	}

	s.mCounter.WithLabelValues("images_stored_total").Inc()

	return img, nil
}

// StoreBatch ingests up to MaxBatchFiles files for one user. The existence
// check runs once for the whole batch, under the same per-user lock as the
// writes it gates; each file is then processed
// independently in submission order, and one file's failure never fails the
// others. The returned count is the number of files actually persisted.
func (s *UploadService) StoreBatch(
	ctx context.Context,
	userID domain.ID,
	in []*multipart.FileHeader,
) (int, error) {
	if len(in) > MaxBatchFiles {
		in = in[:MaxBatchFiles]
	}

	s.userLocks.Lock(userID)
	defer s.userLocks.Unlock(userID)

	u, err := s.userRepository.FetchUserByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if u == nil {
		return 0, domain.ErrNotFound
	}

	stored := 0
	for _, fh := range in {
		if err := s.storeBatchFile(ctx, userID, fh); err != nil {
			s.logger.Warn("batch file not stored",
				zap.Int64("user_id", int64(userID)),
				zap.String("upload_name", fh.Filename),
				zap.Error(err),
			)
			s.mCounter.WithLabelValues("image_store_failures_total").Inc()
			continue
		}
		stored++
	}

	return stored, nil
}

func (s *UploadService) storeBatchFile(
	ctx context.Context,
	userID domain.ID,
	in *multipart.FileHeader,
) error {
	// idempotent, cheap to repeat per file
	if err := s.files.EnsureUserDir(userID); err != nil {
		return fmt.Errorf("ensure user directory: %w", err)
	}

	data, err := readPayload(in)
	if err != nil {
		return err
	}

	filename := uuid.New().String() + storedExt
	if err = s.files.WriteFile(userID, filename, data); err != nil {
		return fmt.Errorf("write image file: %w", err)
	}

	if _, err = s.imageRepository.CreateUserImage(ctx, &image.UserImage{
		UserID:   userID,
		Filename: filename,
		Mimetype: in.Header.Get("Content-Type"),
		Size:     in.Size,
	}); err != nil {
		return err
	}

	s.mCounter.WithLabelValues("images_stored_total").Inc()

	return nil
}

func readPayload(in *multipart.FileHeader) ([]byte, error) {
	f, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// randomStem mirrors the shape of a multipart temp-file name: 16 random
// bytes, hex encoded.
func randomStem() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
