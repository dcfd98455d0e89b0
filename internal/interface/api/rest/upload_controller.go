package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"record-manager-api/internal/application/ports"
	domain "record-manager-api/internal/domain/user"
	"record-manager-api/internal/interface/api/rest/dto/image"
	"record-manager-api/internal/interface/api/rest/dto/user"
	"record-manager-api/internal/interface/api/rest/validator"
)

// 10MB
const maxSize = int64(10 << 20)

// uploads target an existing user; an unknown id is answered with 200 and
// this message, not a 404. Contract text, do not reword.
const msgRecordMissing = "Record does not exist"

type UploadController struct {
	uploadService ports.UploadService
	logger        *zap.Logger
}

func NewUploadController(
	r *gin.Engine,
	uploadService ports.UploadService,
	logger *zap.Logger,
) *UploadController {
	upc := &UploadController{
		uploadService: uploadService,
		logger:        logger,
	}

	r.POST(RouteUploadSingleFile, upc.UploadSingleFileHandler)
	r.POST(RouteUploadMultipleFiles, upc.UploadMultipleFilesHandler)

	return upc
}

func (upc *UploadController) UploadSingleFileHandler(c *gin.Context) {
	userID, err := validator.ValidateID(c.PostForm("UserId"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "UserId " + err.Error()},
		)
		return
	}

	fh, err := c.FormFile("files")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
		return
	}

	img, err := upc.uploadService.StoreSingle(c.Request.Context(), userID, fh)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusOK, user.MessageResponse{Message: msgRecordMissing})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to store a file"},
		)
		upc.logger.Error("StoreSingle() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, image.ToResponseUserImage(*img))
}

// UploadMultipleFilesHandler accepts up to three files and reports how many
// were actually persisted; a partial batch is still a 200.
func (upc *UploadController) UploadMultipleFilesHandler(c *gin.Context) {
	userID, err := validator.ValidateID(c.PostForm("UserId"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "UserId " + err.Error()},
		)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "files are required"})
		return
	}
	for _, fh := range files {
		if fh.Size <= 0 || fh.Size > maxSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
			return
		}
	}

	stored, err := upc.uploadService.StoreBatch(c.Request.Context(), userID, files)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusOK, user.MessageResponse{Message: msgRecordMissing})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to store files"},
		)
		upc.logger.Error("StoreBatch() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, user.MessageResponse{
		Message: fmt.Sprintf("Successfully uploaded %d files", stored),
	})
}
