package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	imgDomain "record-manager-api/internal/domain/image"
	domain "record-manager-api/internal/domain/user"
	imgDto "record-manager-api/internal/interface/api/rest/dto/image"
)

type FakeUploadService struct {
	StoreSingleFunc func(ctx context.Context, userID domain.ID, in *multipart.FileHeader) (*imgDomain.UserImage, error)
	StoreBatchFunc  func(ctx context.Context, userID domain.ID, in []*multipart.FileHeader) (int, error)
}

func (f *FakeUploadService) StoreSingle(
	ctx context.Context,
	userID domain.ID,
	in *multipart.FileHeader,
) (*imgDomain.UserImage, error) {
	if f.StoreSingleFunc == nil {
		return nil, errors.New("not used")
	}
	return f.StoreSingleFunc(ctx, userID, in)
}

func (f *FakeUploadService) StoreBatch(
	ctx context.Context,
	userID domain.ID,
	in []*multipart.FileHeader,
) (int, error) {
	if f.StoreBatchFunc == nil {
		return 0, errors.New("not used")
	}
	return f.StoreBatchFunc(ctx, userID, in)
}

func setupUploadRouter(svc *FakeUploadService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewUploadController(r, svc, zap.NewNop())

	return r
}

type filePart struct {
	name    string
	ctype   string
	content []byte
}

func doMultipartReq(
	t *testing.T,
	r http.Handler,
	path string,
	fields map[string]string,
	files []filePart,
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, fp := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="files"; filename=%q`, fp.name))
		h.Set("Content-Type", fp.ctype)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(fp.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func TestUploadSingleFileHandler(t *testing.T) {
	png := filePart{name: "cat.png", ctype: "image/png", content: []byte("png bytes")}

	t.Run("missing UserId", func(t *testing.T) {
		w := doMultipartReq(t, setupUploadRouter(&FakeUploadService{}),
			RouteUploadSingleFile, nil, []filePart{png})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "UserId id must be a positive integer")
	})

	t.Run("missing file", func(t *testing.T) {
		w := doMultipartReq(t, setupUploadRouter(&FakeUploadService{}),
			RouteUploadSingleFile, map[string]string{"UserId": "5"}, nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "file is required")
	})

	t.Run("empty file rejected", func(t *testing.T) {
		empty := filePart{name: "cat.png", ctype: "image/png", content: nil}
		w := doMultipartReq(t, setupUploadRouter(&FakeUploadService{}),
			RouteUploadSingleFile, map[string]string{"UserId": "5"}, []filePart{empty})

		require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("unknown user is a 200 with the contract message", func(t *testing.T) {
		svc := &FakeUploadService{
			StoreSingleFunc: func(ctx context.Context, userID domain.ID, in *multipart.FileHeader) (*imgDomain.UserImage, error) {
				return nil, domain.ErrNotFound
			},
		}
		w := doMultipartReq(t, setupUploadRouter(svc),
			RouteUploadSingleFile, map[string]string{"UserId": "404"}, []filePart{png})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Record does not exist")
	})

	t.Run("service failure", func(t *testing.T) {
		svc := &FakeUploadService{
			StoreSingleFunc: func(ctx context.Context, userID domain.ID, in *multipart.FileHeader) (*imgDomain.UserImage, error) {
				return nil, errors.New("disk full")
			},
		}
		w := doMultipartReq(t, setupUploadRouter(svc),
			RouteUploadSingleFile, map[string]string{"UserId": "5"}, []filePart{png})

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "failed to store a file")
	})

	t.Run("success answers the stored descriptor", func(t *testing.T) {
		svc := &FakeUploadService{
			StoreSingleFunc: func(ctx context.Context, userID domain.ID, in *multipart.FileHeader) (*imgDomain.UserImage, error) {
				require.Equal(t, domain.ID(5), userID)
				require.Equal(t, "cat.png", in.Filename)
				return &imgDomain.UserImage{
					ID:       1,
					UserID:   userID,
					Filename: "deadbeef.jpg",
					Mimetype: "image/png",
					Size:     in.Size,
				}, nil
			},
		}
		w := doMultipartReq(t, setupUploadRouter(svc),
			RouteUploadSingleFile, map[string]string{"UserId": "5"}, []filePart{png})

		require.Equal(t, http.StatusOK, w.Code)
		var resp imgDto.UserImage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(5), resp.UserID)
		assert.Equal(t, "deadbeef.jpg", resp.Filename)
		assert.Equal(t, "image/png", resp.Mimetype)
		assert.Equal(t, int64(len(png.content)), resp.Size)
	})
}

func TestUploadMultipleFilesHandler(t *testing.T) {
	parts := []filePart{
		{name: "a.png", ctype: "image/png", content: []byte("a")},
		{name: "b.png", ctype: "image/png", content: []byte("b")},
	}

	t.Run("missing UserId", func(t *testing.T) {
		w := doMultipartReq(t, setupUploadRouter(&FakeUploadService{}),
			RouteUploadMultipleFiles, nil, parts)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "UserId id must be a positive integer")
	})

	t.Run("no files", func(t *testing.T) {
		w := doMultipartReq(t, setupUploadRouter(&FakeUploadService{}),
			RouteUploadMultipleFiles, map[string]string{"UserId": "5"}, nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "files are required")
	})

	t.Run("empty file rejected like the single path", func(t *testing.T) {
		withEmpty := []filePart{
			parts[0],
			{name: "empty.png", ctype: "image/png", content: nil},
		}
		w := doMultipartReq(t, setupUploadRouter(&FakeUploadService{}),
			RouteUploadMultipleFiles, map[string]string{"UserId": "5"}, withEmpty)

		require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "file too large or empty")
	})

	t.Run("unknown user is a 200 with the contract message", func(t *testing.T) {
		svc := &FakeUploadService{
			StoreBatchFunc: func(ctx context.Context, userID domain.ID, in []*multipart.FileHeader) (int, error) {
				return 0, domain.ErrNotFound
			},
		}
		w := doMultipartReq(t, setupUploadRouter(svc),
			RouteUploadMultipleFiles, map[string]string{"UserId": "404"}, parts)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Record does not exist")
	})

	t.Run("service failure", func(t *testing.T) {
		svc := &FakeUploadService{
			StoreBatchFunc: func(ctx context.Context, userID domain.ID, in []*multipart.FileHeader) (int, error) {
				return 0, errors.New("db down")
			},
		}
		w := doMultipartReq(t, setupUploadRouter(svc),
			RouteUploadMultipleFiles, map[string]string{"UserId": "5"}, parts)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "failed to store files")
	})

	t.Run("reports the persisted count, not the submitted one", func(t *testing.T) {
		svc := &FakeUploadService{
			StoreBatchFunc: func(ctx context.Context, userID domain.ID, in []*multipart.FileHeader) (int, error) {
				require.Equal(t, domain.ID(5), userID)
				require.Len(t, in, 2)
				return 1, nil
			},
		}
		w := doMultipartReq(t, setupUploadRouter(svc),
			RouteUploadMultipleFiles, map[string]string{"UserId": "5"}, parts)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Successfully uploaded 1 files")
	})
}
