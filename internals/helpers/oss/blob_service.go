// file: internals/helpers/oss/blob_service.go
package osshelper

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"steam_backend/internals/configs"
	"steam_backend/internals/constants"
)

// BlobService is what controllers upload through.
type BlobService interface {
	UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

type OSSBlobService struct {
	svc  *OSSService
	opts WebPOptions
}

func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s, opts: DefaultWebPOptions()}, nil
}

func (b *OSSBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if err := CheckImageHeader(fh); err != nil {
		return "", err
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := ConvertToWebP(src, b.opts)
	if err != nil {
		if errors.Is(err, ErrUnsupportedImage) {
			return "", fiber.NewError(fiber.StatusUnsupportedMediaType, ErrUnsupportedImage.Error())
		}
		return "", err
	}
	base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	return b.svc.PutWebP(ctx, dir, base, data)
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := ExtractKey(b.svc.PublicBase, publicURL)
	if err != nil {
		return err
	}
	return b.svc.DeleteObject(ctx, key)
}

// CheckImageHeader rejects missing, oversized or non-image uploads before any decoding.
func CheckImageHeader(fh *multipart.FileHeader) error {
	if fh == nil {
		return fiber.NewError(fiber.StatusBadRequest, "image file is required")
	}
	if fh.Size > constants.MaxGalleryImageBytes {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "image exceeds 10MB")
	}
	if !constants.IsGalleryImage(fh.Filename) {
		return fiber.NewError(fiber.StatusUnsupportedMediaType, ErrUnsupportedImage.Error())
	}
	return nil
}

func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

// ImageFiles collects every file sent under the given form fields.
func ImageFiles(c *fiber.Ctx, fields ...string) ([]*multipart.FileHeader, error) {
	if !IsMultipart(c) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "use multipart/form-data")
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid multipart form")
	}
	var out []*multipart.FileHeader
	for _, f := range fields {
		out = append(out, form.File[f]...)
	}
	return out, nil
}

// MockBlobService is a BlobService for tests.
type MockBlobService struct {
	UploadImageFn       func(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error)
	DeleteByPublicURLFn func(ctx context.Context, publicURL string) error
}

func (m *MockBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if m.UploadImageFn == nil {
		return "", errors.New("not implemented")
	}
	return m.UploadImageFn(ctx, dir, fh)
}

func (m *MockBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if m.DeleteByPublicURLFn == nil {
		return errors.New("not implemented")
	}
	return m.DeleteByPublicURLFn(ctx, publicURL)
}

// DisabledBlobService answers 503 when object storage is not configured.
type DisabledBlobService struct{}

func (DisabledBlobService) UploadImage(context.Context, string, *multipart.FileHeader) (string, error) {
	return "", fiber.NewError(fiber.StatusServiceUnavailable, "image storage is not configured")
}

func (DisabledBlobService) DeleteByPublicURL(context.Context, string) error {
	return fiber.NewError(fiber.StatusServiceUnavailable, "image storage is not configured")
}

// BlobFromEnv builds the OSS-backed service, or a disabled one when OSS is not configured.
func BlobFromEnv(feature string) BlobService {
	oss, err := NewOSSBlobServiceFromEnv(configs.GetEnv("ALI_OSS_PREFIX", "steam"))
	if err != nil {
		configs.Log.Warn(feature+": uploads disabled", zap.Error(err))
		return DisabledBlobService{}
	}
	return oss
}
