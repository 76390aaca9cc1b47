package media

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

var (
	ErrValidation = errors.New("validation error")
	ErrTooLarge   = errors.New("file too large")
)

const signedURLTTL = 24 * time.Hour

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	PutImage(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// Service stores profile images. The returned URL goes straight onto the
// artist record's image_url.
type Service struct {
	storage  ObjectStorage
	maxBytes int64
	now      func() time.Time
}

type Image struct {
	ObjectKey string
	URL       string
}

func NewService(storage ObjectStorage, maxBytes int64) *Service {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}

	return &Service{
		storage:  storage,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

func (s *Service) UploadImage(ctx context.Context, userID, fileName, contentType string, body io.Reader, size int64) (Image, error) {
	if strings.TrimSpace(userID) == "" || body == nil || size <= 0 {
		return Image{}, ErrValidation
	}
	if size > s.maxBytes {
		return Image{}, ErrTooLarge
	}
	if s.storage == nil {
		return Image{}, fmt.Errorf("media storage is not configured")
	}

	contentType = strings.TrimSpace(contentType)
	if !allowedImageTypes[contentType] {
		return Image{}, fmt.Errorf("unsupported content type %q: %w", contentType, ErrValidation)
	}

	if err := s.storage.EnsureBucket(ctx); err != nil {
		return Image{}, fmt.Errorf("ensure bucket: %w", err)
	}

	objectKey, err := buildImageObjectKey(userID, fileName, s.now())
	if err != nil {
		return Image{}, fmt.Errorf("build object key: %w", err)
	}

	if err := s.storage.PutImage(ctx, objectKey, body, size, contentType); err != nil {
		return Image{}, fmt.Errorf("put object: %w", err)
	}

	url, err := s.storage.PresignGet(ctx, objectKey, signedURLTTL)
	if err != nil {
		_ = s.storage.Delete(ctx, objectKey)
		return Image{}, fmt.Errorf("presign image url: %w", err)
	}

	return Image{ObjectKey: objectKey, URL: url}, nil
}

func buildImageObjectKey(userID, fileName string, at time.Time) (string, error) {
	rnd := make([]byte, 8)
	if _, err := rand.Read(rnd); err != nil {
		return "", err
	}

	ext := strings.ToLower(path.Ext(strings.TrimSpace(fileName)))
	if ext == "" {
		ext = ".bin"
	}

	stamp := at.UTC().Format("20060102T150405")
	return fmt.Sprintf("users/%s/images/%s_%s%s", userID, stamp, hex.EncodeToString(rnd), ext), nil
}
