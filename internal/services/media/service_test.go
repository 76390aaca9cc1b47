package media

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

type fakeStorage struct {
	putKeys     []string
	presignErr  error
	deleteCalls int
}

func (f *fakeStorage) EnsureBucket(_ context.Context) error {
	return nil
}

func (f *fakeStorage) PutImage(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
	f.putKeys = append(f.putKeys, key)
	return nil
}

func (f *fakeStorage) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return "https://signed.local/" + key, nil
}

func (f *fakeStorage) Delete(_ context.Context, _ string) error {
	f.deleteCalls++
	return nil
}

func TestUploadImage(t *testing.T) {
	storage := &fakeStorage{}
	svc := NewService(storage, 1<<20)

	image, err := svc.UploadImage(context.Background(), "user-1", "portrait.jpg", "image/jpeg", strings.NewReader("abc"), 3)
	if err != nil {
		t.Fatalf("upload image: %v", err)
	}

	if !strings.HasPrefix(image.ObjectKey, "users/user-1/images/") {
		t.Fatalf("unexpected object key: %s", image.ObjectKey)
	}
	if !strings.HasSuffix(image.ObjectKey, ".jpg") {
		t.Fatalf("object key should keep the extension: %s", image.ObjectKey)
	}
	if image.URL != "https://signed.local/"+image.ObjectKey {
		t.Fatalf("unexpected url: %s", image.URL)
	}
}

func TestUploadImageRejectsOversize(t *testing.T) {
	svc := NewService(&fakeStorage{}, 10)

	_, err := svc.UploadImage(context.Background(), "user-1", "big.png", "image/png", strings.NewReader("x"), 11)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestUploadImageRejectsNonImageContentType(t *testing.T) {
	svc := NewService(&fakeStorage{}, 1<<20)

	_, err := svc.UploadImage(context.Background(), "user-1", "doc.pdf", "application/pdf", strings.NewReader("x"), 1)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUploadImageCleansUpOnPresignFailure(t *testing.T) {
	storage := &fakeStorage{presignErr: errors.New("boom")}
	svc := NewService(storage, 1<<20)

	if _, err := svc.UploadImage(context.Background(), "user-1", "portrait.jpg", "image/jpeg", strings.NewReader("abc"), 3); err == nil {
		t.Fatalf("expected presign error")
	}
	if storage.deleteCalls != 1 {
		t.Fatalf("expected cleanup delete call, got %d", storage.deleteCalls)
	}
}
