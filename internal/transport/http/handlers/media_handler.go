package handlers

import (
	"errors"
	"net/http"

	authsvc "github.com/provhatrahman/Ahwaaz/internal/services/auth"
	mediasvc "github.com/provhatrahman/Ahwaaz/internal/services/media"
	"github.com/provhatrahman/Ahwaaz/internal/transport/http/dto"
	httperrors "github.com/provhatrahman/Ahwaaz/internal/transport/http/errors"
)

const maxImageUploadSize = 10 << 20 // 10 MiB

type MediaHandler struct {
	service *mediasvc.Service
}

func NewMediaHandler(service *mediasvc.Service) *MediaHandler {
	return &MediaHandler{service: service}
}

func (h *MediaHandler) ImageUpload(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "MEDIA_SERVICE_UNAVAILABLE", "media service is unavailable")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageUploadSize)
	if err := r.ParseMultipartForm(maxImageUploadSize); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "file is required")
		return
	}
	defer file.Close()

	if header == nil || header.Size <= 0 {
		writeBadRequest(w, "VALIDATION_ERROR", "file is empty")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	image, err := h.service.UploadImage(r.Context(), identity.UserID, header.Filename, contentType, file, header.Size)
	if err != nil {
		handleMediaError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.ImageUploadResponse{
		ObjectKey: image.ObjectKey,
		URL:       image.URL,
	})
}

func handleMediaError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, mediasvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "unsupported or invalid image")
	case errors.Is(err, mediasvc.ErrTooLarge):
		httperrors.Write(w, http.StatusRequestEntityTooLarge, httperrors.APIError{
			Code:    "FILE_TOO_LARGE",
			Message: "uploaded file exceeds the size limit",
		})
	default:
		writeInternal(w, "INTERNAL_ERROR", "internal server error")
	}
}
