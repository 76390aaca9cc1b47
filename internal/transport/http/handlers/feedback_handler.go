package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
	authsvc "github.com/provhatrahman/Ahwaaz/internal/services/auth"
	feedbacksvc "github.com/provhatrahman/Ahwaaz/internal/services/feedback"
	"github.com/provhatrahman/Ahwaaz/internal/transport/http/dto"
	httperrors "github.com/provhatrahman/Ahwaaz/internal/transport/http/errors"
)

type FeedbackHandler struct {
	service *feedbacksvc.Service
}

func NewFeedbackHandler(service *feedbacksvc.Service) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "FEEDBACK_SERVICE_UNAVAILABLE", "feedback service is unavailable")
		return
	}

	var req dto.FeedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	feedback, err := h.service.Submit(r.Context(), identity.UserID, feedbacksvc.SubmitInput{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleFeedbackError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, feedback)
}

// List is admin-only; the router gates it behind RequireRole.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "FEEDBACK_SERVICE_UNAVAILABLE", "feedback service is unavailable")
		return
	}

	query := r.URL.Query()
	limit := defaultModerationListLimit
	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeBadRequest(w, "VALIDATION_ERROR", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	items, err := h.service.List(r.Context(), strings.TrimSpace(query.Get("status")), limit)
	if err != nil {
		handleFeedbackError(w, err)
		return
	}
	if items == nil {
		items = []model.Feedback{}
	}

	httperrors.Write(w, http.StatusOK, dto.FeedbackListResponse{Feedback: items, Count: len(items)})
}

// SetStatus is admin-only; the router gates it behind RequireRole.
func (h *FeedbackHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "FEEDBACK_SERVICE_UNAVAILABLE", "feedback service is unavailable")
		return
	}

	feedbackID := strings.TrimSpace(chi.URLParam(r, "id"))
	if feedbackID == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "feedback id is required")
		return
	}

	var req dto.StatusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.SetStatus(r.Context(), feedbackID, req.Status); err != nil {
		handleFeedbackError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.OKResponse{OK: true})
}

func handleFeedbackError(w http.ResponseWriter, err error) {
	var rateLimited *feedbacksvc.RateLimitedError

	switch {
	case errors.As(err, &rateLimited):
		httperrors.WriteRateLimited(w, rateLimited.RetryAfterSec)
	case errors.Is(err, feedbacksvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
	case errors.Is(err, feedbacksvc.ErrNotFound):
		writeNotFound(w, "NOT_FOUND", "feedback not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "internal server error")
	}
}
