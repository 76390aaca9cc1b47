package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
	authsvc "github.com/provhatrahman/Ahwaaz/internal/services/auth"
	reportssvc "github.com/provhatrahman/Ahwaaz/internal/services/reports"
	"github.com/provhatrahman/Ahwaaz/internal/transport/http/dto"
	httperrors "github.com/provhatrahman/Ahwaaz/internal/transport/http/errors"
)

const defaultModerationListLimit = 50

type ReportHandler struct {
	service *reportssvc.Service
}

func NewReportHandler(service *reportssvc.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "REPORT_SERVICE_UNAVAILABLE", "report service is unavailable")
		return
	}

	var req dto.ReportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	report, err := h.service.Submit(r.Context(), identity.UserID, reportssvc.SubmitInput{
		ArtistID:    req.ArtistID,
		Reason:      req.Reason,
		Description: req.Description,
	})
	if err != nil {
		handleReportError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, report)
}

// List is admin-only; the router gates it behind RequireRole.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "REPORT_SERVICE_UNAVAILABLE", "report service is unavailable")
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

	reports, err := h.service.List(r.Context(), strings.TrimSpace(query.Get("status")), limit)
	if err != nil {
		handleReportError(w, err)
		return
	}
	if reports == nil {
		reports = []model.Report{}
	}

	httperrors.Write(w, http.StatusOK, dto.ReportListResponse{Reports: reports, Count: len(reports)})
}

// SetStatus is admin-only; the router gates it behind RequireRole.
func (h *ReportHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "REPORT_SERVICE_UNAVAILABLE", "report service is unavailable")
		return
	}

	reportID := strings.TrimSpace(chi.URLParam(r, "id"))
	if reportID == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "report id is required")
		return
	}

	var req dto.StatusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.SetStatus(r.Context(), reportID, req.Status); err != nil {
		handleReportError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.OKResponse{OK: true})
}

func handleReportError(w http.ResponseWriter, err error) {
	var rateLimited *reportssvc.RateLimitedError

	switch {
	case errors.As(err, &rateLimited):
		httperrors.WriteRateLimited(w, rateLimited.RetryAfterSec)
	case errors.Is(err, reportssvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
	case errors.Is(err, reportssvc.ErrArtistNotFound):
		writeNotFound(w, "NOT_FOUND", "artist not found")
	case errors.Is(err, reportssvc.ErrNotFound):
		writeNotFound(w, "NOT_FOUND", "report not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "internal server error")
	}
}
