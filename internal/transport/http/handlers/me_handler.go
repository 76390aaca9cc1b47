package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	authsvc "github.com/provhatrahman/Ahwaaz/internal/services/auth"
	userssvc "github.com/provhatrahman/Ahwaaz/internal/services/users"
	"github.com/provhatrahman/Ahwaaz/internal/transport/http/dto"
	httperrors "github.com/provhatrahman/Ahwaaz/internal/transport/http/errors"
)

type MeHandler struct {
	service *userssvc.Service
}

func NewMeHandler(service *userssvc.Service) *MeHandler {
	return &MeHandler{service: service}
}

func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "USER_SERVICE_UNAVAILABLE", "user service is unavailable")
		return
	}

	profile, err := h.service.Me(r.Context(), identity.UserID)
	if err != nil {
		handleUserError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, profile)
}

func (h *MeHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "USER_SERVICE_UNAVAILABLE", "user service is unavailable")
		return
	}

	var req dto.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.UpdateProfile(r.Context(), identity.UserID, req.FullName); err != nil {
		handleUserError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.OKResponse{OK: true})
}

func (h *MeHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "USER_SERVICE_UNAVAILABLE", "user service is unavailable")
		return
	}

	var req dto.ThemeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.SetTheme(r.Context(), identity.UserID, req.Theme); err != nil {
		handleUserError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.OKResponse{OK: true})
}

func (h *MeHandler) Tour(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "USER_SERVICE_UNAVAILABLE", "user service is unavailable")
		return
	}

	tour := strings.TrimSpace(chi.URLParam(r, "name"))
	if tour == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "tour name is required")
		return
	}

	completed, err := h.service.TourCompleted(r.Context(), identity.UserID, tour)
	if err != nil {
		handleUserError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.TourResponse{Tour: tour, Completed: completed})
}

func (h *MeHandler) SetTour(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "USER_SERVICE_UNAVAILABLE", "user service is unavailable")
		return
	}

	tour := strings.TrimSpace(chi.URLParam(r, "name"))
	if tour == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "tour name is required")
		return
	}

	var req dto.TourRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.SetTourCompleted(r.Context(), identity.UserID, tour, req.Completed); err != nil {
		handleUserError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.TourResponse{Tour: tour, Completed: req.Completed})
}

func (h *MeHandler) Preferences(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "USER_SERVICE_UNAVAILABLE", "user service is unavailable")
		return
	}

	prefs, err := h.service.Preferences(r.Context(), identity.UserID)
	if err != nil {
		handleUserError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, prefs)
}

func (h *MeHandler) SetPreferences(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "USER_SERVICE_UNAVAILABLE", "user service is unavailable")
		return
	}

	var req dto.PreferencesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	update := userssvc.Preferences{Theme: req.Theme, Tours: req.Tours}
	if err := h.service.UpdatePreferences(r.Context(), identity.UserID, update); err != nil {
		handleUserError(w, err)
		return
	}

	prefs, err := h.service.Preferences(r.Context(), identity.UserID)
	if err != nil {
		handleUserError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, prefs)
}

func (h *MeHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "USER_SERVICE_UNAVAILABLE", "user service is unavailable")
		return
	}

	if err := h.service.DeleteAccount(r.Context(), identity.UserID); err != nil {
		handleUserError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.OKResponse{OK: true})
}

func handleUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, userssvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
	case errors.Is(err, userssvc.ErrNotFound):
		writeNotFound(w, "NOT_FOUND", "user not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "internal server error")
	}
}
