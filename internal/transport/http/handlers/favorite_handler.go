package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	authsvc "github.com/provhatrahman/Ahwaaz/internal/services/auth"
	favoritessvc "github.com/provhatrahman/Ahwaaz/internal/services/favorites"
	"github.com/provhatrahman/Ahwaaz/internal/transport/http/dto"
	httperrors "github.com/provhatrahman/Ahwaaz/internal/transport/http/errors"
)

type FavoriteHandler struct {
	service *favoritessvc.Service
}

func NewFavoriteHandler(service *favoritessvc.Service) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "FAVORITES_SERVICE_UNAVAILABLE", "favorites service is unavailable")
		return
	}

	ids, err := h.service.List(r.Context(), identity.UserID)
	if err != nil {
		handleFavoriteError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	httperrors.Write(w, http.StatusOK, dto.FavoritesResponse{ArtistIDs: ids})
}

func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "FAVORITES_SERVICE_UNAVAILABLE", "favorites service is unavailable")
		return
	}

	var req dto.FavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.Add(r.Context(), identity.UserID, req.ArtistID); err != nil {
		handleFavoriteError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.OKResponse{OK: true})
}

// AddByPath is the artist-scoped variant of Add, taking the artist id
// from the URL instead of the body.
func (h *FavoriteHandler) AddByPath(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "FAVORITES_SERVICE_UNAVAILABLE", "favorites service is unavailable")
		return
	}

	artistID := strings.TrimSpace(chi.URLParam(r, "artist_id"))
	if artistID == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "artist id is required")
		return
	}

	if err := h.service.Add(r.Context(), identity.UserID, artistID); err != nil {
		handleFavoriteError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.OKResponse{OK: true})
}

func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "FAVORITES_SERVICE_UNAVAILABLE", "favorites service is unavailable")
		return
	}

	artistID := strings.TrimSpace(chi.URLParam(r, "artist_id"))
	if artistID == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "artist id is required")
		return
	}

	if err := h.service.Remove(r.Context(), identity.UserID, artistID); err != nil {
		handleFavoriteError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.OKResponse{OK: true})
}

func handleFavoriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, favoritessvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
	case errors.Is(err, favoritessvc.ErrNotFound):
		writeNotFound(w, "NOT_FOUND", "artist not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "internal server error")
	}
}
