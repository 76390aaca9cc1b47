package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
	artistssvc "github.com/provhatrahman/Ahwaaz/internal/services/artists"
	authsvc "github.com/provhatrahman/Ahwaaz/internal/services/auth"
	"github.com/provhatrahman/Ahwaaz/internal/transport/http/dto"
	httperrors "github.com/provhatrahman/Ahwaaz/internal/transport/http/errors"
)

type ArtistHandler struct {
	service *artistssvc.Service
}

func NewArtistHandler(service *artistssvc.Service) *ArtistHandler {
	return &ArtistHandler{service: service}
}

func (h *ArtistHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "ARTIST_SERVICE_UNAVAILABLE", "artist service is unavailable")
		return
	}

	var req dto.ArtistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	artist, err := h.service.Create(r.Context(), identity.UserID, artistInput(req))
	if err != nil {
		handleArtistError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, artist)
}

func (h *ArtistHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "ARTIST_SERVICE_UNAVAILABLE", "artist service is unavailable")
		return
	}

	artistID := strings.TrimSpace(chi.URLParam(r, "id"))
	if artistID == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "artist id is required")
		return
	}

	// Unauthenticated viewers only see published profiles.
	callerID := ""
	if identity, ok := authsvc.IdentityFromContext(r.Context()); ok {
		callerID = identity.UserID
	}

	artist, err := h.service.Get(r.Context(), callerID, artistID)
	if err != nil {
		handleArtistError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, artist)
}

func (h *ArtistHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "ARTIST_SERVICE_UNAVAILABLE", "artist service is unavailable")
		return
	}

	artistID := strings.TrimSpace(chi.URLParam(r, "id"))
	if artistID == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "artist id is required")
		return
	}

	var req dto.ArtistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	artist, err := h.service.Update(r.Context(), identity.UserID, artistID, artistInput(req))
	if err != nil {
		handleArtistError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, artist)
}

func (h *ArtistHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, true)
}

func (h *ArtistHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, false)
}

func (h *ArtistHandler) setPublished(w http.ResponseWriter, r *http.Request, published bool) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "ARTIST_SERVICE_UNAVAILABLE", "artist service is unavailable")
		return
	}

	artistID := strings.TrimSpace(chi.URLParam(r, "id"))
	if artistID == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "artist id is required")
		return
	}

	if err := h.service.SetPublished(r.Context(), identity.UserID, artistID, published); err != nil {
		handleArtistError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.PublishResponse{ID: artistID, IsPublished: published})
}

func (h *ArtistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "ARTIST_SERVICE_UNAVAILABLE", "artist service is unavailable")
		return
	}

	artistID := strings.TrimSpace(chi.URLParam(r, "id"))
	if artistID == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "artist id is required")
		return
	}

	if err := h.service.Delete(r.Context(), identity.UserID, artistID); err != nil {
		handleArtistError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.OKResponse{OK: true})
}

func (h *ArtistHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "ARTIST_SERVICE_UNAVAILABLE", "artist service is unavailable")
		return
	}

	artists, err := h.service.ListMine(r.Context(), identity.UserID)
	if err != nil {
		handleArtistError(w, err)
		return
	}
	if artists == nil {
		artists = []model.Artist{}
	}

	httperrors.Write(w, http.StatusOK, dto.ArtistListResponse{Artists: artists, Count: len(artists)})
}

func artistInput(req dto.ArtistRequest) artistssvc.Input {
	return artistssvc.Input{
		Name:               req.Name,
		Email:              req.Email,
		LocationCity:       req.LocationCity,
		LocationCountry:    req.LocationCountry,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		PrimaryPractice:    req.PrimaryPractice,
		SecondaryPractices: req.SecondaryPractices,
		StyleGenre:         req.StyleGenre,
		EthnicBackground:   req.EthnicBackground,
		Bio:                req.Bio,
		ImageURL:           req.ImageURL,
		ImagePositionX:     req.ImagePositionX,
		ImagePositionY:     req.ImagePositionY,
		ImageScale:         req.ImageScale,
		ContactMethod:      req.ContactMethod,
		PortfolioWebsite:   req.PortfolioWebsite,
		PortfolioInstagram: req.PortfolioInstagram,
		CustomLinks:        req.CustomLinks,
		IsPublished:        req.IsPublished,
	}
}

func handleArtistError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, artistssvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
	case errors.Is(err, artistssvc.ErrForbidden):
		writeForbidden(w, "FORBIDDEN", "you do not own this artist profile")
	case errors.Is(err, artistssvc.ErrNotFound):
		writeNotFound(w, "NOT_FOUND", "artist not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "internal server error")
	}
}
