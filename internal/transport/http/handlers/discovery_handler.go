package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/provhatrahman/Ahwaaz/internal/domain/enums"
	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
	authsvc "github.com/provhatrahman/Ahwaaz/internal/services/auth"
	discoverysvc "github.com/provhatrahman/Ahwaaz/internal/services/discovery"
	"github.com/provhatrahman/Ahwaaz/internal/transport/http/dto"
	httperrors "github.com/provhatrahman/Ahwaaz/internal/transport/http/errors"
)

const defaultListLimit = 100

type DiscoveryHandler struct {
	service *discoverysvc.Service
}

func NewDiscoveryHandler(service *discoverysvc.Service) *DiscoveryHandler {
	return &DiscoveryHandler{service: service}
}

func (h *DiscoveryHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "DISCOVERY_SERVICE_UNAVAILABLE", "discovery service is unavailable")
		return
	}

	query := r.URL.Query()
	filters := filtersFromQuery(query)

	callerID := ""
	if identity, ok := authsvc.IdentityFromContext(r.Context()); ok {
		callerID = identity.UserID
	}

	limit := defaultListLimit
	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeBadRequest(w, "VALIDATION_ERROR", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	artists, err := h.service.List(r.Context(), callerID, query.Get("order_by"), limit, filters)
	if err != nil {
		handleDiscoveryError(w, err)
		return
	}
	if artists == nil {
		artists = []model.Artist{}
	}

	httperrors.Write(w, http.StatusOK, dto.ArtistListResponse{Artists: artists, Count: len(artists)})
}

func (h *DiscoveryHandler) Groups(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "DISCOVERY_SERVICE_UNAVAILABLE", "discovery service is unavailable")
		return
	}

	query := r.URL.Query()
	filters := filtersFromQuery(query)

	callerID := ""
	if identity, ok := authsvc.IdentityFromContext(r.Context()); ok {
		callerID = identity.UserID
	}

	mode := strings.TrimSpace(query.Get("mode"))
	if mode == "" {
		// Without an explicit mode the map's zoom level decides, the way
		// the marker layer switches between country and city buckets.
		mode = string(enums.GroupByCountry)
		if raw := strings.TrimSpace(query.Get("zoom")); raw != "" {
			zoom, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				writeBadRequest(w, "VALIDATION_ERROR", "zoom must be a number")
				return
			}
			mode = string(discoverysvc.ModeForZoom(zoom))
		}
	}
	if !enums.IsValidGroupingMode(mode) {
		writeBadRequest(w, "VALIDATION_ERROR", "unknown grouping mode")
		return
	}

	groups, err := h.service.Groups(r.Context(), callerID, enums.GroupingMode(mode), filters)
	if err != nil {
		handleDiscoveryError(w, err)
		return
	}
	if groups == nil {
		groups = []discoverysvc.Group{}
	}

	httperrors.Write(w, http.StatusOK, dto.GroupsResponse{Mode: mode, Groups: groups, Count: len(groups)})
}

func (h *DiscoveryHandler) Options(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "DISCOVERY_SERVICE_UNAVAILABLE", "discovery service is unavailable")
		return
	}

	filters := filtersFromQuery(r.URL.Query())

	callerID := ""
	if identity, ok := authsvc.IdentityFromContext(r.Context()); ok {
		callerID = identity.UserID
	}

	options, err := h.service.Options(r.Context(), callerID, filters)
	if err != nil {
		handleDiscoveryError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.OptionsResponse{All: options.All, Available: options.Available})
}

func (h *DiscoveryHandler) Random(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "DISCOVERY_SERVICE_UNAVAILABLE", "discovery service is unavailable")
		return
	}

	filters := filtersFromQuery(r.URL.Query())

	callerID := ""
	if identity, ok := authsvc.IdentityFromContext(r.Context()); ok {
		callerID = identity.UserID
	}

	artist, err := h.service.Random(r.Context(), callerID, filters)
	if err != nil {
		if errors.Is(err, discoverysvc.ErrNoArtists) {
			writeNotFound(w, "NOT_FOUND", "no published artists yet")
			return
		}
		handleDiscoveryError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, artist)
}

func filtersFromQuery(query map[string][]string) discoverysvc.Filters {
	get := func(key string) string {
		if values := query[key]; len(values) > 0 {
			return values[0]
		}
		return ""
	}

	return discoverysvc.Filters{
		FavoritesOnly: get("favorites_only") == "true",
		Practices:     splitCSV(get("practices")),
		Countries:     splitCSV(get("countries")),
		Cities:        splitCSV(get("cities")),
		Genres:        splitCSV(get("genres")),
		Ethnicities:   splitCSV(get("ethnicities")),
		Search:        strings.TrimSpace(get("q")),
	}
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func handleDiscoveryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, discoverysvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
	default:
		writeInternal(w, "INTERNAL_ERROR", "internal server error")
	}
}
