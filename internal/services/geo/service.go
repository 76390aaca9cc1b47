package geo

import (
	"strings"

	"github.com/provhatrahman/Ahwaaz/internal/config"
)

// Service is a static city-to-coordinates table. It stands in for a real
// geocoding provider; cities outside the table simply resolve to nothing
// and their artists fall back to whatever coordinates they already carry.
type Service struct {
	byCity map[string]config.CityCoordinate
}

func NewService(cities []config.CityCoordinate) *Service {
	byCity := make(map[string]config.CityCoordinate, len(cities))
	for _, city := range cities {
		name := normalizeCity(city.City)
		if name == "" {
			continue
		}
		byCity[name] = city
	}

	return &Service{byCity: byCity}
}

// Lookup is case and whitespace insensitive.
func (s *Service) Lookup(city string) (lat, lon float64, ok bool) {
	entry, found := s.byCity[normalizeCity(city)]
	if !found {
		return 0, 0, false
	}
	return entry.Lat, entry.Lon, true
}

func normalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
