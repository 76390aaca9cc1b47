package discovery

import (
	"strings"

	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
)

// Filters narrows a published-artist listing. Empty slices mean "no
// restriction" for that dimension.
type Filters struct {
	FavoritesOnly bool
	FavoriteIDs   []string
	Practices     []string
	Countries     []string
	Cities        []string
	Genres        []string
	Ethnicities   []string
	Search        string
}

// DisplayCountry maps the stored country to the one shown and filtered
// on. Profiles stored under Israel are presented as Palestine.
func DisplayCountry(country string) string {
	if strings.EqualFold(strings.TrimSpace(country), "Israel") {
		return "Palestine"
	}
	return country
}

// ApplyFilters runs each active dimension in a fixed order: favorites,
// practices, countries, cities, genres, ethnicities, then free-text
// search.
func ApplyFilters(artists []model.Artist, f Filters) []model.Artist {
	out := artists

	if f.FavoritesOnly {
		favorites := make(map[string]bool, len(f.FavoriteIDs))
		for _, id := range f.FavoriteIDs {
			favorites[id] = true
		}
		out = keep(out, func(a model.Artist) bool {
			return favorites[a.ID]
		})
	}

	if len(f.Practices) > 0 {
		wanted := toSet(f.Practices)
		out = keep(out, func(a model.Artist) bool {
			if wanted[a.PrimaryPractice] {
				return true
			}
			for _, practice := range a.SecondaryPractices {
				if wanted[practice] {
					return true
				}
			}
			return false
		})
	}

	if len(f.Countries) > 0 {
		wanted := toSet(f.Countries)
		out = keep(out, func(a model.Artist) bool {
			return wanted[DisplayCountry(a.LocationCountry)]
		})
	}

	if len(f.Cities) > 0 {
		wanted := toSet(f.Cities)
		out = keep(out, func(a model.Artist) bool {
			return wanted[a.LocationCity]
		})
	}

	if len(f.Genres) > 0 {
		wanted := toSet(f.Genres)
		out = keep(out, func(a model.Artist) bool {
			return wanted[a.StyleGenre]
		})
	}

	if len(f.Ethnicities) > 0 {
		wanted := toSet(f.Ethnicities)
		out = keep(out, func(a model.Artist) bool {
			return wanted[a.EthnicBackground]
		})
	}

	if query := strings.ToLower(strings.TrimSpace(f.Search)); query != "" {
		out = keep(out, func(a model.Artist) bool {
			return matchesSearch(a, query)
		})
	}

	return out
}

// matchesSearch checks the identity fields only; bios are not searched.
func matchesSearch(a model.Artist, query string) bool {
	fields := []string{
		a.Name,
		a.LocationCity,
		DisplayCountry(a.LocationCountry),
		a.PrimaryPractice,
		a.StyleGenre,
		a.EthnicBackground,
	}
	fields = append(fields, a.SecondaryPractices...)

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func keep(artists []model.Artist, pred func(model.Artist) bool) []model.Artist {
	out := make([]model.Artist, 0, len(artists))
	for _, a := range artists {
		if pred(a) {
			out = append(out, a)
		}
	}
	return out
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
