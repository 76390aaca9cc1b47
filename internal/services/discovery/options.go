package discovery

import (
	"sort"

	"github.com/provhatrahman/Ahwaaz/internal/domain/enums"
	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
)

// FilterOptions holds the values offered in the filter panel.
type FilterOptions struct {
	Practices   []string `json:"practices"`
	Countries   []string `json:"countries"`
	Cities      []string `json:"cities"`
	Genres      []string `json:"genres"`
	Ethnicities []string `json:"ethnicities"`
}

// OptionSets pairs the full value lists with the subset still reachable
// under the caller's active filters.
type OptionSets struct {
	All       FilterOptions `json:"all"`
	Available FilterOptions `json:"available"`
}

// AllOptions lists every distinct value the given artists carry.
func AllOptions(artists []model.Artist) FilterOptions {
	return collectOptions(artists)
}

// AvailableOptions lists, per category, the values reachable when every
// OTHER active category stays applied. Picking a value from one category
// must never dead-end the remaining ones.
func AvailableOptions(artists []model.Artist, f Filters) FilterOptions {
	return FilterOptions{
		Practices:   collectOptions(ApplyFilters(artists, withoutPractices(f))).Practices,
		Countries:   collectOptions(ApplyFilters(artists, withoutCountries(f))).Countries,
		Cities:      collectOptions(ApplyFilters(artists, withoutCities(f))).Cities,
		Genres:      collectOptions(ApplyFilters(artists, withoutGenres(f))).Genres,
		Ethnicities: collectOptions(ApplyFilters(artists, withoutEthnicities(f))).Ethnicities,
	}
}

// AllPractices exposes the full taxonomy for profile editing, where the
// artist may pick practices nobody else has yet.
func AllPractices() []string {
	return enums.AllPractices()
}

func collectOptions(artists []model.Artist) FilterOptions {
	practices := map[string]bool{}
	countries := map[string]bool{}
	cities := map[string]bool{}
	genres := map[string]bool{}
	ethnicities := map[string]bool{}

	for _, a := range artists {
		if a.PrimaryPractice != "" {
			practices[a.PrimaryPractice] = true
		}
		for _, practice := range a.SecondaryPractices {
			if practice != "" {
				practices[practice] = true
			}
		}
		if country := DisplayCountry(a.LocationCountry); country != "" {
			countries[country] = true
		}
		if a.LocationCity != "" {
			cities[a.LocationCity] = true
		}
		if a.StyleGenre != "" {
			genres[a.StyleGenre] = true
		}
		if a.EthnicBackground != "" {
			ethnicities[a.EthnicBackground] = true
		}
	}

	return FilterOptions{
		Practices:   sortedKeys(practices),
		Countries:   sortedKeys(countries),
		Cities:      sortedKeys(cities),
		Genres:      sortedKeys(genres),
		Ethnicities: sortedKeys(ethnicities),
	}
}

func withoutPractices(f Filters) Filters   { f.Practices = nil; return f }
func withoutCountries(f Filters) Filters   { f.Countries = nil; return f }
func withoutCities(f Filters) Filters      { f.Cities = nil; return f }
func withoutGenres(f Filters) Filters      { f.Genres = nil; return f }
func withoutEthnicities(f Filters) Filters { f.Ethnicities = nil; return f }

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for value := range set {
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}
