package discovery

import (
	"sort"

	"github.com/provhatrahman/Ahwaaz/internal/domain/enums"
	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
)

// Group is one map marker: a set of artists sharing a city, country, or
// practice, with the coordinates the marker is drawn at.
type Group struct {
	Key       string         `json:"key"`
	City      string         `json:"city,omitempty"`
	Country   string         `json:"country,omitempty"`
	Practice  string         `json:"practice,omitempty"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Artists   []model.Artist `json:"artists"`
	Count     int            `json:"count"`
}

func GroupBy(artists []model.Artist, mode enums.GroupingMode) []Group {
	switch mode {
	case enums.GroupByCity:
		return ByCity(artists)
	case enums.GroupByPractice:
		return ByPractice(artists)
	default:
		return ByCountry(artists)
	}
}

// ByCity groups on "City, Country". The marker sits on the first
// member's coordinates, which keeps markers stable as members are added.
func ByCity(artists []model.Artist) []Group {
	index := map[string]*Group{}
	var order []string

	for _, a := range artists {
		country := DisplayCountry(a.LocationCountry)
		key := a.LocationCity + ", " + country
		group, ok := index[key]
		if !ok {
			group = &Group{
				Key:       key,
				City:      a.LocationCity,
				Country:   country,
				Latitude:  a.Latitude,
				Longitude: a.Longitude,
			}
			index[key] = group
			order = append(order, key)
		}
		group.Artists = append(group.Artists, a)
	}

	return finalize(index, order)
}

// ByCountry groups on the display country; the marker sits on the mean
// of the members' coordinates.
func ByCountry(artists []model.Artist) []Group {
	index := map[string]*Group{}
	var order []string

	for _, a := range artists {
		key := DisplayCountry(a.LocationCountry)
		group, ok := index[key]
		if !ok {
			group = &Group{Key: key, Country: key}
			index[key] = group
			order = append(order, key)
		}
		group.Artists = append(group.Artists, a)
	}

	for _, group := range index {
		var latSum, lonSum float64
		for _, a := range group.Artists {
			latSum += a.Latitude
			lonSum += a.Longitude
		}
		n := float64(len(group.Artists))
		group.Latitude = latSum / n
		group.Longitude = lonSum / n
	}

	return finalize(index, order)
}

// ByPractice fans each artist out into one group per practice they
// carry, primary and secondary alike, without duplicating an artist
// inside a group.
func ByPractice(artists []model.Artist) []Group {
	index := map[string]*Group{}
	seen := map[string]map[string]bool{}
	var order []string

	add := func(practice string, a model.Artist) {
		if practice == "" {
			return
		}
		group, ok := index[practice]
		if !ok {
			group = &Group{Key: practice, Practice: practice}
			index[practice] = group
			seen[practice] = map[string]bool{}
			order = append(order, practice)
		}
		if seen[practice][a.ID] {
			return
		}
		seen[practice][a.ID] = true
		group.Artists = append(group.Artists, a)
	}

	for _, a := range artists {
		add(a.PrimaryPractice, a)
		for _, practice := range a.SecondaryPractices {
			add(practice, a)
		}
	}

	groups := finalize(index, order)
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}

func finalize(index map[string]*Group, order []string) []Group {
	groups := make([]Group, 0, len(order))
	for _, key := range order {
		group := index[key]
		group.Count = len(group.Artists)
		groups = append(groups, *group)
	}
	return groups
}
