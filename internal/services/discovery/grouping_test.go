package discovery

import (
	"testing"

	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
)

func TestByCityUsesFirstMemberCoordinates(t *testing.T) {
	artists := []model.Artist{
		{ID: "a1", LocationCity: "Karachi", LocationCountry: "Pakistan", Latitude: 24.86, Longitude: 67.00},
		{ID: "a2", LocationCity: "Karachi", LocationCountry: "Pakistan", Latitude: 24.90, Longitude: 67.10},
		{ID: "a3", LocationCity: "Mumbai", LocationCountry: "India", Latitude: 19.07, Longitude: 72.87},
	}

	groups := ByCity(artists)
	if len(groups) != 2 {
		t.Fatalf("expected 2 city groups, got %d", len(groups))
	}

	karachi := groups[0]
	if karachi.Key != "Karachi, Pakistan" {
		t.Fatalf("unexpected group key: %s", karachi.Key)
	}
	if karachi.Latitude != 24.86 || karachi.Longitude != 67.00 {
		t.Fatalf("city marker should sit on the first member: (%v, %v)", karachi.Latitude, karachi.Longitude)
	}
	if karachi.Count != 2 {
		t.Fatalf("unexpected member count: %d", karachi.Count)
	}
}

func TestByCityKeyUsesDisplayCountry(t *testing.T) {
	artists := []model.Artist{
		{ID: "a1", LocationCity: "Haifa", LocationCountry: "Israel"},
	}

	groups := ByCity(artists)
	if len(groups) != 1 || groups[0].Key != "Haifa, Palestine" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}

func TestByCountryAveragesCoordinates(t *testing.T) {
	artists := []model.Artist{
		{ID: "a1", LocationCountry: "Pakistan", Latitude: 24.0, Longitude: 66.0},
		{ID: "a2", LocationCountry: "Pakistan", Latitude: 26.0, Longitude: 68.0},
	}

	groups := ByCountry(artists)
	if len(groups) != 1 {
		t.Fatalf("expected 1 country group, got %d", len(groups))
	}
	if groups[0].Latitude != 25.0 || groups[0].Longitude != 67.0 {
		t.Fatalf("country marker should be the mean: (%v, %v)", groups[0].Latitude, groups[0].Longitude)
	}
}

func TestByPracticeFansOutWithoutDuplicates(t *testing.T) {
	artists := []model.Artist{
		{ID: "a1", PrimaryPractice: "Poet", SecondaryPractices: []string{"Vocalist", "Poet"}},
		{ID: "a2", PrimaryPractice: "Vocalist"},
	}

	groups := ByPractice(artists)
	if len(groups) != 2 {
		t.Fatalf("expected 2 practice groups, got %d", len(groups))
	}

	byKey := map[string]Group{}
	for _, group := range groups {
		byKey[group.Key] = group
	}

	if byKey["Poet"].Count != 1 {
		t.Fatalf("artist listed twice in own practice group: %+v", byKey["Poet"])
	}
	if byKey["Vocalist"].Count != 2 {
		t.Fatalf("secondary practice should fan out: %+v", byKey["Vocalist"])
	}
}
