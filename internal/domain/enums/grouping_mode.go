package enums

// GroupingMode determines how the artist list is partitioned for the grid
// and map views.
type GroupingMode string

const (
	GroupByCity     GroupingMode = "city"
	GroupByCountry  GroupingMode = "country"
	GroupByPractice GroupingMode = "practice"
)

func IsValidGroupingMode(value string) bool {
	switch GroupingMode(value) {
	case GroupByCity, GroupByCountry, GroupByPractice:
		return true
	}
	return false
}
