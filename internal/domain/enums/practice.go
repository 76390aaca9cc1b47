package enums

// Practice is one tag from the fixed creative-practice taxonomy. Each artist
// has exactly one primary practice and zero or more secondary practices.
type Practice string

var allPractices = []string{
	"A&R", "Actor", "Agent", "Animator", "Architect", "Art Director", "Audio Engineer", "Author",
	"Band", "Choreographer", "Cinematographer", "Collective", "Colourist", "Composer", "Content Creator",
	"Copywriter", "Creative Director", "Creative Strategist", "Curator", "DJ", "Dancer", "Drag Artist",
	"Event Producer", "Event Promoter", "Fashion Designer", "Film Director", "Graphic Designer",
	"Illustrator", "Journalist", "Label Manager", "Lighting Designer", "Manager", "Marketing Manager",
	"Mastering Engineer", "Mixing Engineer", "Motion Graphics Artist", "Music Producer", "Music Supervisor",
	"Musician", "Painter", "Photographer", "Playwright", "Poet", "Radio Host", "Rapper", "Screenwriter",
	"Set Designer", "Social Media Manager", "Songwriter", "Sound Designer", "Tailor", "Tour Manager",
	"Venue Owner", "Video Editor", "Videographer", "Visual Artist", "Vocalist", "Voice Actor",
}

var practiceSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(allPractices))
	for _, p := range allPractices {
		set[p] = struct{}{}
	}
	return set
}()

func AllPractices() []string {
	out := make([]string, len(allPractices))
	copy(out, allPractices)
	return out
}

func IsValidPractice(value string) bool {
	_, ok := practiceSet[value]
	return ok
}
