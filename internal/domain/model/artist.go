package model

import "time"

// Artist is one creative-professional profile. It is visible to the public
// only while IsPublished is set; the owning user sees all of their records
// regardless of the flag.
type Artist struct {
	ID                 string       `json:"id"`
	OwnerID            string       `json:"owner_id"`
	Name               string       `json:"name"`
	Email              string       `json:"email"`
	LocationCity       string       `json:"location_city"`
	LocationCountry    string       `json:"location_country"`
	Latitude           float64      `json:"latitude"`
	Longitude          float64      `json:"longitude"`
	PrimaryPractice    string       `json:"primary_practice"`
	SecondaryPractices []string     `json:"secondary_practices,omitempty"`
	StyleGenre         string       `json:"style_genre"`
	EthnicBackground   string       `json:"ethnic_background"`
	Bio                string       `json:"bio"`
	ImageURL           string       `json:"image_url"`
	ImagePositionX     float64      `json:"image_position_x"`
	ImagePositionY     float64      `json:"image_position_y"`
	ImageScale         float64      `json:"image_scale"`
	ContactMethod      string       `json:"contact_method"`
	PortfolioWebsite   string       `json:"portfolio_website"`
	PortfolioInstagram string       `json:"portfolio_instagram"`
	CustomLinks        []CustomLink `json:"custom_links,omitempty"`
	IsPublished        bool         `json:"is_published"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// CustomLink is one free-form label/URL pair from the portfolio section.
type CustomLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}
