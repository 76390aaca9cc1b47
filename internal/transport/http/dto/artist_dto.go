package dto

import "github.com/provhatrahman/Ahwaaz/internal/domain/model"

// ArtistRequest covers both create and update. Pointer fields distinguish
// "not sent" from a zero value for coordinates and crop state.
type ArtistRequest struct {
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	LocationCity       string             `json:"location_city"`
	LocationCountry    string             `json:"location_country"`
	Latitude           *float64           `json:"latitude"`
	Longitude          *float64           `json:"longitude"`
	PrimaryPractice    string             `json:"primary_practice"`
	SecondaryPractices []string           `json:"secondary_practices"`
	StyleGenre         string             `json:"style_genre"`
	EthnicBackground   string             `json:"ethnic_background"`
	Bio                string             `json:"bio"`
	ImageURL           string             `json:"image_url"`
	ImagePositionX     *float64           `json:"image_position_x"`
	ImagePositionY     *float64           `json:"image_position_y"`
	ImageScale         *float64           `json:"image_scale"`
	ContactMethod      string             `json:"contact_method"`
	PortfolioWebsite   string             `json:"portfolio_website"`
	PortfolioInstagram string             `json:"portfolio_instagram"`
	CustomLinks        []model.CustomLink `json:"custom_links"`
	IsPublished        *bool              `json:"is_published"`
}

type ArtistListResponse struct {
	Artists []model.Artist `json:"artists"`
	Count   int            `json:"count"`
}

type PublishResponse struct {
	ID          string `json:"id"`
	IsPublished bool   `json:"is_published"`
}
