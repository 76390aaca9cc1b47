package dto

type FavoriteRequest struct {
	ArtistID string `json:"artist_id"`
}

type FavoritesResponse struct {
	ArtistIDs []string `json:"artist_ids"`
}
