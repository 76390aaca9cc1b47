package dto

import "github.com/provhatrahman/Ahwaaz/internal/domain/model"

type ReportRequest struct {
	ArtistID    string `json:"artist_id"`
	Reason      string `json:"reason"`
	Description string `json:"description"`
}

type ReportListResponse struct {
	Reports []model.Report `json:"reports"`
	Count   int            `json:"count"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}
