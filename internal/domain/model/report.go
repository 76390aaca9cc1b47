package model

import (
	"time"

	"github.com/provhatrahman/Ahwaaz/internal/domain/enums"
)

type Report struct {
	ID             string             `json:"id"`
	ReporterUserID string             `json:"reporter_user_id"`
	ArtistID       string             `json:"reported_artist_id"`
	Reason         enums.ReportReason `json:"reason"`
	Description    string             `json:"description"`
	Status         enums.ReportStatus `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}
