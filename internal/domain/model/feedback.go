package model

import (
	"time"

	"github.com/provhatrahman/Ahwaaz/internal/domain/enums"
)

type Feedback struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	Type        enums.FeedbackType   `json:"type"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      enums.FeedbackStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
