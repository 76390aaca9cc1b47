package dto

import "github.com/provhatrahman/Ahwaaz/internal/domain/model"

type FeedbackRequest struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FeedbackListResponse struct {
	Feedback []model.Feedback `json:"feedback"`
	Count    int              `json:"count"`
}
