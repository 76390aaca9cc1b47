package model

import (
	"time"

	"github.com/provhatrahman/Ahwaaz/internal/domain/enums"
)

// User rows are created implicitly on first OAuth sign-in.
type User struct {
	ID           string     `json:"id"`
	OAuthSubject string     `json:"-"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	Role         enums.Role `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
