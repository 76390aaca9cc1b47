package auth

import (
	"errors"
	"time"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrSessionNotFound = errors.New("session not found")
	ErrRefreshNotFound = errors.New("refresh token not found")
)

type SessionRecord struct {
	SID       string
	UserID    string
	Role      string
	ExpiresAt time.Time
}

type AccessClaims struct {
	UserID    string
	SID       string
	Role      string
	ExpiresAt time.Time
}

type Me struct {
	ID       string
	Email    string
	FullName string
	Role     string
}

type AuthResult struct {
	AccessToken   string
	RefreshToken  string
	AccessExpires time.Time
	Me            Me
}

// UserInfo is the subset of the OAuth provider's userinfo response the
// service cares about.
type UserInfo struct {
	Subject  string
	Email    string
	FullName string
}
