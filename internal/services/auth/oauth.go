package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// UserInfoFetcher exchanges a provider access token for the caller's
// OpenID Connect userinfo document.
type UserInfoFetcher struct {
	client *http.Client
	url    string
}

func NewUserInfoFetcher(client *http.Client, url string) *UserInfoFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &UserInfoFetcher{client: client, url: url}
}

func (f *UserInfoFetcher) Fetch(ctx context.Context, providerToken string) (UserInfo, error) {
	if strings.TrimSpace(providerToken) == "" {
		return UserInfo{}, ErrInvalidInput
	}
	if strings.TrimSpace(f.url) == "" {
		return UserInfo{}, fmt.Errorf("userinfo url is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return UserInfo{}, fmt.Errorf("create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+providerToken)

	resp, err := f.client.Do(req)
	if err != nil {
		return UserInfo{}, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return UserInfo{}, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return UserInfo{}, fmt.Errorf("unexpected userinfo status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return UserInfo{}, fmt.Errorf("read userinfo body: %w", err)
	}

	var payload struct {
		Sub   string `json:"sub"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return UserInfo{}, fmt.Errorf("decode userinfo body: %w", err)
	}
	if strings.TrimSpace(payload.Sub) == "" {
		return UserInfo{}, ErrUnauthorized
	}

	return UserInfo{
		Subject:  payload.Sub,
		Email:    payload.Email,
		FullName: payload.Name,
	}, nil
}
