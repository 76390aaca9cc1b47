package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	goredis "github.com/redis/go-redis/v9"
)

const prefsPrefix = "prefs:"

// PrefsRepo keeps small per-user UI preferences such as the color theme
// and one-time tour completion flags. Preferences are best effort and
// have no TTL.
type PrefsRepo struct {
	client *goredis.Client
}

func NewPrefsRepo(client *goredis.Client) *PrefsRepo {
	return &PrefsRepo{client: client}
}

func (r *PrefsRepo) SetTheme(ctx context.Context, userID, theme string) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user id is required")
	}

	if err := r.client.HSet(ctx, prefsKey(userID), "theme", theme).Err(); err != nil {
		return fmt.Errorf("set theme preference: %w", err)
	}

	return nil
}

func (r *PrefsRepo) GetTheme(ctx context.Context, userID string) (string, error) {
	if r.client == nil {
		return "", fmt.Errorf("redis client is nil")
	}

	theme, err := r.client.HGet(ctx, prefsKey(userID), "theme").Result()
	if err == goredis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get theme preference: %w", err)
	}

	return theme, nil
}

func (r *PrefsRepo) SetTourCompleted(ctx context.Context, userID, tour string, completed bool) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(tour) == "" {
		return fmt.Errorf("user id and tour name are required")
	}

	field := "tour:" + tour
	if err := r.client.HSet(ctx, prefsKey(userID), field, strconv.FormatBool(completed)).Err(); err != nil {
		return fmt.Errorf("set tour completion: %w", err)
	}

	return nil
}

func (r *PrefsRepo) TourCompleted(ctx context.Context, userID, tour string) (bool, error) {
	if r.client == nil {
		return false, fmt.Errorf("redis client is nil")
	}

	value, err := r.client.HGet(ctx, prefsKey(userID), "tour:"+tour).Result()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get tour completion: %w", err)
	}

	completed, err := strconv.ParseBool(value)
	if err != nil {
		return false, nil
	}

	return completed, nil
}

// All returns the theme and every tour flag in one round trip.
func (r *PrefsRepo) All(ctx context.Context, userID string) (string, map[string]bool, error) {
	if r.client == nil {
		return "", nil, fmt.Errorf("redis client is nil")
	}

	fields, err := r.client.HGetAll(ctx, prefsKey(userID)).Result()
	if err != nil {
		return "", nil, fmt.Errorf("get preferences: %w", err)
	}

	theme := ""
	tours := map[string]bool{}
	for field, value := range fields {
		switch {
		case field == "theme":
			theme = value
		case strings.HasPrefix(field, "tour:"):
			completed, err := strconv.ParseBool(value)
			if err != nil {
				continue
			}
			tours[strings.TrimPrefix(field, "tour:")] = completed
		}
	}

	return theme, tours, nil
}

func (r *PrefsRepo) DeleteAllForUser(ctx context.Context, userID string) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}

	if err := r.client.Del(ctx, prefsKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete preferences: %w", err)
	}

	return nil
}

func prefsKey(userID string) string {
	return prefsPrefix + userID
}
