package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
	"github.com/provhatrahman/Ahwaaz/internal/pkg/validate"
	pgrepo "github.com/provhatrahman/Ahwaaz/internal/repo/postgres"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("user not found")
)

const maxFullNameLen = 200

var validThemes = map[string]bool{
	"light":  true,
	"dark":   true,
	"system": true,
}

type UserStore interface {
	Get(ctx context.Context, id string) (model.User, error)
	UpdateProfile(ctx context.Context, id, fullName string, at time.Time) error
	Delete(ctx context.Context, tx pgx.Tx, id string) error
}

type ArtistOwnership interface {
	ListIDsByOwner(ctx context.Context, ownerID string) ([]string, error)
	DeleteAllForOwner(ctx context.Context, tx pgx.Tx, ownerID string) error
}

type FavoriteCleanup interface {
	ListArtistIDs(ctx context.Context, userID string) ([]string, error)
	DeleteAllForUser(ctx context.Context, tx pgx.Tx, userID string) error
	DeleteAllForArtists(ctx context.Context, tx pgx.Tx, artistIDs []string) error
}

type ReportCleanup interface {
	DeleteAllForReporter(ctx context.Context, tx pgx.Tx, userID string) error
}

type FeedbackCleanup interface {
	DeleteAllForUser(ctx context.Context, tx pgx.Tx, userID string) error
}

type SessionCleanup interface {
	DeleteAllForUser(ctx context.Context, userID string) error
}

type PrefStore interface {
	SetTheme(ctx context.Context, userID, theme string) error
	GetTheme(ctx context.Context, userID string) (string, error)
	SetTourCompleted(ctx context.Context, userID, tour string, completed bool) error
	TourCompleted(ctx context.Context, userID, tour string) (bool, error)
	All(ctx context.Context, userID string) (string, map[string]bool, error)
	DeleteAllForUser(ctx context.Context, userID string) error
}

// Preferences is the client-side state the backend keeps for the user:
// the color theme and which onboarding tours they have completed.
type Preferences struct {
	Theme string          `json:"theme"`
	Tours map[string]bool `json:"tours"`
}

// Profile is the merged /v1/me payload: the account row plus the ids and
// preferences the client needs on boot.
type Profile struct {
	User              model.User `json:"user"`
	ArtistIDs         []string   `json:"artist_ids"`
	FavoriteArtistIDs []string   `json:"favorite_artist_ids"`
	Theme             string     `json:"theme,omitempty"`
}

type Service struct {
	pool      *pgxpool.Pool
	users     UserStore
	artists   ArtistOwnership
	favorites FavoriteCleanup
	reports   ReportCleanup
	feedback  FeedbackCleanup
	sessions  SessionCleanup
	prefs     PrefStore
	now       func() time.Time

	// runTx is swappable in tests.
	runTx func(ctx context.Context, fn func(context.Context, pgx.Tx) error) error
}

func NewService(
	pool *pgxpool.Pool,
	users UserStore,
	artists ArtistOwnership,
	favorites FavoriteCleanup,
	reports ReportCleanup,
	feedback FeedbackCleanup,
	sessions SessionCleanup,
	prefs PrefStore,
) *Service {
	s := &Service{
		pool:      pool,
		users:     users,
		artists:   artists,
		favorites: favorites,
		reports:   reports,
		feedback:  feedback,
		sessions:  sessions,
		prefs:     prefs,
		now:       time.Now,
	}
	s.runTx = func(ctx context.Context, fn func(context.Context, pgx.Tx) error) error {
		return pgrepo.WithTx(ctx, s.pool, fn)
	}
	return s
}

func (s *Service) Me(ctx context.Context, userID string) (Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return Profile{}, fmt.Errorf("user id is required: %w", ErrValidation)
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrUserNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("get user: %w", err)
	}

	artistIDs, err := s.artists.ListIDsByOwner(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("list own artist ids: %w", err)
	}

	favoriteIDs, err := s.favorites.ListArtistIDs(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("list favorite ids: %w", err)
	}

	profile := Profile{
		User:              user,
		ArtistIDs:         artistIDs,
		FavoriteArtistIDs: favoriteIDs,
	}

	// Preferences are best effort; a redis outage should not break /me.
	if s.prefs != nil {
		if theme, err := s.prefs.GetTheme(ctx, userID); err == nil {
			profile.Theme = theme
		}
	}

	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID, fullName string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user id is required: %w", ErrValidation)
	}
	if !validate.Required(fullName) {
		return fmt.Errorf("full name is required: %w", ErrValidation)
	}
	if !validate.MaxLen(fullName, maxFullNameLen) {
		return fmt.Errorf("full name is too long: %w", ErrValidation)
	}

	if err := s.users.UpdateProfile(ctx, userID, strings.TrimSpace(fullName), s.now().UTC()); err != nil {
		if errors.Is(err, pgrepo.ErrUserNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update profile: %w", err)
	}

	return nil
}

func (s *Service) SetTheme(ctx context.Context, userID, theme string) error {
	if !validThemes[theme] {
		return fmt.Errorf("unknown theme %q: %w", theme, ErrValidation)
	}
	if err := s.prefs.SetTheme(ctx, userID, theme); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	return nil
}

func (s *Service) SetTourCompleted(ctx context.Context, userID, tour string, completed bool) error {
	if strings.TrimSpace(tour) == "" {
		return fmt.Errorf("tour name is required: %w", ErrValidation)
	}
	if err := s.prefs.SetTourCompleted(ctx, userID, tour, completed); err != nil {
		return fmt.Errorf("set tour completion: %w", err)
	}
	return nil
}

func (s *Service) Preferences(ctx context.Context, userID string) (Preferences, error) {
	if strings.TrimSpace(userID) == "" {
		return Preferences{}, fmt.Errorf("user id is required: %w", ErrValidation)
	}

	theme, tours, err := s.prefs.All(ctx, userID)
	if err != nil {
		return Preferences{}, fmt.Errorf("get preferences: %w", err)
	}
	if tours == nil {
		tours = map[string]bool{}
	}

	return Preferences{Theme: theme, Tours: tours}, nil
}

// UpdatePreferences applies a partial update. An empty theme leaves the
// stored one alone; only the tours present in the map are touched.
func (s *Service) UpdatePreferences(ctx context.Context, userID string, p Preferences) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user id is required: %w", ErrValidation)
	}

	if p.Theme != "" {
		if err := s.SetTheme(ctx, userID, p.Theme); err != nil {
			return err
		}
	}

	for tour, completed := range p.Tours {
		if err := s.SetTourCompleted(ctx, userID, tour, completed); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) TourCompleted(ctx context.Context, userID, tour string) (bool, error) {
	completed, err := s.prefs.TourCompleted(ctx, userID, tour)
	if err != nil {
		return false, fmt.Errorf("get tour completion: %w", err)
	}
	return completed, nil
}

// DeleteAccount removes the user and everything hanging off them in one
// transaction, then clears sessions and preferences.
func (s *Service) DeleteAccount(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user id is required: %w", ErrValidation)
	}

	ownedArtistIDs, err := s.artists.ListIDsByOwner(ctx, userID)
	if err != nil {
		return fmt.Errorf("list owned artist ids: %w", err)
	}

	err = s.runTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.favorites.DeleteAllForArtists(ctx, tx, ownedArtistIDs); err != nil {
			return err
		}
		if err := s.favorites.DeleteAllForUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.reports.DeleteAllForReporter(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.feedback.DeleteAllForUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.artists.DeleteAllForOwner(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.users.Delete(ctx, tx, userID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, pgrepo.ErrUserNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete account: %w", err)
	}

	if s.sessions != nil {
		if err := s.sessions.DeleteAllForUser(ctx, userID); err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
	}
	if s.prefs != nil {
		if err := s.prefs.DeleteAllForUser(ctx, userID); err != nil {
			return fmt.Errorf("delete preferences: %w", err)
		}
	}

	return nil
}
