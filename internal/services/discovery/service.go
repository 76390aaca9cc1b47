package discovery

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/provhatrahman/Ahwaaz/internal/domain/enums"
	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNoArtists  = errors.New("no published artists")
)

type ArtistLister interface {
	ListPublished(ctx context.Context, orderBy string, limit int) ([]model.Artist, error)
}

type FavoriteLister interface {
	ListArtistIDs(ctx context.Context, userID string) ([]string, error)
}

// Service serves the public directory: list, search, map groups, filter
// options, and the random-artist shuffle.
type Service struct {
	store     ArtistLister
	favorites FavoriteLister

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewService(store ArtistLister, favorites FavoriteLister, seed int64) *Service {
	return &Service{
		store:     store,
		favorites: favorites,
		rnd:       rand.New(rand.NewSource(seed)),
	}
}

// List returns published artists after filtering. The favorites-only
// stage is silently skipped for anonymous callers.
func (s *Service) List(ctx context.Context, callerID, orderBy string, limit int, f Filters) ([]model.Artist, error) {
	f, err := s.resolveFavorites(ctx, callerID, f)
	if err != nil {
		return nil, err
	}

	artists, err := s.store.ListPublished(ctx, orderBy, limit)
	if err != nil {
		return nil, fmt.Errorf("list published artists: %w", err)
	}

	return ApplyFilters(artists, f), nil
}

func (s *Service) Groups(ctx context.Context, callerID string, mode enums.GroupingMode, f Filters) ([]Group, error) {
	if !enums.IsValidGroupingMode(string(mode)) {
		return nil, fmt.Errorf("unknown grouping mode %q: %w", mode, ErrValidation)
	}

	artists, err := s.List(ctx, callerID, "-created_date", 0, f)
	if err != nil {
		return nil, err
	}

	return GroupBy(artists, mode), nil
}

// Options returns both the full filter vocabulary and the subset still
// reachable under the caller's active filters, so the filter panel can
// grey out choices that would return nothing.
func (s *Service) Options(ctx context.Context, callerID string, f Filters) (OptionSets, error) {
	f, err := s.resolveFavorites(ctx, callerID, f)
	if err != nil {
		return OptionSets{}, err
	}

	artists, err := s.store.ListPublished(ctx, "-created_date", 0)
	if err != nil {
		return OptionSets{}, fmt.Errorf("list published artists: %w", err)
	}

	return OptionSets{
		All:       AllOptions(artists),
		Available: AvailableOptions(artists, f),
	}, nil
}

// Random picks one artist uniformly from the filtered subset.
func (s *Service) Random(ctx context.Context, callerID string, f Filters) (model.Artist, error) {
	f, err := s.resolveFavorites(ctx, callerID, f)
	if err != nil {
		return model.Artist{}, err
	}

	artists, err := s.store.ListPublished(ctx, "-created_date", 0)
	if err != nil {
		return model.Artist{}, fmt.Errorf("list published artists: %w", err)
	}

	artists = ApplyFilters(artists, f)
	if len(artists) == 0 {
		return model.Artist{}, ErrNoArtists
	}

	s.mu.Lock()
	idx := s.rnd.Intn(len(artists))
	s.mu.Unlock()

	return artists[idx], nil
}

// resolveFavorites loads the caller's favorite ids when the filter asks
// for them. Without a signed-in caller the stage is a no-op.
func (s *Service) resolveFavorites(ctx context.Context, callerID string, f Filters) (Filters, error) {
	if !f.FavoritesOnly {
		return f, nil
	}
	if strings.TrimSpace(callerID) == "" {
		f.FavoritesOnly = false
		return f, nil
	}

	ids, err := s.favorites.ListArtistIDs(ctx, callerID)
	if err != nil {
		return Filters{}, fmt.Errorf("list caller favorites: %w", err)
	}
	f.FavoriteIDs = ids
	return f, nil
}
