package favorites

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
	pgrepo "github.com/provhatrahman/Ahwaaz/internal/repo/postgres"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("artist not found")
)

type FavoriteStore interface {
	Add(ctx context.Context, userID, artistID string) error
	Remove(ctx context.Context, userID, artistID string) error
	ListArtistIDs(ctx context.Context, userID string) ([]string, error)
}

type ArtistGetter interface {
	Get(ctx context.Context, id string) (model.Artist, error)
}

type Service struct {
	store   FavoriteStore
	artists ArtistGetter
}

func NewService(store FavoriteStore, artists ArtistGetter) *Service {
	return &Service{store: store, artists: artists}
}

// Add favorites a published artist. Unpublished or missing artists look
// the same to the caller.
func (s *Service) Add(ctx context.Context, userID, artistID string) error {
	if err := s.checkIDs(userID, artistID); err != nil {
		return err
	}

	artist, err := s.artists.Get(ctx, artistID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrArtistNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get artist: %w", err)
	}
	if !artist.IsPublished && artist.OwnerID != userID {
		return ErrNotFound
	}

	if err := s.store.Add(ctx, userID, artistID); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}

	return nil
}

// Remove is idempotent.
func (s *Service) Remove(ctx context.Context, userID, artistID string) error {
	if err := s.checkIDs(userID, artistID); err != nil {
		return err
	}

	if err := s.store.Remove(ctx, userID, artistID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	return nil
}

func (s *Service) List(ctx context.Context, userID string) ([]string, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user id is required: %w", ErrValidation)
	}

	ids, err := s.store.ListArtistIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	return ids, nil
}

func (s *Service) checkIDs(userID, artistID string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(artistID) == "" {
		return fmt.Errorf("user and artist ids are required: %w", ErrValidation)
	}
	return nil
}
