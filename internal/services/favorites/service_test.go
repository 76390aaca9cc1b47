package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
	pgrepo "github.com/provhatrahman/Ahwaaz/internal/repo/postgres"
)

type memFavorites map[string][]string

func (m memFavorites) Add(_ context.Context, userID, artistID string) error {
	for _, id := range m[userID] {
		if id == artistID {
			return nil
		}
	}
	m[userID] = append(m[userID], artistID)
	return nil
}

func (m memFavorites) Remove(_ context.Context, userID, artistID string) error {
	ids := m[userID]
	out := ids[:0]
	for _, id := range ids {
		if id != artistID {
			out = append(out, id)
		}
	}
	m[userID] = out
	return nil
}

func (m memFavorites) ListArtistIDs(_ context.Context, userID string) ([]string, error) {
	return m[userID], nil
}

type memArtists map[string]model.Artist

func (m memArtists) Get(_ context.Context, id string) (model.Artist, error) {
	a, ok := m[id]
	if !ok {
		return model.Artist{}, pgrepo.ErrArtistNotFound
	}
	return a, nil
}

func TestAddAndListFavorites(t *testing.T) {
	favs := memFavorites{}
	artists := memArtists{"a1": {ID: "a1", OwnerID: "other", IsPublished: true}}
	svc := NewService(favs, artists)

	ctx := context.Background()
	if err := svc.Add(ctx, "user-1", "a1"); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	if err := svc.Add(ctx, "user-1", "a1"); err != nil {
		t.Fatalf("re-adding should be idempotent: %v", err)
	}

	ids, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(ids) != 1 || ids[0] != "a1" {
		t.Fatalf("unexpected favorites: %v", ids)
	}
}

func TestAddRejectsUnpublishedArtist(t *testing.T) {
	artists := memArtists{"a1": {ID: "a1", OwnerID: "other", IsPublished: false}}
	svc := NewService(memFavorites{}, artists)

	if err := svc.Add(context.Background(), "user-1", "a1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for unpublished artist, got err=%v", err)
	}
}

func TestAddRejectsMissingArtist(t *testing.T) {
	svc := NewService(memFavorites{}, memArtists{})

	if err := svc.Add(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got err=%v", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	favs := memFavorites{"user-1": {"a1"}}
	svc := NewService(favs, memArtists{})

	ctx := context.Background()
	if err := svc.Remove(ctx, "user-1", "a1"); err != nil {
		t.Fatalf("remove favorite: %v", err)
	}
	if err := svc.Remove(ctx, "user-1", "a1"); err != nil {
		t.Fatalf("second remove should be a no-op: %v", err)
	}

	ids, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("favorites should be empty: %v", ids)
	}
}
