package users

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/provhatrahman/Ahwaaz/internal/domain/enums"
	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
	pgrepo "github.com/provhatrahman/Ahwaaz/internal/repo/postgres"
)

type memUsers struct {
	users map[string]model.User
}

func (m *memUsers) Get(_ context.Context, id string) (model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return model.User{}, pgrepo.ErrUserNotFound
	}
	return u, nil
}

func (m *memUsers) UpdateProfile(_ context.Context, id, fullName string, at time.Time) error {
	u, ok := m.users[id]
	if !ok {
		return pgrepo.ErrUserNotFound
	}
	u.FullName = fullName
	u.UpdatedAt = at
	m.users[id] = u
	return nil
}

func (m *memUsers) Delete(_ context.Context, _ pgx.Tx, id string) error {
	if _, ok := m.users[id]; !ok {
		return pgrepo.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

type memOwnership struct {
	byOwner map[string][]string
	deleted []string
}

func (m *memOwnership) ListIDsByOwner(_ context.Context, ownerID string) ([]string, error) {
	return m.byOwner[ownerID], nil
}

func (m *memOwnership) DeleteAllForOwner(_ context.Context, _ pgx.Tx, ownerID string) error {
	m.deleted = append(m.deleted, ownerID)
	delete(m.byOwner, ownerID)
	return nil
}

type memFavCleanup struct {
	byUser         map[string][]string
	deletedUsers   []string
	deletedArtists [][]string
}

func (m *memFavCleanup) ListArtistIDs(_ context.Context, userID string) ([]string, error) {
	return m.byUser[userID], nil
}

func (m *memFavCleanup) DeleteAllForUser(_ context.Context, _ pgx.Tx, userID string) error {
	m.deletedUsers = append(m.deletedUsers, userID)
	return nil
}

func (m *memFavCleanup) DeleteAllForArtists(_ context.Context, _ pgx.Tx, artistIDs []string) error {
	m.deletedArtists = append(m.deletedArtists, artistIDs)
	return nil
}

type memReportCleanup struct{ deleted []string }

func (m *memReportCleanup) DeleteAllForReporter(_ context.Context, _ pgx.Tx, userID string) error {
	m.deleted = append(m.deleted, userID)
	return nil
}

type memFeedbackCleanup struct{ deleted []string }

func (m *memFeedbackCleanup) DeleteAllForUser(_ context.Context, _ pgx.Tx, userID string) error {
	m.deleted = append(m.deleted, userID)
	return nil
}

type memSessionCleanup struct{ deleted []string }

func (m *memSessionCleanup) DeleteAllForUser(_ context.Context, userID string) error {
	m.deleted = append(m.deleted, userID)
	return nil
}

type memPrefs struct {
	themes  map[string]string
	tours   map[string]bool
	deleted []string
}

func (m *memPrefs) SetTheme(_ context.Context, userID, theme string) error {
	if m.themes == nil {
		m.themes = map[string]string{}
	}
	m.themes[userID] = theme
	return nil
}

func (m *memPrefs) GetTheme(_ context.Context, userID string) (string, error) {
	return m.themes[userID], nil
}

func (m *memPrefs) SetTourCompleted(_ context.Context, userID, tour string, completed bool) error {
	if m.tours == nil {
		m.tours = map[string]bool{}
	}
	m.tours[userID+":"+tour] = completed
	return nil
}

func (m *memPrefs) TourCompleted(_ context.Context, userID, tour string) (bool, error) {
	return m.tours[userID+":"+tour], nil
}

func (m *memPrefs) All(_ context.Context, userID string) (string, map[string]bool, error) {
	tours := map[string]bool{}
	for key, completed := range m.tours {
		if strings.HasPrefix(key, userID+":") {
			tours[strings.TrimPrefix(key, userID+":")] = completed
		}
	}
	return m.themes[userID], tours, nil
}

func (m *memPrefs) DeleteAllForUser(_ context.Context, userID string) error {
	m.deleted = append(m.deleted, userID)
	return nil
}

func newServiceForTest() (*Service, *memUsers, *memOwnership, *memFavCleanup, *memSessionCleanup, *memPrefs) {
	users := &memUsers{users: map[string]model.User{
		"user-1": {ID: "user-1", Email: "amina@example.com", FullName: "Amina Khan", Role: enums.RoleUser},
	}}
	ownership := &memOwnership{byOwner: map[string][]string{"user-1": {"a1", "a2"}}}
	favs := &memFavCleanup{byUser: map[string][]string{"user-1": {"a9"}}}
	sessions := &memSessionCleanup{}
	prefs := &memPrefs{themes: map[string]string{"user-1": "dark"}}

	svc := NewService(nil, users, ownership, favs, &memReportCleanup{}, &memFeedbackCleanup{}, sessions, prefs)
	svc.runTx = func(ctx context.Context, fn func(context.Context, pgx.Tx) error) error {
		return fn(ctx, nil)
	}

	return svc, users, ownership, favs, sessions, prefs
}

func TestMeMergesProfileData(t *testing.T) {
	svc, _, _, _, _, _ := newServiceForTest()

	profile, err := svc.Me(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("me: %v", err)
	}

	if profile.User.Email != "amina@example.com" {
		t.Fatalf("unexpected user: %+v", profile.User)
	}
	if len(profile.ArtistIDs) != 2 {
		t.Fatalf("unexpected artist ids: %v", profile.ArtistIDs)
	}
	if len(profile.FavoriteArtistIDs) != 1 || profile.FavoriteArtistIDs[0] != "a9" {
		t.Fatalf("unexpected favorite ids: %v", profile.FavoriteArtistIDs)
	}
	if profile.Theme != "dark" {
		t.Fatalf("unexpected theme: %s", profile.Theme)
	}
}

func TestMeUnknownUser(t *testing.T) {
	svc, _, _, _, _, _ := newServiceForTest()

	if _, err := svc.Me(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got err=%v", err)
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	svc, users, _, _, _, _ := newServiceForTest()

	if err := svc.UpdateProfile(context.Background(), "user-1", "  "); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty name should fail validation, got err=%v", err)
	}

	if err := svc.UpdateProfile(context.Background(), "user-1", "Amina K."); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if users.users["user-1"].FullName != "Amina K." {
		t.Fatalf("full name was not updated: %+v", users.users["user-1"])
	}
}

func TestThemePreference(t *testing.T) {
	svc, _, _, _, _, prefs := newServiceForTest()

	if err := svc.SetTheme(context.Background(), "user-1", "neon"); !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown theme should fail validation, got err=%v", err)
	}

	if err := svc.SetTheme(context.Background(), "user-1", "light"); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if prefs.themes["user-1"] != "light" {
		t.Fatalf("theme was not stored: %v", prefs.themes)
	}
}

func TestTourFlags(t *testing.T) {
	svc, _, _, _, _, _ := newServiceForTest()
	ctx := context.Background()

	completed, err := svc.TourCompleted(ctx, "user-1", "map")
	if err != nil || completed {
		t.Fatalf("tour should start incomplete: completed=%v err=%v", completed, err)
	}

	if err := svc.SetTourCompleted(ctx, "user-1", "map", true); err != nil {
		t.Fatalf("set tour completed: %v", err)
	}

	completed, err = svc.TourCompleted(ctx, "user-1", "map")
	if err != nil || !completed {
		t.Fatalf("tour should be complete: completed=%v err=%v", completed, err)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	svc, _, _, _, _, _ := newServiceForTest()
	ctx := context.Background()

	err := svc.UpdatePreferences(ctx, "user-1", Preferences{
		Theme: "light",
		Tours: map[string]bool{"map": true},
	})
	if err != nil {
		t.Fatalf("update preferences: %v", err)
	}

	got, err := svc.Preferences(ctx, "user-1")
	if err != nil {
		t.Fatalf("get preferences: %v", err)
	}
	if got.Theme != "light" || !got.Tours["map"] {
		t.Fatalf("unexpected preferences: %+v", got)
	}

	// An empty theme in a partial update must not clobber the stored one.
	if err := svc.UpdatePreferences(ctx, "user-1", Preferences{Tours: map[string]bool{"map": false}}); err != nil {
		t.Fatalf("partial update: %v", err)
	}
	got, err = svc.Preferences(ctx, "user-1")
	if err != nil {
		t.Fatalf("get preferences: %v", err)
	}
	if got.Theme != "light" || got.Tours["map"] {
		t.Fatalf("unexpected preferences after partial update: %+v", got)
	}

	if err := svc.UpdatePreferences(ctx, "user-1", Preferences{Theme: "neon"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown theme should fail validation, got err=%v", err)
	}
	if err := svc.UpdatePreferences(ctx, "", Preferences{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing user id should fail validation, got err=%v", err)
	}
}

func TestDeleteAccountCascades(t *testing.T) {
	svc, users, ownership, favs, sessions, prefs := newServiceForTest()

	if err := svc.DeleteAccount(context.Background(), "user-1"); err != nil {
		t.Fatalf("delete account: %v", err)
	}

	if _, ok := users.users["user-1"]; ok {
		t.Fatalf("user row should be gone")
	}
	if len(ownership.deleted) != 1 || ownership.deleted[0] != "user-1" {
		t.Fatalf("owned artists were not deleted: %v", ownership.deleted)
	}
	if len(favs.deletedArtists) != 1 || len(favs.deletedArtists[0]) != 2 {
		t.Fatalf("favorites pointing at owned artists were not deleted: %v", favs.deletedArtists)
	}
	if len(favs.deletedUsers) != 1 {
		t.Fatalf("own favorites were not deleted: %v", favs.deletedUsers)
	}
	if len(sessions.deleted) != 1 {
		t.Fatalf("sessions were not cleared: %v", sessions.deleted)
	}
	if len(prefs.deleted) != 1 {
		t.Fatalf("preferences were not cleared: %v", prefs.deleted)
	}
}
