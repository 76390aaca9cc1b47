package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/provhatrahman/Ahwaaz/internal/domain/enums"
	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
	redrepo "github.com/provhatrahman/Ahwaaz/internal/repo/redis"
	authsvc "github.com/provhatrahman/Ahwaaz/internal/services/auth"
)

type stubProvider struct {
	info authsvc.UserInfo
	err  error
}

func (p stubProvider) Fetch(_ context.Context, token string) (authsvc.UserInfo, error) {
	if token == "" {
		return authsvc.UserInfo{}, authsvc.ErrInvalidInput
	}
	if p.err != nil {
		return authsvc.UserInfo{}, p.err
	}
	return p.info, nil
}

type stubDirectory struct {
	users map[string]model.User
}

func (d *stubDirectory) UpsertBySubject(_ context.Context, id, subject, email, fullName string, at time.Time) (model.User, error) {
	if d.users == nil {
		d.users = map[string]model.User{}
	}
	if existing, ok := d.users[subject]; ok {
		existing.Email = email
		existing.FullName = fullName
		existing.UpdatedAt = at
		d.users[subject] = existing
		return existing, nil
	}
	user := model.User{
		ID:           id,
		OAuthSubject: subject,
		Email:        email,
		FullName:     fullName,
		Role:         enums.RoleUser,
		CreatedAt:    at,
		UpdatedAt:    at,
	}
	d.users[subject] = user
	return user, nil
}

func TestLoginCreatesUserAndSession(t *testing.T) {
	svc, dir, cleanup := newAuthServiceForTest(t, stubProvider{info: authsvc.UserInfo{
		Subject:  "google-sub-1",
		Email:    "amina@example.com",
		FullName: "Amina Khan",
	}})
	defer cleanup()

	ctx := context.Background()
	res, err := svc.Login(ctx, "provider-token")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if res.Me.Email != "amina@example.com" {
		t.Fatalf("unexpected email in login result: %s", res.Me.Email)
	}
	if res.Me.Role != string(enums.RoleUser) {
		t.Fatalf("new users should get the user role, got %s", res.Me.Role)
	}
	if len(dir.users) != 1 {
		t.Fatalf("expected one user row, got %d", len(dir.users))
	}

	claims, err := svc.ValidateAccessToken(ctx, res.AccessToken)
	if err != nil {
		t.Fatalf("validate access token: %v", err)
	}
	if claims.UserID != res.Me.ID {
		t.Fatalf("claims user id %s does not match login result %s", claims.UserID, res.Me.ID)
	}
}

func TestLoginSameSubjectReusesUser(t *testing.T) {
	svc, dir, cleanup := newAuthServiceForTest(t, stubProvider{info: authsvc.UserInfo{
		Subject: "google-sub-2",
		Email:   "amina@example.com",
	}})
	defer cleanup()

	ctx := context.Background()
	first, err := svc.Login(ctx, "provider-token")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := svc.Login(ctx, "provider-token")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	if first.Me.ID != second.Me.ID {
		t.Fatalf("same subject should map to the same user id")
	}
	if len(dir.users) != 1 {
		t.Fatalf("expected one user row, got %d", len(dir.users))
	}
}

func TestLoginRejectsBadProviderToken(t *testing.T) {
	svc, _, cleanup := newAuthServiceForTest(t, stubProvider{err: authsvc.ErrUnauthorized})
	defer cleanup()

	if _, err := svc.Login(context.Background(), "bad-token"); !errors.Is(err, authsvc.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got err=%v", err)
	}
}

func TestRefreshRotation(t *testing.T) {
	svc, _, cleanup := newAuthServiceForTest(t, stubProvider{info: authsvc.UserInfo{Subject: "google-sub-3"}})
	defer cleanup()

	ctx := context.Background()
	loginRes, err := svc.Login(ctx, "provider-token")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refreshRes, err := svc.Refresh(ctx, loginRes.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if refreshRes.RefreshToken == loginRes.RefreshToken {
		t.Fatalf("refresh token was not rotated")
	}

	if _, err := svc.Refresh(ctx, loginRes.RefreshToken); !errors.Is(err, authsvc.ErrUnauthorized) {
		t.Fatalf("old refresh token should be unauthorized, got err=%v", err)
	}

	if _, err := svc.ValidateAccessToken(ctx, refreshRes.AccessToken); err != nil {
		t.Fatalf("new access token validation failed: %v", err)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc, _, cleanup := newAuthServiceForTest(t, stubProvider{info: authsvc.UserInfo{Subject: "google-sub-4"}})
	defer cleanup()

	ctx := context.Background()
	loginRes, err := svc.Login(ctx, "provider-token")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := svc.ValidateAccessToken(ctx, loginRes.AccessToken)
	if err != nil {
		t.Fatalf("validate access token before logout: %v", err)
	}

	if err := svc.Logout(ctx, claims.SID); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := svc.ValidateAccessToken(ctx, loginRes.AccessToken); !errors.Is(err, authsvc.ErrUnauthorized) {
		t.Fatalf("access token should be unauthorized after logout, got err=%v", err)
	}
}

func newAuthServiceForTest(t *testing.T, provider stubProvider) (*authsvc.Service, *stubDirectory, func()) {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}

	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})
	repo := redrepo.NewSessionRepo(client)
	dir := &stubDirectory{}
	jwtManager := authsvc.NewJWTManager("test-secret", 15*time.Minute)
	svc := authsvc.NewService(jwtManager, repo, dir, provider, 45*24*time.Hour)

	cleanup := func() {
		_ = client.Close()
		mini.Close()
	}

	return svc, dir, cleanup
}
