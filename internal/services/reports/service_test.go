package reports

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/provhatrahman/Ahwaaz/internal/domain/enums"
	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
	pgrepo "github.com/provhatrahman/Ahwaaz/internal/repo/postgres"
)

type memReports struct {
	reports map[string]model.Report
}

func newMemReports() *memReports {
	return &memReports{reports: map[string]model.Report{}}
}

func (m *memReports) Create(_ context.Context, rep model.Report) error {
	m.reports[rep.ID] = rep
	return nil
}

func (m *memReports) Get(_ context.Context, id string) (model.Report, error) {
	rep, ok := m.reports[id]
	if !ok {
		return model.Report{}, pgrepo.ErrReportNotFound
	}
	return rep, nil
}

func (m *memReports) List(_ context.Context, status string, _ int) ([]model.Report, error) {
	var out []model.Report
	for _, rep := range m.reports {
		if status == "" || string(rep.Status) == status {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (m *memReports) UpdateStatus(_ context.Context, id, status string, at time.Time) error {
	rep, ok := m.reports[id]
	if !ok {
		return pgrepo.ErrReportNotFound
	}
	rep.Status = enums.ReportStatus(status)
	rep.UpdatedAt = at
	m.reports[id] = rep
	return nil
}

type memArtists map[string]model.Artist

func (m memArtists) Get(_ context.Context, id string) (model.Artist, error) {
	a, ok := m[id]
	if !ok {
		return model.Artist{}, pgrepo.ErrArtistNotFound
	}
	return a, nil
}

type fixedGuard struct {
	allowed    bool
	retryAfter int64
}

func (g fixedGuard) Allow(_ context.Context, _ string) (int64, bool, error) {
	return g.retryAfter, g.allowed, nil
}

func TestSubmitCreatesPendingReport(t *testing.T) {
	store := newMemReports()
	svc := NewService(store, memArtists{"a1": {ID: "a1", IsPublished: true}}, fixedGuard{allowed: true})

	report, err := svc.Submit(context.Background(), "user-1", SubmitInput{
		ArtistID:    "a1",
		Reason:      "spam",
		Description: "Posts the same link everywhere.",
	})
	if err != nil {
		t.Fatalf("submit report: %v", err)
	}

	if report.Status != enums.ReportStatusPending {
		t.Fatalf("new reports should be pending, got %s", report.Status)
	}
	if report.ReporterUserID != "user-1" {
		t.Fatalf("reporter should be the caller, got %s", report.ReporterUserID)
	}
	if len(store.reports) != 1 {
		t.Fatalf("expected one stored report, got %d", len(store.reports))
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := NewService(newMemReports(), memArtists{"a1": {ID: "a1"}}, fixedGuard{allowed: true})

	tests := []struct {
		name string
		in   SubmitInput
	}{
		{name: "missing artist", in: SubmitInput{Reason: "spam", Description: "x"}},
		{name: "bad reason", in: SubmitInput{ArtistID: "a1", Reason: "ugly_profile", Description: "x"}},
		{name: "empty description", in: SubmitInput{ArtistID: "a1", Reason: "spam", Description: "  "}},
		{name: "long description", in: SubmitInput{ArtistID: "a1", Reason: "spam", Description: strings.Repeat("x", 1001)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Submit(context.Background(), "user-1", tt.in); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got err=%v", err)
			}
		})
	}
}

func TestSubmitUnknownArtist(t *testing.T) {
	svc := NewService(newMemReports(), memArtists{}, fixedGuard{allowed: true})

	_, err := svc.Submit(context.Background(), "user-1", SubmitInput{
		ArtistID:    "missing",
		Reason:      "spam",
		Description: "x",
	})
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected artist not found, got err=%v", err)
	}
}

func TestSubmitRateLimited(t *testing.T) {
	svc := NewService(newMemReports(), memArtists{"a1": {ID: "a1"}}, fixedGuard{allowed: false, retryAfter: 42})

	_, err := svc.Submit(context.Background(), "user-1", SubmitInput{
		ArtistID:    "a1",
		Reason:      "spam",
		Description: "x",
	})
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected rate limited, got err=%v", err)
	}

	var rateErr *RateLimitedError
	if !errors.As(err, &rateErr) || rateErr.RetryAfterSec != 42 {
		t.Fatalf("expected retry hint of 42s, got %+v", rateErr)
	}
}

func TestSetStatus(t *testing.T) {
	store := newMemReports()
	svc := NewService(store, memArtists{"a1": {ID: "a1"}}, fixedGuard{allowed: true})

	report, err := svc.Submit(context.Background(), "user-1", SubmitInput{
		ArtistID:    "a1",
		Reason:      "harassment",
		Description: "x",
	})
	if err != nil {
		t.Fatalf("submit report: %v", err)
	}

	if err := svc.SetStatus(context.Background(), report.ID, "resolved"); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if store.reports[report.ID].Status != enums.ReportStatusResolved {
		t.Fatalf("status was not updated: %s", store.reports[report.ID].Status)
	}

	if err := svc.SetStatus(context.Background(), report.ID, "shredded"); !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown status should fail validation, got err=%v", err)
	}
	if err := svc.SetStatus(context.Background(), "missing", "resolved"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing report should be not found, got err=%v", err)
	}
}
