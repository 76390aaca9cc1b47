package feedback

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

type memFeedback struct {
	items map[string]model.Feedback
}

func newMemFeedback() *memFeedback {
	return &memFeedback{items: map[string]model.Feedback{}}
}

func (m *memFeedback) Create(_ context.Context, fb model.Feedback) error {
	m.items[fb.ID] = fb
	return nil
}

func (m *memFeedback) List(_ context.Context, status string, _ int) ([]model.Feedback, error) {
	var out []model.Feedback
	for _, fb := range m.items {
		if status == "" || string(fb.Status) == status {
			out = append(out, fb)
		}
	}
	return out, nil
}

func (m *memFeedback) UpdateStatus(_ context.Context, id, status string, at time.Time) error {
	fb, ok := m.items[id]
	if !ok {
		return pgrepo.ErrFeedbackNotFound
	}
	fb.Status = enums.FeedbackStatus(status)
	fb.UpdatedAt = at
	m.items[id] = fb
	return nil
}

type fixedGuard struct {
	allowed    bool
	retryAfter int64
}

func (g fixedGuard) Allow(_ context.Context, _ string) (int64, bool, error) {
	return g.retryAfter, g.allowed, nil
}

func TestSubmitCreatesNewFeedback(t *testing.T) {
	store := newMemFeedback()
	svc := NewService(store, fixedGuard{allowed: true})

	fb, err := svc.Submit(context.Background(), "user-1", SubmitInput{
		Type:        "bug_report",
		Title:       "Map markers overlap",
		Description: "Two city markers render on top of each other.",
	})
	if err != nil {
		t.Fatalf("submit feedback: %v", err)
	}

	if fb.Status != enums.FeedbackStatusNew {
		t.Fatalf("new feedback should have status new, got %s", fb.Status)
	}
	if len(store.items) != 1 {
		t.Fatalf("expected one stored item, got %d", len(store.items))
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := NewService(newMemFeedback(), fixedGuard{allowed: true})

	tests := []struct {
		name string
		in   SubmitInput
	}{
		{name: "bad type", in: SubmitInput{Type: "rant", Title: "t", Description: "d"}},
		{name: "empty title", in: SubmitInput{Type: "complaint", Title: " ", Description: "d"}},
		{name: "long title", in: SubmitInput{Type: "complaint", Title: strings.Repeat("x", 201), Description: "d"}},
		{name: "empty description", in: SubmitInput{Type: "complaint", Title: "t", Description: ""}},
		{name: "long description", in: SubmitInput{Type: "complaint", Title: "t", Description: strings.Repeat("x", 2001)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Submit(context.Background(), "user-1", tt.in); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got err=%v", err)
			}
		})
	}
}

func TestSubmitRateLimited(t *testing.T) {
	svc := NewService(newMemFeedback(), fixedGuard{allowed: false, retryAfter: 7})

	_, err := svc.Submit(context.Background(), "user-1", SubmitInput{
		Type:        "general_feedback",
		Title:       "t",
		Description: "d",
	})
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected rate limited, got err=%v", err)
	}

	var rateErr *RateLimitedError
	if !errors.As(err, &rateErr) || rateErr.RetryAfterSec != 7 {
		t.Fatalf("expected retry hint of 7s, got %+v", rateErr)
	}
}

func TestSetStatus(t *testing.T) {
	store := newMemFeedback()
	svc := NewService(store, fixedGuard{allowed: true})

	fb, err := svc.Submit(context.Background(), "user-1", SubmitInput{
		Type:        "feature_request",
		Title:       "Dark mode for the map",
		Description: "Please add a dark tile set.",
	})
	if err != nil {
		t.Fatalf("submit feedback: %v", err)
	}

	if err := svc.SetStatus(context.Background(), fb.ID, "closed"); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if store.items[fb.ID].Status != enums.FeedbackStatusClosed {
		t.Fatalf("status was not updated: %s", store.items[fb.ID].Status)
	}

	if err := svc.SetStatus(context.Background(), "missing", "closed"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing feedback should be not found, got err=%v", err)
	}
}
