package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/provhatrahman/Ahwaaz/internal/domain/enums"
	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
	"github.com/provhatrahman/Ahwaaz/internal/pkg/validate"
	pgrepo "github.com/provhatrahman/Ahwaaz/internal/repo/postgres"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("feedback not found")
	ErrRateLimited = errors.New("rate limited")
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
)

type FeedbackStore interface {
	Create(ctx context.Context, fb model.Feedback) error
	List(ctx context.Context, status string, limit int) ([]model.Feedback, error)
	UpdateStatus(ctx context.Context, id, status string, at time.Time) error
}

type RateGuard interface {
	Allow(ctx context.Context, userID string) (int64, bool, error)
}

type Service struct {
	store FeedbackStore
	guard RateGuard
	now   func() time.Time
}

type SubmitInput struct {
	Type        string
	Title       string
	Description string
}

type RateLimitedError struct {
	RetryAfterSec int64
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry after %ds", e.RetryAfterSec)
}

func (e *RateLimitedError) Is(target error) bool {
	return target == ErrRateLimited
}

func NewService(store FeedbackStore, guard RateGuard) *Service {
	return &Service{
		store: store,
		guard: guard,
		now:   time.Now,
	}
}

func (s *Service) Submit(ctx context.Context, userID string, in SubmitInput) (model.Feedback, error) {
	if strings.TrimSpace(userID) == "" {
		return model.Feedback{}, fmt.Errorf("user id is required: %w", ErrValidation)
	}
	if !enums.IsValidFeedbackType(in.Type) {
		return model.Feedback{}, fmt.Errorf("unknown feedback type %q: %w", in.Type, ErrValidation)
	}
	if !validate.Required(in.Title) {
		return model.Feedback{}, fmt.Errorf("title is required: %w", ErrValidation)
	}
	if !validate.MaxLen(in.Title, maxTitleLen) {
		return model.Feedback{}, fmt.Errorf("title exceeds %d characters: %w", maxTitleLen, ErrValidation)
	}
	if !validate.Required(in.Description) {
		return model.Feedback{}, fmt.Errorf("description is required: %w", ErrValidation)
	}
	if !validate.MaxLen(in.Description, maxDescriptionLen) {
		return model.Feedback{}, fmt.Errorf("description exceeds %d characters: %w", maxDescriptionLen, ErrValidation)
	}

	if s.guard != nil {
		retryAfter, allowed, err := s.guard.Allow(ctx, userID)
		if err != nil {
			return model.Feedback{}, fmt.Errorf("check feedback rate: %w", err)
		}
		if !allowed {
			return model.Feedback{}, &RateLimitedError{RetryAfterSec: retryAfter}
		}
	}

	now := s.now().UTC()
	fb := model.Feedback{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        enums.FeedbackType(in.Type),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Status:      enums.FeedbackStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Create(ctx, fb); err != nil {
		return model.Feedback{}, fmt.Errorf("create feedback: %w", err)
	}

	return fb, nil
}

// List is a moderator operation.
func (s *Service) List(ctx context.Context, status string, limit int) ([]model.Feedback, error) {
	if status != "" && !enums.IsValidFeedbackStatus(status) {
		return nil, fmt.Errorf("unknown feedback status %q: %w", status, ErrValidation)
	}

	items, err := s.store.List(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	return items, nil
}

// SetStatus is a moderator operation.
func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("feedback id is required: %w", ErrValidation)
	}
	if !enums.IsValidFeedbackStatus(status) {
		return fmt.Errorf("unknown feedback status %q: %w", status, ErrValidation)
	}

	if err := s.store.UpdateStatus(ctx, id, status, s.now().UTC()); err != nil {
		if errors.Is(err, pgrepo.ErrFeedbackNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update feedback status: %w", err)
	}

	return nil
}
