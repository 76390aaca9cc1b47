package reports

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
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("report not found")
	ErrArtistNotFound = errors.New("artist not found")
	ErrRateLimited    = errors.New("rate limited")
)

const maxDescriptionLen = 1000

type ReportStore interface {
	Create(ctx context.Context, rep model.Report) error
	Get(ctx context.Context, id string) (model.Report, error)
	List(ctx context.Context, status string, limit int) ([]model.Report, error)
	UpdateStatus(ctx context.Context, id, status string, at time.Time) error
}

type ArtistGetter interface {
	Get(ctx context.Context, id string) (model.Artist, error)
}

type RateGuard interface {
	Allow(ctx context.Context, userID string) (int64, bool, error)
}

type Service struct {
	store   ReportStore
	artists ArtistGetter
	guard   RateGuard
	now     func() time.Time
}

type SubmitInput struct {
	ArtistID    string
	Reason      string
	Description string
}

// RateLimitedError carries the retry hint for a throttled submission.
type RateLimitedError struct {
	RetryAfterSec int64
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry after %ds", e.RetryAfterSec)
}

func (e *RateLimitedError) Is(target error) bool {
	return target == ErrRateLimited
}

func NewService(store ReportStore, artists ArtistGetter, guard RateGuard) *Service {
	return &Service{
		store:   store,
		artists: artists,
		guard:   guard,
		now:     time.Now,
	}
}

func (s *Service) Submit(ctx context.Context, reporterID string, in SubmitInput) (model.Report, error) {
	if strings.TrimSpace(reporterID) == "" {
		return model.Report{}, fmt.Errorf("reporter id is required: %w", ErrValidation)
	}
	if strings.TrimSpace(in.ArtistID) == "" {
		return model.Report{}, fmt.Errorf("artist id is required: %w", ErrValidation)
	}
	if !enums.IsValidReportReason(in.Reason) {
		return model.Report{}, fmt.Errorf("unknown report reason %q: %w", in.Reason, ErrValidation)
	}
	if !validate.Required(in.Description) {
		return model.Report{}, fmt.Errorf("description is required: %w", ErrValidation)
	}
	if !validate.MaxLen(in.Description, maxDescriptionLen) {
		return model.Report{}, fmt.Errorf("description exceeds %d characters: %w", maxDescriptionLen, ErrValidation)
	}

	if _, err := s.artists.Get(ctx, in.ArtistID); err != nil {
		if errors.Is(err, pgrepo.ErrArtistNotFound) {
			return model.Report{}, ErrArtistNotFound
		}
		return model.Report{}, fmt.Errorf("get reported artist: %w", err)
	}

	if s.guard != nil {
		retryAfter, allowed, err := s.guard.Allow(ctx, reporterID)
		if err != nil {
			return model.Report{}, fmt.Errorf("check report rate: %w", err)
		}
		if !allowed {
			return model.Report{}, &RateLimitedError{RetryAfterSec: retryAfter}
		}
	}

	now := s.now().UTC()
	report := model.Report{
		ID:             uuid.NewString(),
		ReporterUserID: reporterID,
		ArtistID:       in.ArtistID,
		Reason:         enums.ReportReason(in.Reason),
		Description:    strings.TrimSpace(in.Description),
		Status:         enums.ReportStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.store.Create(ctx, report); err != nil {
		return model.Report{}, fmt.Errorf("create report: %w", err)
	}

	return report, nil
}

// List is a moderator operation.
func (s *Service) List(ctx context.Context, status string, limit int) ([]model.Report, error) {
	if status != "" && !enums.IsValidReportStatus(status) {
		return nil, fmt.Errorf("unknown report status %q: %w", status, ErrValidation)
	}

	reports, err := s.store.List(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	return reports, nil
}

// SetStatus is a moderator operation.
func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("report id is required: %w", ErrValidation)
	}
	if !enums.IsValidReportStatus(status) {
		return fmt.Errorf("unknown report status %q: %w", status, ErrValidation)
	}

	if err := s.store.UpdateStatus(ctx, id, status, s.now().UTC()); err != nil {
		if errors.Is(err, pgrepo.ErrReportNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update report status: %w", err)
	}

	return nil
}
