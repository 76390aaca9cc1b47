package artists

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
	"github.com/provhatrahman/Ahwaaz/internal/services/imagecrop"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("artist not found")
	ErrForbidden  = errors.New("forbidden")
)

const (
	maxNameLen = 200
	maxBioLen  = 500
)

type ArtistStore interface {
	Create(ctx context.Context, a model.Artist) error
	Get(ctx context.Context, id string) (model.Artist, error)
	Update(ctx context.Context, a model.Artist) error
	SetPublished(ctx context.Context, id string, published bool, at time.Time) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]model.Artist, error)
}

// Geocoder resolves a city name to coordinates; unknown cities report ok
// false and the profile keeps zero coordinates.
type Geocoder interface {
	Lookup(city string) (lat, lon float64, ok bool)
}

type Service struct {
	store ArtistStore
	geo   Geocoder
	now   func() time.Time
}

type Input struct {
	Name               string
	Email              string
	LocationCity       string
	LocationCountry    string
	Latitude           *float64
	Longitude          *float64
	PrimaryPractice    string
	SecondaryPractices []string
	StyleGenre         string
	EthnicBackground   string
	Bio                string
	ImageURL           string
	ImagePositionX     *float64
	ImagePositionY     *float64
	ImageScale         *float64
	ContactMethod      string
	PortfolioWebsite   string
	PortfolioInstagram string
	CustomLinks        []model.CustomLink
	IsPublished        *bool
}

func NewService(store ArtistStore, geo Geocoder) *Service {
	return &Service{
		store: store,
		geo:   geo,
		now:   time.Now,
	}
}

func (s *Service) Create(ctx context.Context, ownerID string, in Input) (model.Artist, error) {
	if strings.TrimSpace(ownerID) == "" {
		return model.Artist{}, fmt.Errorf("owner id is required: %w", ErrValidation)
	}
	if s.store == nil {
		return model.Artist{}, fmt.Errorf("artist store is nil")
	}

	now := s.now().UTC()
	crop := imagecrop.DefaultState()
	artist := model.Artist{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		ImagePositionX: crop.PositionX,
		ImagePositionY: crop.PositionY,
		ImageScale:     crop.Scale,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.apply(&artist, in); err != nil {
		return model.Artist{}, err
	}

	if err := s.store.Create(ctx, artist); err != nil {
		return model.Artist{}, fmt.Errorf("create artist: %w", err)
	}

	return artist, nil
}

func (s *Service) Update(ctx context.Context, callerID, artistID string, in Input) (model.Artist, error) {
	artist, err := s.getOwned(ctx, callerID, artistID)
	if err != nil {
		return model.Artist{}, err
	}

	if err := s.apply(&artist, in); err != nil {
		return model.Artist{}, err
	}
	artist.UpdatedAt = s.now().UTC()

	if err := s.store.Update(ctx, artist); err != nil {
		if isNotFound(err) {
			return model.Artist{}, ErrNotFound
		}
		return model.Artist{}, fmt.Errorf("update artist: %w", err)
	}

	return artist, nil
}

func (s *Service) SetPublished(ctx context.Context, callerID, artistID string, published bool) error {
	if _, err := s.getOwned(ctx, callerID, artistID); err != nil {
		return err
	}

	if err := s.store.SetPublished(ctx, artistID, published, s.now().UTC()); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("set artist published: %w", err)
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, callerID, artistID string) error {
	if _, err := s.getOwned(ctx, callerID, artistID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, artistID); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete artist: %w", err)
	}

	return nil
}

// Get applies the visibility rule: unpublished profiles are visible only
// to their owner.
func (s *Service) Get(ctx context.Context, callerID, artistID string) (model.Artist, error) {
	artist, err := s.store.Get(ctx, artistID)
	if err != nil {
		if isNotFound(err) {
			return model.Artist{}, ErrNotFound
		}
		return model.Artist{}, fmt.Errorf("get artist: %w", err)
	}

	if !artist.IsPublished && artist.OwnerID != callerID {
		return model.Artist{}, ErrNotFound
	}

	return artist, nil
}

func (s *Service) ListMine(ctx context.Context, ownerID string) ([]model.Artist, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("owner id is required: %w", ErrValidation)
	}

	artists, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list own artists: %w", err)
	}

	return artists, nil
}

func (s *Service) getOwned(ctx context.Context, callerID, artistID string) (model.Artist, error) {
	if strings.TrimSpace(callerID) == "" || strings.TrimSpace(artistID) == "" {
		return model.Artist{}, fmt.Errorf("caller and artist ids are required: %w", ErrValidation)
	}

	artist, err := s.store.Get(ctx, artistID)
	if err != nil {
		if isNotFound(err) {
			return model.Artist{}, ErrNotFound
		}
		return model.Artist{}, fmt.Errorf("get artist: %w", err)
	}
	if artist.OwnerID != callerID {
		return model.Artist{}, ErrForbidden
	}

	return artist, nil
}

func (s *Service) apply(artist *model.Artist, in Input) error {
	if !validate.Required(in.Name) {
		return fmt.Errorf("name is required: %w", ErrValidation)
	}
	if !validate.MaxLen(in.Name, maxNameLen) {
		return fmt.Errorf("name is too long: %w", ErrValidation)
	}
	if !validate.MaxLen(in.Bio, maxBioLen) {
		return fmt.Errorf("bio exceeds %d characters: %w", maxBioLen, ErrValidation)
	}
	if in.PrimaryPractice != "" && !enums.IsValidPractice(in.PrimaryPractice) {
		return fmt.Errorf("unknown primary practice %q: %w", in.PrimaryPractice, ErrValidation)
	}
	for _, practice := range in.SecondaryPractices {
		if !enums.IsValidPractice(practice) {
			return fmt.Errorf("unknown secondary practice %q: %w", practice, ErrValidation)
		}
	}

	artist.Name = strings.TrimSpace(in.Name)
	artist.Email = strings.TrimSpace(in.Email)
	artist.LocationCity = strings.TrimSpace(in.LocationCity)
	artist.LocationCountry = strings.TrimSpace(in.LocationCountry)
	artist.PrimaryPractice = in.PrimaryPractice
	artist.SecondaryPractices = dedupePractices(in.SecondaryPractices, in.PrimaryPractice)
	artist.StyleGenre = strings.TrimSpace(in.StyleGenre)
	artist.EthnicBackground = strings.TrimSpace(in.EthnicBackground)
	artist.Bio = strings.TrimSpace(in.Bio)
	artist.ImageURL = strings.TrimSpace(in.ImageURL)
	artist.ContactMethod = strings.TrimSpace(in.ContactMethod)
	artist.PortfolioWebsite = strings.TrimSpace(in.PortfolioWebsite)
	artist.PortfolioInstagram = strings.TrimSpace(in.PortfolioInstagram)
	artist.CustomLinks = in.CustomLinks

	if in.ImagePositionX != nil {
		if *in.ImagePositionX < 0 || *in.ImagePositionX > 100 {
			return fmt.Errorf("image position x out of range: %w", ErrValidation)
		}
		artist.ImagePositionX = *in.ImagePositionX
	}
	if in.ImagePositionY != nil {
		if *in.ImagePositionY < 0 || *in.ImagePositionY > 100 {
			return fmt.Errorf("image position y out of range: %w", ErrValidation)
		}
		artist.ImagePositionY = *in.ImagePositionY
	}
	if in.ImageScale != nil {
		if *in.ImageScale < imagecrop.MinScale || *in.ImageScale > imagecrop.MaxScale {
			return fmt.Errorf("image scale out of range: %w", ErrValidation)
		}
		artist.ImageScale = *in.ImageScale
	}
	if in.IsPublished != nil {
		artist.IsPublished = *in.IsPublished
	}

	s.resolveCoordinates(artist, in)

	return nil
}

// resolveCoordinates prefers explicit coordinates from the caller, then
// the static geocoding table, then whatever the record already has.
func (s *Service) resolveCoordinates(artist *model.Artist, in Input) {
	if in.Latitude != nil && in.Longitude != nil {
		artist.Latitude = *in.Latitude
		artist.Longitude = *in.Longitude
		return
	}

	if s.geo != nil && artist.LocationCity != "" {
		if lat, lon, ok := s.geo.Lookup(artist.LocationCity); ok {
			artist.Latitude = lat
			artist.Longitude = lon
		}
	}
}

func dedupePractices(secondary []string, primary string) []string {
	if len(secondary) == 0 {
		return nil
	}

	seen := map[string]bool{primary: true}
	out := make([]string, 0, len(secondary))
	for _, practice := range secondary {
		if seen[practice] {
			continue
		}
		seen[practice] = true
		out = append(out, practice)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func isNotFound(err error) bool {
	return errors.Is(err, pgrepo.ErrArtistNotFound)
}
