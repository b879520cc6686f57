package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/and161185/ecoscan/internal/catalog"
	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/model"
	"github.com/and161185/ecoscan/internal/repository"
)

var counterName = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// DirectoryService serves the catalog, collection points, usage counters
// and profile extras.
type DirectoryService interface {
	// Types lists the waste type catalog in order.
	Types() []model.WasteType
	// Locations lists collection points accepting wasteType ("" = all).
	Locations(ctx context.Context, wasteType string) ([]model.CollectionPoint, error)
	// BumpCounter increments a usage counter and returns its new value.
	BumpCounter(ctx context.Context, name string) (int64, error)
	// SaveProfile stores the profile for the caller's email.
	SaveProfile(ctx context.Context, p model.Profile) error
	// Profile loads the caller's profile.
	Profile(ctx context.Context, email string) (*model.Profile, error)
}

type DirectoryServiceImpl struct {
	cat       *catalog.Catalog
	locations repository.LocationRepository
	counters  repository.CounterRepository
	profiles  repository.ProfileRepository
	now       func() time.Time
}

// NewDirectoryService constructs DirectoryService.
func NewDirectoryService(cat *catalog.Catalog, l repository.LocationRepository, c repository.CounterRepository, p repository.ProfileRepository) *DirectoryServiceImpl {
	return &DirectoryServiceImpl{cat: cat, locations: l, counters: c, profiles: p, now: time.Now}
}

func (s *DirectoryServiceImpl) Types() []model.WasteType { return s.cat.All() }

func (s *DirectoryServiceImpl) Locations(ctx context.Context, wasteType string) ([]model.CollectionPoint, error) {
	if wasteType != "" {
		if _, ok := s.cat.Lookup(wasteType); !ok {
			return nil, fmt.Errorf("validation: unknown waste type %q: %w", wasteType, errs.ErrInvalidInput)
		}
	}
	return s.locations.List(ctx, wasteType)
}

func (s *DirectoryServiceImpl) BumpCounter(ctx context.Context, name string) (int64, error) {
	if !counterName.MatchString(name) {
		return 0, fmt.Errorf("validation: counter name %q: %w", name, errs.ErrInvalidInput)
	}
	return s.counters.Increment(ctx, repository.CounterEvent, name)
}

func (s *DirectoryServiceImpl) SaveProfile(ctx context.Context, p model.Profile) error {
	if p.Email == "" {
		return errs.ErrUnauthorized
	}
	if len(p.City) > 128 {
		return fmt.Errorf("validation: city too long: %w", errs.ErrInvalidInput)
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = s.now().UTC()
	}
	return s.profiles.Upsert(ctx, &p)
}

func (s *DirectoryServiceImpl) Profile(ctx context.Context, email string) (*model.Profile, error) {
	if email == "" {
		return nil, errs.ErrUnauthorized
	}
	return s.profiles.Get(ctx, email)
}
