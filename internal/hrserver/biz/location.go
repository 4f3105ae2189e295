package biz

import (
	"context"

	"github.com/kart-io/hr-center/internal/hrserver/store"
	"github.com/kart-io/hr-center/internal/model"
)

// LocationService serves office location lookups.
type LocationService struct {
	store store.Factory
}

// NewLocationService creates a new LocationService.
func NewLocationService(store store.Factory) *LocationService {
	return &LocationService{store: store}
}

// List returns all office locations.
func (s *LocationService) List(ctx context.Context) ([]*model.Location, error) {
	locations, err := s.store.Locations().List(ctx)
	if err != nil {
		return nil, err
	}
	if locations == nil {
		locations = []*model.Location{}
	}
	return locations, nil
}
