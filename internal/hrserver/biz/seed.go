package biz

import (
	"context"
	"time"

	"github.com/kart-io/logger"

	"github.com/kart-io/hr-center/internal/hrserver/store"
	"github.com/kart-io/hr-center/internal/model"
)

// seedLocations is the fixed office location catalogue loaded by
// init-data. Ids are stable so repeated seeding is idempotent.
var seedLocations = []model.Location{
	{ID: "loc1", City: "New York", Country: "US", Latitude: 40.7128, Longitude: -74.0060},
	{ID: "loc2", City: "London", Country: "GB", Latitude: 51.5074, Longitude: -0.1278},
	{ID: "loc3", City: "Paris", Country: "FR", Latitude: 48.8566, Longitude: 2.3522},
	{ID: "loc4", City: "Tokyo", Country: "JP", Latitude: 35.6895, Longitude: 139.6917},
	{ID: "loc5", City: "Sydney", Country: "AU", Latitude: -33.8688, Longitude: 151.2093},
	{ID: "loc6", City: "Berlin", Country: "DE", Latitude: 52.5200, Longitude: 13.4050},
	{ID: "loc7", City: "Moscow", Country: "RU", Latitude: 55.7558, Longitude: 37.6173},
	{ID: "loc8", City: "Beijing", Country: "CN", Latitude: 39.9042, Longitude: 116.4074},
	{ID: "loc9", City: "Rome", Country: "IT", Latitude: 41.9028, Longitude: 12.4964},
	{ID: "loc10", City: "Ulaanbaatar", Country: "MN", Latitude: 47.8864, Longitude: 106.9057},
}

// SeedService loads reference data into the store.
type SeedService struct {
	store store.Factory
}

// NewSeedService creates a new SeedService.
func NewSeedService(store store.Factory) *SeedService {
	return &SeedService{store: store}
}

// InitLocations upserts the office location catalogue and returns the
// stored documents.
func (s *SeedService) InitLocations(ctx context.Context) ([]*model.Location, error) {
	now := time.Now().UTC()
	out := make([]*model.Location, 0, len(seedLocations))
	for i := range seedLocations {
		loc := seedLocations[i]
		loc.CreatedAt = now
		loc.UpdatedAt = now
		if err := s.store.Locations().Upsert(ctx, &loc); err != nil {
			return nil, err
		}
		out = append(out, &loc)
	}
	logger.Infow("seeded office locations", "count", len(out))
	return out, nil
}
