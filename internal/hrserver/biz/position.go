package biz

import (
	"context"

	"github.com/kart-io/hr-center/internal/hrserver/store"
	"github.com/kart-io/hr-center/internal/model"
)

// PositionService serves position lookups.
type PositionService struct {
	store store.Factory
}

// NewPositionService creates a new PositionService.
func NewPositionService(store store.Factory) *PositionService {
	return &PositionService{store: store}
}

// List returns all positions.
func (s *PositionService) List(ctx context.Context) ([]*model.Position, error) {
	positions, err := s.store.Positions().List(ctx)
	if err != nil {
		return nil, err
	}
	if positions == nil {
		positions = []*model.Position{}
	}
	return positions, nil
}
