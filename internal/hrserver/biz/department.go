package biz

import (
	"context"
	"time"

	"github.com/kart-io/hr-center/internal/hrserver/store"
	"github.com/kart-io/hr-center/internal/model"
	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/utils/id"
)

// OrgChart bundles departments with all positions for the org views.
type OrgChart struct {
	Departments []*model.Department `json:"departments"`
	Positions   []*model.Position   `json:"positions"`
}

// CreateDepartmentRequest creates a department and any initial positions
// under it. The caller becomes the manager of record for both.
type CreateDepartmentRequest struct {
	Name      string                  `json:"name" validate:"required"`
	Positions []CreatePositionRequest `json:"positions" validate:"omitempty,dive"`
}

// CreatePositionRequest describes a position created under a department.
type CreatePositionRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// UpdateDepartmentRequest applies partial updates to a department and to
// a set of existing positions in one call.
type UpdateDepartmentRequest struct {
	Name      *string                 `json:"name"`
	Positions []UpdatePositionRequest `json:"positions" validate:"omitempty,dive"`
}

// UpdatePositionRequest applies a partial update to one position.
type UpdatePositionRequest struct {
	ID          string  `json:"id" validate:"required"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// DepartmentService handles the organizational structure.
type DepartmentService struct {
	store store.Factory
	ids   id.Generator
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(store store.Factory) *DepartmentService {
	return &DepartmentService{store: store, ids: id.NewUUIDGenerator()}
}

// List returns the org chart: all departments and all positions.
func (s *DepartmentService) List(ctx context.Context) (*OrgChart, error) {
	departments, err := s.store.Departments().List(ctx)
	if err != nil {
		return nil, err
	}
	positions, err := s.store.Positions().List(ctx)
	if err != nil {
		return nil, err
	}
	if departments == nil {
		departments = []*model.Department{}
	}
	if positions == nil {
		positions = []*model.Position{}
	}
	return &OrgChart{Departments: departments, Positions: positions}, nil
}

// Create stores a department with the caller as manager, plus any
// initial positions under it.
func (s *DepartmentService) Create(ctx context.Context, managerUID string, req *CreateDepartmentRequest) (*OrgChart, error) {
	now := time.Now().UTC()
	department := &model.Department{
		ID:        s.ids.Generate(),
		Name:      req.Name,
		ManagerID: managerUID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Departments().Create(ctx, department); err != nil {
		return nil, err
	}

	positions := make([]*model.Position, 0, len(req.Positions))
	for _, p := range req.Positions {
		position := &model.Position{
			ID:           s.ids.Generate(),
			Name:         p.Name,
			Description:  p.Description,
			DepartmentID: department.ID,
			ManagerID:    managerUID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.store.Positions().Create(ctx, position); err != nil {
			return nil, err
		}
		positions = append(positions, position)
	}

	return &OrgChart{
		Departments: []*model.Department{department},
		Positions:   positions,
	}, nil
}

// Update applies partial updates to a department and any listed
// positions. Every referenced id must exist.
func (s *DepartmentService) Update(ctx context.Context, departmentID string, req *UpdateDepartmentRequest) (*OrgChart, error) {
	department, err := s.store.Departments().Get(ctx, departmentID)
	if err != nil {
		if errors.IsCode(err, errors.ErrRecordNotFound.Code) {
			return nil, errors.ErrDepartmentNotFound.WithMessagef("department %s", departmentID)
		}
		return nil, err
	}

	now := time.Now().UTC()
	if req.Name != nil {
		department.Name = *req.Name
	}
	department.UpdatedAt = now
	if err := s.store.Departments().Update(ctx, department); err != nil {
		return nil, err
	}

	positions := make([]*model.Position, 0, len(req.Positions))
	for _, p := range req.Positions {
		position, err := s.store.Positions().Get(ctx, p.ID)
		if err != nil {
			if errors.IsCode(err, errors.ErrRecordNotFound.Code) {
				return nil, errors.ErrPositionNotFound.WithMessagef("position %s", p.ID)
			}
			return nil, err
		}
		if p.Name != nil {
			position.Name = *p.Name
		}
		if p.Description != nil {
			position.Description = *p.Description
		}
		position.UpdatedAt = now
		if err := s.store.Positions().Update(ctx, position); err != nil {
			return nil, err
		}
		positions = append(positions, position)
	}

	return &OrgChart{
		Departments: []*model.Department{department},
		Positions:   positions,
	}, nil
}

// Delete removes a department and every position under it.
func (s *DepartmentService) Delete(ctx context.Context, departmentID string) error {
	if _, err := s.store.Departments().Get(ctx, departmentID); err != nil {
		if errors.IsCode(err, errors.ErrRecordNotFound.Code) {
			return errors.ErrDepartmentNotFound.WithMessagef("department %s", departmentID)
		}
		return err
	}
	if err := s.store.Positions().DeleteByDepartment(ctx, departmentID); err != nil {
		return err
	}
	return s.store.Departments().Delete(ctx, departmentID)
}

// DeletePosition removes a single position from the org chart.
func (s *DepartmentService) DeletePosition(ctx context.Context, positionID string) error {
	if _, err := s.store.Positions().Get(ctx, positionID); err != nil {
		if errors.IsCode(err, errors.ErrRecordNotFound.Code) {
			return errors.ErrPositionNotFound.WithMessagef("position %s", positionID)
		}
		return err
	}
	return s.store.Positions().Delete(ctx, positionID)
}
