// Package store provides the persistence layer for the HR center,
// backed by MongoDB collections.
package store

import (
	"context"

	"github.com/kart-io/hr-center/internal/model"
)

// Factory defines the factory interface for creating stores.
type Factory interface {
	Profiles() ProfileStore
	Employees() EmployeeStore
	Departments() DepartmentStore
	Positions() PositionStore
	Locations() LocationStore
	Ping(ctx context.Context) error
	Close() error
}

// ProfileStore defines user profile storage.
type ProfileStore interface {
	Create(ctx context.Context, profile *model.UserProfile) error
	Get(ctx context.Context, id string) (*model.UserProfile, error)
	GetByUID(ctx context.Context, uid string) (*model.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*model.UserProfile, error)
	List(ctx context.Context) ([]*model.UserProfile, error)
	Update(ctx context.Context, profile *model.UserProfile) error
	Delete(ctx context.Context, id string) error
}

// EmployeeStore defines employee record storage.
type EmployeeStore interface {
	Create(ctx context.Context, employee *model.Employee) error
	Get(ctx context.Context, id string) (*model.Employee, error)
	List(ctx context.Context) ([]*model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, id string) error
}

// DepartmentStore defines department storage.
type DepartmentStore interface {
	Create(ctx context.Context, department *model.Department) error
	Get(ctx context.Context, id string) (*model.Department, error)
	List(ctx context.Context) ([]*model.Department, error)
	Update(ctx context.Context, department *model.Department) error
	Delete(ctx context.Context, id string) error
}

// PositionStore defines position storage.
type PositionStore interface {
	Create(ctx context.Context, position *model.Position) error
	Get(ctx context.Context, id string) (*model.Position, error)
	List(ctx context.Context) ([]*model.Position, error)
	Update(ctx context.Context, position *model.Position) error
	Delete(ctx context.Context, id string) error
	DeleteByDepartment(ctx context.Context, departmentID string) error
}

// LocationStore defines location storage. Upsert keeps reference data
// seeding idempotent.
type LocationStore interface {
	Upsert(ctx context.Context, location *model.Location) error
	Get(ctx context.Context, id string) (*model.Location, error)
	List(ctx context.Context) ([]*model.Location, error)
}
