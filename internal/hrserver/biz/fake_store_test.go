package biz

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kart-io/hr-center/internal/hrserver/store"
	"github.com/kart-io/hr-center/internal/model"
	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/security/authz/rbac"
)

func newFakeFactory() *store.MemoryFactory {
	return store.NewMemoryFactory()
}

// failStore makes every subsequent store call fail.
func failStore(f *store.MemoryFactory) {
	f.SetError(errors.ErrDatabase.WithMessage("injected fault"))
}

func seedProfile(t *testing.T, f *store.MemoryFactory, id, uid string, role rbac.Role) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, f.Profiles().Create(context.Background(), &model.UserProfile{
		ID:        id,
		UID:       uid,
		FirstName: "Test",
		LastName:  "User",
		Email:     uid + "@example.com",
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}))
}

func seedEmployee(t *testing.T, f *store.MemoryFactory, id, profileID, locationID string) {
	t.Helper()
	require.NoError(t, f.Employees().Create(context.Background(), &model.Employee{
		ID:            id,
		UserProfileID: profileID,
		LocationID:    locationID,
		HireDate:      time.Now().UTC(),
		IsActive:      true,
	}))
}

func seedLocation(t *testing.T, f *store.MemoryFactory, id, city, country string) {
	t.Helper()
	require.NoError(t, f.Locations().Upsert(context.Background(), &model.Location{
		ID:      id,
		City:    city,
		Country: country,
	}))
}

func seedDepartment(t *testing.T, f *store.MemoryFactory, id, name, managerID string) {
	t.Helper()
	require.NoError(t, f.Departments().Create(context.Background(), &model.Department{
		ID:        id,
		Name:      name,
		ManagerID: managerID,
	}))
}

func seedPosition(t *testing.T, f *store.MemoryFactory, id, name, departmentID string) {
	t.Helper()
	require.NoError(t, f.Positions().Create(context.Background(), &model.Position{
		ID:           id,
		Name:         name,
		DepartmentID: departmentID,
	}))
}
