package biz

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/security/authz/rbac"
)

func TestEmployeeService_Create(t *testing.T) {
	f := newFakeFactory()
	svc := NewEmployeeService(f)

	detail, err := svc.Create(context.Background(), &CreateEmployeeRequest{
		UID:       "carol",
		FirstName: "Carol",
		LastName:  "Chen",
		Email:     "carol@example.com",
		Salary:    50000,
	})
	require.NoError(t, err)
	require.NotNil(t, detail.Employee)
	require.NotNil(t, detail.UserProfile)

	assert.NotEmpty(t, detail.Employee.ID)
	assert.Equal(t, detail.UserProfile.ID, detail.Employee.UserProfileID)
	assert.Equal(t, "carol", detail.UserProfile.UID)
	assert.Equal(t, rbac.RoleEmployee, detail.UserProfile.Role)
	assert.True(t, detail.Employee.IsActive)
	assert.False(t, detail.Employee.HireDate.IsZero())
}

func TestEmployeeService_Create_ExplicitFields(t *testing.T) {
	f := newFakeFactory()
	svc := NewEmployeeService(f)

	hired := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	inactive := false
	detail, err := svc.Create(context.Background(), &CreateEmployeeRequest{
		UID:       "dave",
		FirstName: "Dave",
		LastName:  "Diaz",
		Email:     "dave@example.com",
		Role:      rbac.RoleManager,
		HireDate:  &hired,
		IsActive:  &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, rbac.RoleManager, detail.UserProfile.Role)
	assert.Equal(t, hired, detail.Employee.HireDate)
	assert.False(t, detail.Employee.IsActive)
}

func TestEmployeeService_List(t *testing.T) {
	f := newFakeFactory()
	seedProfile(t, f, "p1", "alice", rbac.RoleAdmin)
	seedEmployee(t, f, "e1", "p1", "loc1")
	svc := NewEmployeeService(f)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list.Employees, 1)
	assert.Len(t, list.UserProfiles, 1)
}

func TestEmployeeService_List_Empty(t *testing.T) {
	svc := NewEmployeeService(newFakeFactory())

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list.Employees)
	assert.Empty(t, list.Employees)
	assert.NotNil(t, list.UserProfiles)
}

func TestEmployeeService_Get_Missing(t *testing.T) {
	svc := NewEmployeeService(newFakeFactory())

	_, err := svc.Get(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrEmployeeNotFound.Code))
}

func TestEmployeeService_OwnerUID(t *testing.T) {
	f := newFakeFactory()
	seedProfile(t, f, "p1", "carol", rbac.RoleEmployee)
	seedEmployee(t, f, "e1", "p1", "loc1")
	seedEmployee(t, f, "e2", "p-gone", "loc1")
	svc := NewEmployeeService(f)

	tests := []struct {
		name       string
		employeeID string
		wantUID    string
	}{
		{name: "owned record", employeeID: "e1", wantUID: "carol"},
		{name: "missing record", employeeID: "ghost", wantUID: ""},
		{name: "dangling profile link", employeeID: "e2", wantUID: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uid, err := svc.OwnerUID(context.Background(), tt.employeeID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantUID, uid)
		})
	}
}

func TestEmployeeService_OwnerUID_StoreFault(t *testing.T) {
	f := newFakeFactory()
	failStore(f)
	svc := NewEmployeeService(f)

	_, err := svc.OwnerUID(context.Background(), "e1")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrDatabase.Code))
}

func TestEmployeeService_Update_Partial(t *testing.T) {
	f := newFakeFactory()
	seedProfile(t, f, "p1", "carol", rbac.RoleEmployee)
	seedEmployee(t, f, "e1", "p1", "loc1")
	svc := NewEmployeeService(f)

	salary := 64000.0
	first := "Caroline"
	detail, err := svc.Update(context.Background(), "e1", &UpdateEmployeeRequest{
		Salary:    &salary,
		FirstName: &first,
	})
	require.NoError(t, err)
	assert.Equal(t, salary, detail.Employee.Salary)
	assert.Equal(t, "loc1", detail.Employee.LocationID)
	require.NotNil(t, detail.UserProfile)
	assert.Equal(t, "Caroline", detail.UserProfile.FirstName)
}

func TestEmployeeService_Update_Missing(t *testing.T) {
	svc := NewEmployeeService(newFakeFactory())

	salary := 1.0
	_, err := svc.Update(context.Background(), "ghost", &UpdateEmployeeRequest{Salary: &salary})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrEmployeeNotFound.Code))
}

func TestEmployeeService_Delete_RemovesProfile(t *testing.T) {
	f := newFakeFactory()
	seedProfile(t, f, "p1", "carol", rbac.RoleEmployee)
	seedEmployee(t, f, "e1", "p1", "loc1")
	svc := NewEmployeeService(f)

	require.NoError(t, svc.Delete(context.Background(), "e1"))
	profiles, employees, _, _, _ := f.Counts()
	assert.Zero(t, employees)
	assert.Zero(t, profiles)
}

func TestEmployeeService_Delete_Missing(t *testing.T) {
	svc := NewEmployeeService(newFakeFactory())

	err := svc.Delete(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrEmployeeNotFound.Code))
}
