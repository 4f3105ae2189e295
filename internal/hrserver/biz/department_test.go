package biz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/hr-center/pkg/errors"
)

func TestDepartmentService_Create_WithPositions(t *testing.T) {
	f := newFakeFactory()
	svc := NewDepartmentService(f)

	chart, err := svc.Create(context.Background(), "bob", &CreateDepartmentRequest{
		Name: "Engineering",
		Positions: []CreatePositionRequest{
			{Name: "Backend Engineer"},
			{Name: "SRE", Description: "On-call rotation"},
		},
	})
	require.NoError(t, err)
	require.Len(t, chart.Departments, 1)
	require.Len(t, chart.Positions, 2)

	dept := chart.Departments[0]
	assert.Equal(t, "Engineering", dept.Name)
	assert.Equal(t, "bob", dept.ManagerID)
	for _, p := range chart.Positions {
		assert.Equal(t, dept.ID, p.DepartmentID)
		assert.Equal(t, "bob", p.ManagerID)
	}
}

func TestDepartmentService_List_Empty(t *testing.T) {
	svc := NewDepartmentService(newFakeFactory())

	chart, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, chart.Departments)
	assert.Empty(t, chart.Departments)
	assert.NotNil(t, chart.Positions)
}

func TestDepartmentService_Update(t *testing.T) {
	f := newFakeFactory()
	seedDepartment(t, f, "d1", "Eng", "bob")
	seedPosition(t, f, "pos1", "Dev", "d1")
	svc := NewDepartmentService(f)

	name := "Engineering"
	posName := "Software Engineer"
	chart, err := svc.Update(context.Background(), "d1", &UpdateDepartmentRequest{
		Name: &name,
		Positions: []UpdatePositionRequest{
			{ID: "pos1", Name: &posName},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Engineering", chart.Departments[0].Name)
	require.Len(t, chart.Positions, 1)
	assert.Equal(t, "Software Engineer", chart.Positions[0].Name)
}

func TestDepartmentService_Update_MissingDepartment(t *testing.T) {
	svc := NewDepartmentService(newFakeFactory())

	name := "Ghost"
	_, err := svc.Update(context.Background(), "d-ghost", &UpdateDepartmentRequest{Name: &name})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrDepartmentNotFound.Code))
}

func TestDepartmentService_Update_MissingPosition(t *testing.T) {
	f := newFakeFactory()
	seedDepartment(t, f, "d1", "Eng", "bob")
	svc := NewDepartmentService(f)

	name := "Dev"
	_, err := svc.Update(context.Background(), "d1", &UpdateDepartmentRequest{
		Positions: []UpdatePositionRequest{{ID: "pos-ghost", Name: &name}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrPositionNotFound.Code))
}

func TestDepartmentService_Delete_Cascades(t *testing.T) {
	f := newFakeFactory()
	seedDepartment(t, f, "d1", "Eng", "bob")
	seedPosition(t, f, "pos1", "Dev", "d1")
	seedPosition(t, f, "pos2", "Dev", "d2")
	svc := NewDepartmentService(f)

	require.NoError(t, svc.Delete(context.Background(), "d1"))
	_, _, departments, positions, _ := f.Counts()
	assert.Zero(t, departments)
	assert.Equal(t, 1, positions)

	remaining, err := f.Positions().Get(context.Background(), "pos2")
	require.NoError(t, err)
	assert.Equal(t, "d2", remaining.DepartmentID)
}

func TestDepartmentService_Delete_Missing(t *testing.T) {
	svc := NewDepartmentService(newFakeFactory())

	err := svc.Delete(context.Background(), "d-ghost")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrDepartmentNotFound.Code))
}

func TestDepartmentService_DeletePosition(t *testing.T) {
	f := newFakeFactory()
	seedPosition(t, f, "pos1", "Dev", "d1")
	svc := NewDepartmentService(f)

	require.NoError(t, svc.DeletePosition(context.Background(), "pos1"))
	_, _, _, positions, _ := f.Counts()
	assert.Zero(t, positions)

	err := svc.DeletePosition(context.Background(), "pos1")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrPositionNotFound.Code))
}
