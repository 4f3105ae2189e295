package biz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/security/authz/rbac"
)

func TestProfileService_ResolveRole(t *testing.T) {
	f := newFakeFactory()
	seedProfile(t, f, "alice", "alice", rbac.RoleAdmin)
	svc := NewProfileService(f)

	role, err := svc.ResolveRole(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, rbac.RoleAdmin, role)
}

func TestProfileService_ResolveRole_NoProfile(t *testing.T) {
	svc := NewProfileService(newFakeFactory())

	_, err := svc.ResolveRole(context.Background(), "stranger")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrProfileNotFound.Code))
}

func TestProfileService_ResolveRole_UnknownStoredRole(t *testing.T) {
	f := newFakeFactory()
	seedProfile(t, f, "mallory", "mallory", rbac.Role("superuser"))
	svc := NewProfileService(f)

	_, err := svc.ResolveRole(context.Background(), "mallory")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrProfileNotFound.Code))
}

func TestProfileService_ResolveRole_StoreFault(t *testing.T) {
	f := newFakeFactory()
	failStore(f)
	svc := NewProfileService(f)

	_, err := svc.ResolveRole(context.Background(), "alice")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrDatabase.Code))
}

func TestProfileService_Create_DefaultsRole(t *testing.T) {
	f := newFakeFactory()
	svc := NewProfileService(f)

	profile, err := svc.Create(context.Background(), &CreateProfileRequest{
		UID:       "dana",
		FirstName: "Dana",
		LastName:  "Doe",
		Email:     "dana@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "dana", profile.ID)
	assert.Equal(t, rbac.RoleEmployee, profile.Role)

	stored, err := svc.GetByUID(context.Background(), "dana")
	require.NoError(t, err)
	assert.Equal(t, rbac.RoleEmployee, stored.Role)
}

func TestProfileService_Create_Duplicate(t *testing.T) {
	f := newFakeFactory()
	seedProfile(t, f, "dana", "dana", rbac.RoleEmployee)
	svc := NewProfileService(f)

	_, err := svc.Create(context.Background(), &CreateProfileRequest{
		UID:       "dana",
		FirstName: "Dana",
		LastName:  "Doe",
		Email:     "dana@example.com",
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrAlreadyExists.Code))
}

func TestProfileService_Update_Partial(t *testing.T) {
	f := newFakeFactory()
	seedProfile(t, f, "bob", "bob", rbac.RoleManager)
	svc := NewProfileService(f)

	email := "bob@corp.example.com"
	updated, err := svc.Update(context.Background(), "bob", &UpdateProfileRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, email, updated.Email)
	assert.Equal(t, "Test", updated.FirstName)
	assert.Equal(t, rbac.RoleManager, updated.Role)
}

func TestProfileService_Update_Missing(t *testing.T) {
	svc := NewProfileService(newFakeFactory())

	name := "Nobody"
	_, err := svc.Update(context.Background(), "ghost", &UpdateProfileRequest{FirstName: &name})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrUserProfileNotFound.Code))
}

func TestProfileService_LinkUID(t *testing.T) {
	f := newFakeFactory()
	seedProfile(t, f, "newhire", "newhire", rbac.RoleEmployee)
	svc := NewProfileService(f)

	linked, err := svc.LinkUID(context.Background(), &LinkProfileRequest{
		Email: "newhire@example.com",
		UID:   "idp-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "idp-123", linked.UID)
	assert.Equal(t, "newhire", linked.ID)

	stored, err := svc.GetByUID(context.Background(), "idp-123")
	require.NoError(t, err)
	assert.Equal(t, "newhire", stored.ID)

	// relinking the same uid to the same profile is a no-op
	again, err := svc.LinkUID(context.Background(), &LinkProfileRequest{
		Email: "newhire@example.com",
		UID:   "idp-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "idp-123", again.UID)
}

func TestProfileService_LinkUID_UnknownEmail(t *testing.T) {
	svc := NewProfileService(newFakeFactory())

	_, err := svc.LinkUID(context.Background(), &LinkProfileRequest{
		Email: "nobody@example.com",
		UID:   "idp-123",
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrUserProfileNotFound.Code))
}

func TestProfileService_LinkUID_UIDTaken(t *testing.T) {
	f := newFakeFactory()
	seedProfile(t, f, "alice", "alice", rbac.RoleAdmin)
	seedProfile(t, f, "newhire", "newhire", rbac.RoleEmployee)
	svc := NewProfileService(f)

	_, err := svc.LinkUID(context.Background(), &LinkProfileRequest{
		Email: "newhire@example.com",
		UID:   "alice",
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrAlreadyExists.Code))
}

func TestProfileService_GetByUID_Missing(t *testing.T) {
	svc := NewProfileService(newFakeFactory())

	_, err := svc.GetByUID(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrUserProfileNotFound.Code))
}
