package biz

import (
	"context"
	"time"

	"github.com/kart-io/hr-center/internal/hrserver/store"
	"github.com/kart-io/hr-center/internal/model"
	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/security/authz/rbac"
)

// CreateProfileRequest carries the fields accepted when creating a profile.
// The profile document id is the owning identity provider uid, so repeated
// creates for the same uid overwrite rather than duplicate.
type CreateProfileRequest struct {
	UID       string    `json:"uid" validate:"required"`
	FirstName string    `json:"firstName" validate:"required"`
	LastName  string    `json:"lastName" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Role      rbac.Role `json:"role" validate:"omitempty,role"`
	Avatar    string    `json:"avatar"`
}

// UpdateProfileRequest carries a partial profile update. Nil fields are
// left untouched.
type UpdateProfileRequest struct {
	FirstName *string    `json:"firstName"`
	LastName  *string    `json:"lastName"`
	Email     *string    `json:"email" validate:"omitempty,email"`
	Role      *rbac.Role `json:"role" validate:"omitempty,role"`
	Avatar    *string    `json:"avatar"`
}

// LinkProfileRequest asks to attach an identity provider uid to the
// profile that already carries the given email.
type LinkProfileRequest struct {
	Email string `json:"email" validate:"required,email"`
	UID   string `json:"uid" validate:"required"`
}

// ProfileService handles user profile business logic. It is also the
// role source for request authorization: every authenticated request
// resolves its role here, never from token claims alone.
type ProfileService struct {
	store store.Factory
}

// NewProfileService creates a new ProfileService.
func NewProfileService(store store.Factory) *ProfileService {
	return &ProfileService{store: store}
}

// ResolveRole returns the stored role for an authenticated uid. A subject
// without a profile gets no role, and therefore no access.
func (s *ProfileService) ResolveRole(ctx context.Context, uid string) (rbac.Role, error) {
	profile, err := s.store.Profiles().GetByUID(ctx, uid)
	if err != nil {
		if errors.IsCode(err, errors.ErrRecordNotFound.Code) {
			return "", errors.ErrProfileNotFound.WithMessagef("no profile for uid %s", uid)
		}
		return "", err
	}
	if !profile.Role.Valid() {
		return "", errors.ErrProfileNotFound.WithMessagef("profile %s carries unknown role %q", uid, profile.Role)
	}
	return profile.Role, nil
}

// List returns all user profiles.
func (s *ProfileService) List(ctx context.Context) ([]*model.UserProfile, error) {
	return s.store.Profiles().List(ctx)
}

// GetByUID returns a single profile by the identity provider uid.
func (s *ProfileService) GetByUID(ctx context.Context, uid string) (*model.UserProfile, error) {
	profile, err := s.store.Profiles().GetByUID(ctx, uid)
	if err != nil {
		if errors.IsCode(err, errors.ErrRecordNotFound.Code) {
			return nil, errors.ErrUserProfileNotFound.WithMessagef("uid %s", uid)
		}
		return nil, err
	}
	return profile, nil
}

// Create stores a profile keyed by uid. A missing role defaults to
// employee; elevated roles must be assigned explicitly.
func (s *ProfileService) Create(ctx context.Context, req *CreateProfileRequest) (*model.UserProfile, error) {
	now := time.Now().UTC()
	profile := &model.UserProfile{
		ID:        req.UID,
		UID:       req.UID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.Role,
		Avatar:    req.Avatar,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if profile.Role == "" {
		profile.Role = rbac.RoleEmployee
	}
	if err := s.store.Profiles().Create(ctx, profile); err != nil {
		if errors.IsCode(err, errors.ErrAlreadyExists.Code) {
			return nil, errors.ErrAlreadyExists.WithMessagef("profile for uid %s already exists", req.UID)
		}
		return nil, err
	}
	return profile, nil
}

// LinkUID attaches a provisioned identity provider uid to the profile
// matching the request email. Profiles are created ahead of their IdP
// accounts, so onboarding links the fresh uid to the pre-staged profile.
// The uid must not already belong to another profile.
func (s *ProfileService) LinkUID(ctx context.Context, req *LinkProfileRequest) (*model.UserProfile, error) {
	profile, err := s.store.Profiles().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.IsCode(err, errors.ErrRecordNotFound.Code) {
			return nil, errors.ErrUserProfileNotFound.WithMessagef("no profile for email %s", req.Email)
		}
		return nil, err
	}

	existing, err := s.store.Profiles().GetByUID(ctx, req.UID)
	if err != nil && !errors.IsCode(err, errors.ErrRecordNotFound.Code) {
		return nil, err
	}
	if existing != nil && existing.ID != profile.ID {
		return nil, errors.ErrAlreadyExists.WithMessagef("uid %s is already linked to another profile", req.UID)
	}

	profile.UID = req.UID
	profile.UpdatedAt = time.Now().UTC()
	if err := s.store.Profiles().Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Update applies a partial update to the profile identified by uid.
func (s *ProfileService) Update(ctx context.Context, uid string, req *UpdateProfileRequest) (*model.UserProfile, error) {
	profile, err := s.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Role != nil {
		profile.Role = *req.Role
	}
	if req.Avatar != nil {
		profile.Avatar = *req.Avatar
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := s.store.Profiles().Update(ctx, profile); err != nil {
		if errors.IsCode(err, errors.ErrRecordNotFound.Code) {
			return nil, errors.ErrUserProfileNotFound.WithMessagef("uid %s", uid)
		}
		return nil, err
	}
	return profile, nil
}
