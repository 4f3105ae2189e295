package biz

import (
	"context"
	"time"

	"github.com/kart-io/hr-center/internal/hrserver/store"
	"github.com/kart-io/hr-center/internal/model"
	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/security/authz/rbac"
	"github.com/kart-io/hr-center/pkg/utils/id"
)

// EmployeeList bundles employee records with the profiles they link to,
// matching what the roster views consume.
type EmployeeList struct {
	Employees    []*model.Employee    `json:"employees"`
	UserProfiles []*model.UserProfile `json:"userProfiles"`
}

// EmployeeDetail is a single employee with its linked profile.
type EmployeeDetail struct {
	Employee    *model.Employee    `json:"employee"`
	UserProfile *model.UserProfile `json:"userProfile"`
}

// CreateEmployeeRequest creates a profile and an employee record in one
// step for onboarding.
type CreateEmployeeRequest struct {
	UID        string     `json:"uid" validate:"required"`
	FirstName  string     `json:"firstName" validate:"required"`
	LastName   string     `json:"lastName" validate:"required"`
	Email      string     `json:"email" validate:"required,email"`
	Role       rbac.Role  `json:"role" validate:"omitempty,role"`
	Avatar     string     `json:"avatar"`
	PositionID string     `json:"positionId"`
	LocationID string     `json:"locationId"`
	HireDate   *time.Time `json:"hireDate"`
	Salary     float64    `json:"salary" validate:"omitempty,gte=0"`
	IsActive   *bool      `json:"isActive"`
}

// UpdateEmployeeRequest applies partial updates to the employee record
// and its linked profile. Nil fields are left untouched.
type UpdateEmployeeRequest struct {
	FirstName  *string    `json:"firstName"`
	LastName   *string    `json:"lastName"`
	Email      *string    `json:"email" validate:"omitempty,email"`
	Role       *rbac.Role `json:"role" validate:"omitempty,role"`
	Avatar     *string    `json:"avatar"`
	PositionID *string    `json:"positionId"`
	LocationID *string    `json:"locationId"`
	HireDate   *time.Time `json:"hireDate"`
	Salary     *float64   `json:"salary" validate:"omitempty,gte=0"`
	IsActive   *bool      `json:"isActive"`
}

// EmployeeService handles employee roster business logic.
type EmployeeService struct {
	store store.Factory
	ids   id.Generator
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(store store.Factory) *EmployeeService {
	return &EmployeeService{store: store, ids: id.NewUUIDGenerator()}
}

// List returns every employee together with all profiles.
func (s *EmployeeService) List(ctx context.Context) (*EmployeeList, error) {
	employees, err := s.store.Employees().List(ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := s.store.Profiles().List(ctx)
	if err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []*model.Employee{}
	}
	if profiles == nil {
		profiles = []*model.UserProfile{}
	}
	return &EmployeeList{Employees: employees, UserProfiles: profiles}, nil
}

// Get returns a single employee with its linked profile.
func (s *EmployeeService) Get(ctx context.Context, employeeID string) (*EmployeeDetail, error) {
	employee, err := s.store.Employees().Get(ctx, employeeID)
	if err != nil {
		if errors.IsCode(err, errors.ErrRecordNotFound.Code) {
			return nil, errors.ErrEmployeeNotFound.WithMessagef("employee %s", employeeID)
		}
		return nil, err
	}

	detail := &EmployeeDetail{Employee: employee}
	profile, err := s.store.Profiles().Get(ctx, employee.UserProfileID)
	if err != nil && !errors.IsCode(err, errors.ErrRecordNotFound.Code) {
		return nil, err
	}
	detail.UserProfile = profile
	return detail, nil
}

// OwnerUID resolves the identity provider uid that owns an employee
// record. It reports no owner for a missing record or a dangling profile
// link rather than an error, so callers can distinguish denial from a
// store fault.
func (s *EmployeeService) OwnerUID(ctx context.Context, employeeID string) (string, error) {
	employee, err := s.store.Employees().Get(ctx, employeeID)
	if err != nil {
		if errors.IsCode(err, errors.ErrRecordNotFound.Code) {
			return "", nil
		}
		return "", err
	}
	profile, err := s.store.Profiles().Get(ctx, employee.UserProfileID)
	if err != nil {
		if errors.IsCode(err, errors.ErrRecordNotFound.Code) {
			return "", nil
		}
		return "", err
	}
	return profile.UID, nil
}

// Create onboards an employee: the profile and the roster record are
// stored together. The role defaults to employee unless set explicitly.
func (s *EmployeeService) Create(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeDetail, error) {
	now := time.Now().UTC()

	profile := &model.UserProfile{
		ID:        s.ids.Generate(),
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
		return nil, err
	}

	employee := &model.Employee{
		ID:            s.ids.Generate(),
		UserProfileID: profile.ID,
		PositionID:    req.PositionID,
		LocationID:    req.LocationID,
		HireDate:      now,
		Salary:        req.Salary,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.HireDate != nil {
		employee.HireDate = *req.HireDate
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	if err := s.store.Employees().Create(ctx, employee); err != nil {
		return nil, err
	}

	return &EmployeeDetail{Employee: employee, UserProfile: profile}, nil
}

// Update applies a partial update to an employee and its linked profile.
func (s *EmployeeService) Update(ctx context.Context, employeeID string, req *UpdateEmployeeRequest) (*EmployeeDetail, error) {
	employee, err := s.store.Employees().Get(ctx, employeeID)
	if err != nil {
		if errors.IsCode(err, errors.ErrRecordNotFound.Code) {
			return nil, errors.ErrEmployeeNotFound.WithMessagef("employee %s", employeeID)
		}
		return nil, err
	}

	now := time.Now().UTC()

	if req.PositionID != nil {
		employee.PositionID = *req.PositionID
	}
	if req.LocationID != nil {
		employee.LocationID = *req.LocationID
	}
	if req.HireDate != nil {
		employee.HireDate = *req.HireDate
	}
	if req.Salary != nil {
		employee.Salary = *req.Salary
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	employee.UpdatedAt = now
	if err := s.store.Employees().Update(ctx, employee); err != nil {
		return nil, err
	}

	detail := &EmployeeDetail{Employee: employee}

	profile, err := s.store.Profiles().Get(ctx, employee.UserProfileID)
	if err != nil {
		if errors.IsCode(err, errors.ErrRecordNotFound.Code) {
			return detail, nil
		}
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
	profile.UpdatedAt = now
	if err := s.store.Profiles().Update(ctx, profile); err != nil {
		return nil, err
	}
	detail.UserProfile = profile
	return detail, nil
}

// Delete removes an employee and its linked profile.
func (s *EmployeeService) Delete(ctx context.Context, employeeID string) error {
	employee, err := s.store.Employees().Get(ctx, employeeID)
	if err != nil {
		if errors.IsCode(err, errors.ErrRecordNotFound.Code) {
			return errors.ErrEmployeeNotFound.WithMessagef("employee %s", employeeID)
		}
		return err
	}

	if employee.UserProfileID != "" {
		if err := s.store.Profiles().Delete(ctx, employee.UserProfileID); err != nil {
			return err
		}
	}
	return s.store.Employees().Delete(ctx, employeeID)
}
