package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// HR service error codes.
//
// ErrProfileNotFound deliberately maps to 401, not 404: a subject with a
// verified identity but no profile has no role, so it cannot be authorized
// for anything. ErrOwnershipDenied maps to 403, never 404, so the guard
// does not reveal resource existence to an unauthorized subject.
var (
	// ErrProfileNotFound indicates an authenticated subject has no profile.
	ErrProfileNotFound = Register(&Errno{
		Code:     MakeCode(ServiceHR, CategoryAuth, 1),
		HTTP:     http.StatusUnauthorized,
		GRPCCode: codes.Unauthenticated,
		Message:  "No profile associated with this account",
	})

	// ErrNoPermission indicates the subject's role lacks the required permission.
	ErrNoPermission = Register(&Errno{
		Code:     MakeCode(ServiceHR, CategoryPermission, 1),
		HTTP:     http.StatusForbidden,
		GRPCCode: codes.PermissionDenied,
		Message:  "Role does not have the required permission",
	})

	// ErrOwnershipDenied indicates the subject does not own the target resource.
	ErrOwnershipDenied = Register(&Errno{
		Code:     MakeCode(ServiceHR, CategoryPermission, 2),
		HTTP:     http.StatusForbidden,
		GRPCCode: codes.PermissionDenied,
		Message:  "Cannot access this resource",
	})

	// ErrEmployeeNotFound indicates the employee record does not exist.
	ErrEmployeeNotFound = Register(&Errno{
		Code:     MakeCode(ServiceHR, CategoryResource, 1),
		HTTP:     http.StatusNotFound,
		GRPCCode: codes.NotFound,
		Message:  "Employee not found",
	})

	// ErrUserProfileNotFound indicates the requested profile does not exist.
	// Unlike ErrProfileNotFound this is a plain 404 for an authorized reader.
	ErrUserProfileNotFound = Register(&Errno{
		Code:     MakeCode(ServiceHR, CategoryResource, 2),
		HTTP:     http.StatusNotFound,
		GRPCCode: codes.NotFound,
		Message:  "User profile not found",
	})

	// ErrDepartmentNotFound indicates the department does not exist.
	ErrDepartmentNotFound = Register(&Errno{
		Code:     MakeCode(ServiceHR, CategoryResource, 3),
		HTTP:     http.StatusNotFound,
		GRPCCode: codes.NotFound,
		Message:  "Department not found",
	})

	// ErrPositionNotFound indicates the position does not exist.
	ErrPositionNotFound = Register(&Errno{
		Code:     MakeCode(ServiceHR, CategoryResource, 4),
		HTTP:     http.StatusNotFound,
		GRPCCode: codes.NotFound,
		Message:  "Position not found",
	})
)

// Weather collaborator error codes.
var (
	// ErrWeatherUpstream indicates the weather provider request failed.
	ErrWeatherUpstream = Register(&Errno{
		Code:     MakeCode(ServiceThirdPartyWeather, CategoryNetwork, 1),
		HTTP:     http.StatusBadGateway,
		GRPCCode: codes.Unavailable,
		Message:  "Weather provider unavailable",
	})
)
