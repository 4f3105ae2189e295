package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// OK represents a successful operation.
var OK = Register(&Errno{
	Code:     0,
	HTTP:     http.StatusOK,
	GRPCCode: codes.OK,
	Message:  "Success",
})

// Request errors (Category: 01)
var (
	// ErrBadRequest indicates a malformed request.
	ErrBadRequest = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryRequest, 0),
		HTTP:     http.StatusBadRequest,
		GRPCCode: codes.InvalidArgument,
		Message:  "Bad request",
	})

	// ErrInvalidParam indicates an invalid parameter.
	ErrInvalidParam = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryRequest, 1),
		HTTP:     http.StatusBadRequest,
		GRPCCode: codes.InvalidArgument,
		Message:  "Invalid parameter",
	})

	// ErrValidationFailed indicates validation failure.
	ErrValidationFailed = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryRequest, 4),
		HTTP:     http.StatusBadRequest,
		GRPCCode: codes.InvalidArgument,
		Message:  "Validation failed",
	})
)

// Authentication errors (Category: 02)
var (
	// ErrUnauthorized indicates the request is not authenticated.
	ErrUnauthorized = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryAuth, 0),
		HTTP:     http.StatusUnauthorized,
		GRPCCode: codes.Unauthenticated,
		Message:  "Unauthorized",
	})

	// ErrMissingToken indicates no bearer token was presented.
	ErrMissingToken = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryAuth, 1),
		HTTP:     http.StatusUnauthorized,
		GRPCCode: codes.Unauthenticated,
		Message:  "Missing authentication token",
	})

	// ErrInvalidToken indicates the token is invalid.
	ErrInvalidToken = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryAuth, 2),
		HTTP:     http.StatusUnauthorized,
		GRPCCode: codes.Unauthenticated,
		Message:  "Invalid token",
	})

	// ErrTokenExpired indicates the token has expired.
	ErrTokenExpired = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryAuth, 3),
		HTTP:     http.StatusUnauthorized,
		GRPCCode: codes.Unauthenticated,
		Message:  "Token expired",
	})
)

// Authorization errors (Category: 03)
var (
	// ErrForbidden indicates the subject lacks permission.
	ErrForbidden = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryPermission, 0),
		HTTP:     http.StatusForbidden,
		GRPCCode: codes.PermissionDenied,
		Message:  "Forbidden",
	})
)

// Resource errors (Category: 04)
var (
	// ErrNotFound indicates the resource does not exist.
	ErrNotFound = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryResource, 0),
		HTTP:     http.StatusNotFound,
		GRPCCode: codes.NotFound,
		Message:  "Resource not found",
	})

	// ErrRecordNotFound indicates a database record does not exist.
	ErrRecordNotFound = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryResource, 1),
		HTTP:     http.StatusNotFound,
		GRPCCode: codes.NotFound,
		Message:  "Record not found",
	})
)

// Conflict errors (Category: 05)
var (
	// ErrAlreadyExists indicates the resource already exists.
	ErrAlreadyExists = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryConflict, 0),
		HTTP:     http.StatusConflict,
		GRPCCode: codes.AlreadyExists,
		Message:  "Resource already exists",
	})
)

// Internal errors (Category: 07-11)
var (
	// ErrInternal indicates an unexpected internal error.
	ErrInternal = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryInternal, 0),
		HTTP:     http.StatusInternalServerError,
		GRPCCode: codes.Internal,
		Message:  "Internal server error",
	})

	// ErrDatabase indicates a database failure.
	ErrDatabase = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryDatabase, 0),
		HTTP:     http.StatusInternalServerError,
		GRPCCode: codes.Internal,
		Message:  "Database error",
	})

	// ErrServiceUnavailable indicates an upstream collaborator failure.
	ErrServiceUnavailable = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryNetwork, 0),
		HTTP:     http.StatusBadGateway,
		GRPCCode: codes.Unavailable,
		Message:  "Upstream service unavailable",
	})

	// ErrTimeout indicates an operation timed out.
	ErrTimeout = Register(&Errno{
		Code:     MakeCode(ServiceCommon, CategoryTimeout, 0),
		HTTP:     http.StatusGatewayTimeout,
		GRPCCode: codes.DeadlineExceeded,
		Message:  "Operation timed out",
	})
)
