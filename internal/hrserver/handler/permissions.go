package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/response"
	"github.com/kart-io/hr-center/pkg/security/auth"
	"github.com/kart-io/hr-center/pkg/security/authz/rbac"
)

// PermissionsHandler reports the caller's effective permissions. The
// response is advisory for UI rendering; enforcement stays server side
// on every request.
type PermissionsHandler struct{}

// NewPermissionsHandler creates a new PermissionsHandler.
func NewPermissionsHandler() *PermissionsHandler {
	return &PermissionsHandler{}
}

// Get returns the caller's role and permission set.
func (h *PermissionsHandler) Get(c *gin.Context) {
	subject := auth.SubjectFromContext(c.Request.Context())
	if subject == nil {
		response.Write(c, errors.ErrUnauthorized, nil)
		return
	}

	response.Write(c, nil, gin.H{
		"uid":         subject.UID,
		"role":        subject.Role,
		"permissions": rbac.Permissions(subject.Role),
	})
}
