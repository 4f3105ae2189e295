package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/hr-center/internal/hrserver/biz"
	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/response"
	"github.com/kart-io/hr-center/pkg/security/auth"
)

// DepartmentHandler handles org chart requests.
type DepartmentHandler struct {
	svc *biz.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(svc *biz.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{svc: svc}
}

// List returns all departments and positions.
func (h *DepartmentHandler) List(c *gin.Context) {
	chart, err := h.svc.List(c.Request.Context())
	response.Write(c, err, chart)
}

// Create stores a department with the caller as its manager.
func (h *DepartmentHandler) Create(c *gin.Context) {
	subject := auth.SubjectFromContext(c.Request.Context())
	if subject == nil {
		response.Write(c, errors.ErrUnauthorized, nil)
		return
	}

	var req biz.CreateDepartmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Write(c, err, nil)
		return
	}

	chart, err := h.svc.Create(c.Request.Context(), subject.UID, &req)
	response.Write(c, err, chart)
}

// Update applies partial updates to a department and its positions.
func (h *DepartmentHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Write(c, errors.ErrInvalidParam.WithMessage("department id is required"), nil)
		return
	}

	var req biz.UpdateDepartmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Write(c, err, nil)
		return
	}

	chart, err := h.svc.Update(c.Request.Context(), id, &req)
	response.Write(c, err, chart)
}

// Delete removes a department and every position under it.
func (h *DepartmentHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	response.Write(c, err, gin.H{"deleted": c.Param("id")})
}

// DeletePosition removes a single position.
func (h *DepartmentHandler) DeletePosition(c *gin.Context) {
	err := h.svc.DeletePosition(c.Request.Context(), c.Param("id"))
	response.Write(c, err, gin.H{"deleted": c.Param("id")})
}
