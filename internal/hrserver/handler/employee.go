package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/hr-center/internal/hrserver/biz"
	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/response"
)

// EmployeeHandler handles employee roster requests.
type EmployeeHandler struct {
	svc *biz.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(svc *biz.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// List returns all employees with their profiles.
func (h *EmployeeHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	response.Write(c, err, list)
}

// Get returns one employee with its profile.
func (h *EmployeeHandler) Get(c *gin.Context) {
	detail, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	response.Write(c, err, detail)
}

// Create onboards a new employee.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req biz.CreateEmployeeRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Write(c, err, nil)
		return
	}

	detail, err := h.svc.Create(c.Request.Context(), &req)
	response.Write(c, err, detail)
}

// Update applies a partial update to an employee and its profile.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Write(c, errors.ErrInvalidParam.WithMessage("employee id is required"), nil)
		return
	}

	var req biz.UpdateEmployeeRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Write(c, err, nil)
		return
	}

	detail, err := h.svc.Update(c.Request.Context(), id, &req)
	response.Write(c, err, detail)
}

// Delete removes an employee and its linked profile.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	response.Write(c, err, gin.H{"deleted": c.Param("id")})
}
