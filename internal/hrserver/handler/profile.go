package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/hr-center/internal/hrserver/biz"
	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/response"
)

// ProfileHandler handles user profile requests.
type ProfileHandler struct {
	svc *biz.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc *biz.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// List returns all user profiles.
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.svc.List(c.Request.Context())
	response.Write(c, err, profiles)
}

// Get returns one profile by uid.
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.svc.GetByUID(c.Request.Context(), c.Param("uid"))
	response.Write(c, err, profile)
}

// Create stores a profile keyed by the identity provider uid.
func (h *ProfileHandler) Create(c *gin.Context) {
	var req biz.CreateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Write(c, err, nil)
		return
	}

	profile, err := h.svc.Create(c.Request.Context(), &req)
	response.Write(c, err, profile)
}

// Link attaches a freshly provisioned identity provider uid to the
// profile that already carries the request email.
func (h *ProfileHandler) Link(c *gin.Context) {
	var req biz.LinkProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Write(c, err, nil)
		return
	}

	profile, err := h.svc.LinkUID(c.Request.Context(), &req)
	response.Write(c, err, profile)
}

// Update applies a partial update to the profile identified by uid.
func (h *ProfileHandler) Update(c *gin.Context) {
	uid := c.Param("uid")
	if uid == "" {
		response.Write(c, errors.ErrInvalidParam.WithMessage("uid is required"), nil)
		return
	}

	var req biz.UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Write(c, err, nil)
		return
	}

	profile, err := h.svc.Update(c.Request.Context(), uid, &req)
	response.Write(c, err, profile)
}
