package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/httpresp"
	"github.com/rsetcampus/atspam-api/internal/models"
	"github.com/rsetcampus/atspam-api/internal/rbac"
)

// AdminHandler carries the explicit admin actions: role changes and
// account activation. Roles are immutable everywhere else.
type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func (h *AdminHandler) SetRole(c *gin.Context) {
	if !requireAction(c, rbac.ActionManageUsers) {
		return
	}

	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || !rbac.IsValid(req.Role) {
		httperr.BadRequest(c, "invalid_role", "Role must be student, faculty, principal or admin.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "User not found.")
		return
	}

	if err := h.db.Model(&user).Update("role", req.Role).Error; err != nil {
		httperr.Internal(c, "internal_error", "Failed to update role.")
		return
	}

	httpresp.OK(c, userPayload(&user))
}

func (h *AdminHandler) SetActive(c *gin.Context) {
	if !requireAction(c, rbac.ActionManageUsers) {
		return
	}

	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "is_active is required.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "User not found.")
		return
	}

	if err := h.db.Model(&user).Update("is_active", *req.IsActive).Error; err != nil {
		httperr.Internal(c, "internal_error", "Failed to update user.")
		return
	}

	httpresp.OK(c, userPayload(&user))
}
