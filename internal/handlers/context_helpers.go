package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/middleware"
	"github.com/rsetcampus/atspam-api/internal/rbac"
)

func currentUser(c *gin.Context) (uint, rbac.Role) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := rbac.Role(c.GetString(middleware.ContextUserRole))
	return userID, role
}

// requireAction enforces the role/action table and writes the 403 itself.
func requireAction(c *gin.Context, action rbac.Action) bool {
	_, role := currentUser(c)
	if !rbac.Can(role, action) {
		httperr.Forbidden(c, httperr.CodeForbidden, "Not authorized for this operation.")
		return false
	}
	return true
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id parameter.")
		return 0, false
	}
	return uint(id), true
}
