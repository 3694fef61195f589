package rbac_test

import (
	"testing"

	"github.com/rsetcampus/atspam-api/internal/rbac"
)

func TestCan(t *testing.T) {
	tests := []struct {
		role   rbac.Role
		action rbac.Action
		want   bool
	}{
		{rbac.RoleStudent, rbac.ActionBook, true},
		{rbac.RoleFaculty, rbac.ActionBook, true},
		{rbac.RoleStudent, rbac.ActionReview, false},
		{rbac.RoleStudent, rbac.ActionViewQueue, false},
		{rbac.RoleFaculty, rbac.ActionManageSchedule, false},
		{rbac.RolePrincipal, rbac.ActionReview, true},
		{rbac.RolePrincipal, rbac.ActionManageSchedule, true},
		{rbac.RolePrincipal, rbac.ActionViewQueue, true},
		{rbac.RolePrincipal, rbac.ActionViewStats, true},
		{rbac.RolePrincipal, rbac.ActionBook, false},
		{rbac.RolePrincipal, rbac.ActionManageUsers, false},
		{rbac.RoleAdmin, rbac.ActionManageUsers, true},
		{rbac.RoleAdmin, rbac.ActionReview, true},
		{rbac.RoleAdmin, rbac.ActionBook, false},
		{rbac.Role("ghost"), rbac.ActionBook, false},
	}

	for _, tt := range tests {
		if got := rbac.Can(tt.role, tt.action); got != tt.want {
			t.Errorf("Can(%s, %s) = %v, want %v", tt.role, tt.action, got, tt.want)
		}
	}
}

func TestIsReviewer(t *testing.T) {
	for role, want := range map[rbac.Role]bool{
		rbac.RoleStudent:   false,
		rbac.RoleFaculty:   false,
		rbac.RolePrincipal: true,
		rbac.RoleAdmin:     true,
	} {
		if got := rbac.IsReviewer(role); got != want {
			t.Errorf("IsReviewer(%s) = %v, want %v", role, got, want)
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, role := range []string{"student", "faculty", "principal", "admin"} {
		if !rbac.IsValid(role) {
			t.Errorf("IsValid(%s) = false", role)
		}
	}
	for _, role := range []string{"", "Student", "superuser"} {
		if rbac.IsValid(role) {
			t.Errorf("IsValid(%q) = true", role)
		}
	}
}
