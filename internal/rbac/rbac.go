package rbac

type Role string
type Action string

const (
	RoleStudent   Role = "student"
	RoleFaculty   Role = "faculty"
	RolePrincipal Role = "principal"
	RoleAdmin     Role = "admin"
)

const (
	ActionBook           Action = "book"
	ActionReview         Action = "review"
	ActionManageSchedule Action = "manage_schedule"
	ActionViewQueue      Action = "view_queue"
	ActionViewStats      Action = "view_stats"
	ActionManageUsers    Action = "manage_users"
)

// Can is the whole authorization model: an explicit role/action table.
func Can(role Role, action Action) bool {
	switch role {
	case RoleAdmin:
		// Admins run the system; requesting slots stays with students
		// and faculty.
		return action != ActionBook
	case RolePrincipal:
		return action == ActionReview || action == ActionManageSchedule ||
			action == ActionViewQueue || action == ActionViewStats
	case RoleStudent, RoleFaculty:
		return action == ActionBook
	default:
		return false
	}
}

// IsReviewer reports whether the role may approve, reject or advance
// appointments.
func IsReviewer(role Role) bool {
	return role == RolePrincipal || role == RoleAdmin
}

func IsValid(role string) bool {
	switch Role(role) {
	case RoleStudent, RoleFaculty, RolePrincipal, RoleAdmin:
		return true
	default:
		return false
	}
}
