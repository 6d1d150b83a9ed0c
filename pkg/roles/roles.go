package roles

// Role represents the permission level of a user.
type Role string

const (
	Viewer   Role = "viewer"
	Operator Role = "operator"
	Manager  Role = "manager"
	Admin    Role = "admin"
)

type HierarchyLevel int

const (
	ViewerLevel   HierarchyLevel = 1
	OperatorLevel HierarchyLevel = 2
	ManagerLevel  HierarchyLevel = 3
	AdminLevel    HierarchyLevel = 4
)

func (r Role) GetHierarchyLevel() HierarchyLevel {
	switch r {
	case Viewer:
		return ViewerLevel
	case Operator:
		return OperatorLevel
	case Manager:
		return ManagerLevel
	case Admin:
		return AdminLevel
	default:
		return 0
	}
}

// HasPermission reports whether the role meets the required level.
func (r Role) HasPermission(requiredRole Role) bool {
	return r.GetHierarchyLevel() >= requiredRole.GetHierarchyLevel()
}

func (r Role) IsValid() bool {
	switch r {
	case Viewer, Operator, Manager, Admin:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
