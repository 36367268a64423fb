package constants

import "fmt"

const (
	RoleRoot    = "root"
	RoleManager = "manager"
	RoleTeacher = "teacher"
)

const (
	ErrOnlyManagersCanAccess = "only managers may use %s"
	ErrOnlyStaffCanAccess    = "only managers or teachers may use %s"
)

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

var (
	AllWebRoles = []string{RoleRoot, RoleManager, RoleTeacher}

	// ManagerAndAbove may mutate courses, classes, modules and lessons.
	ManagerAndAbove = []string{RoleRoot, RoleManager}

	// StaffRoles may also request replacements and upload gallery images.
	StaffRoles = []string{RoleRoot, RoleManager, RoleTeacher}
)

func IsWebRole(role string) bool {
	for _, r := range AllWebRoles {
		if r == role {
			return true
		}
	}
	return false
}
