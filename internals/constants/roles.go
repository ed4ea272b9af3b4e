package constants

const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleParent  = "parent"
	RoleStudent = "student"
)
