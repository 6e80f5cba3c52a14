package user

import "time"

// Role is the platform role carried in the JWT and checked by the route
// middleware. Core services assume the caller was already authorized.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleHR       Role = "HR"
	RoleEmployee Role = "Employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}

// CanReview reports whether the role may review leave requests and manage
// payroll.
func (r Role) CanReview() bool {
	return r == RoleAdmin || r == RoleHR
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
