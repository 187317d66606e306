package user

// Role is the closed set of portal roles. The zero value means "no role"
// (anonymous); it is deliberately not part of AllRoles.
type Role string

const (
	Student     Role = "student"
	Warden      Role = "warden"
	Guard       Role = "guard"
	Maintenance Role = "maintenance"
	Admin       Role = "admin"
)

func AllRoles() []Role {
	return []Role{Student, Warden, Guard, Maintenance, Admin}
}

func (r Role) Valid() bool {
	switch r {
	case Student, Warden, Guard, Maintenance, Admin:
		return true
	}
	return false
}

// HomeRoute maps a role to its default landing path. Unknown or missing
// roles land on the login page.
func (r Role) HomeRoute() string {
	switch r {
	case Student:
		return "/student"
	case Warden:
		return "/warden"
	case Guard:
		return "/guard"
	case Maintenance:
		return "/maintenance"
	case Admin:
		return "/admin"
	default:
		return "/login"
	}
}

// User is the verified session identity as reported by the hostel backend.
type User struct {
	ID          string `json:"userId"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	HostelID    string `json:"hostelId,omitempty"`
}

// In reports whether the user's role is in the given allow-list. An empty
// list allows any authenticated user.
func (u *User) In(roles []Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
