package authentication

import "fmt"

// Role is the closed set of user categories a token can be checked against.
type Role int

const (
	RoleAdmin Role = iota
	RoleDoctor
	RolePatient
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleDoctor:
		return "doctor"
	case RolePatient:
		return "patient"
	default:
		return "unknown"
	}
}

// ParseRole maps the wire form of a role to its enum value.
func ParseRole(s string) (Role, error) {
	switch s {
	case "admin":
		return RoleAdmin, nil
	case "doctor":
		return RoleDoctor, nil
	case "patient":
		return RolePatient, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}
