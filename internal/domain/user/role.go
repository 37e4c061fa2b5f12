package user

import "fmt"

type Role int

const (
	RoleSystem Role = iota
	RoleAdmin
	RoleUser
)

var roleNames = map[Role]string{
	RoleSystem: "SYSTEM",
	RoleAdmin:  "ADMIN",
	RoleUser:   "USER",
}

// RoleFromCode maps a stored or transported role code to a Role.
func RoleFromCode(code int) (Role, error) {
	r := Role(code)
	if _, ok := roleNames[r]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownRole, code)
	}

	return r, nil
}

func (r Role) Code() int { return int(r) }

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}
