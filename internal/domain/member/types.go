package member

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleLibrarian Role = "LIBRARIAN"
	RoleMember    Role = "MEMBER"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleLibrarian, RoleMember:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// FulfillmentRank orders reservation fulfillment: staff roles are serviced
// before ordinary members regardless of arrival time. Unknown role names rank
// with ordinary members.
func FulfillmentRank(roleName string) int {
	switch Role(roleName) {
	case RoleAdmin:
		return 1
	case RoleLibrarian:
		return 2
	default:
		return 3
	}
}
