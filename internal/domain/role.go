package domain

// Role is the employee role stored on the employees table. The string
// values are the exact values persisted in the role column.
type Role string

const (
	RoleManager         Role = "Manager"
	RoleAsstManager     Role = "Asst. Manager"
	RoleGeneralEmployee Role = "General Employee"
)

// roleRank orders roles by privilege; lower rank means more privilege.
var roleRank = map[Role]int{
	RoleManager:         1,
	RoleAsstManager:     2,
	RoleGeneralEmployee: 3,
}

// manages is the explicit management table: which roles each role may
// create, deactivate, or reset passwords for, always within its own branch.
var manages = map[Role][]Role{
	RoleManager:         {RoleAsstManager, RoleGeneralEmployee},
	RoleAsstManager:     {RoleGeneralEmployee},
	RoleGeneralEmployee: {},
}

// ParseRole validates a role string coming from a request or a token.
func ParseRole(v string) (Role, bool) {
	r := Role(v)
	_, ok := roleRank[r]
	return r, ok
}

func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// CanManage reports whether an actor role may act on a target role.
// The relation is strict: a role never manages its own level or above.
func (r Role) CanManage(target Role) bool {
	for _, t := range manages[r] {
		if t == target {
			return true
		}
	}
	return false
}

// Rank exposes the privilege ordering for display and sorting.
func (r Role) Rank() int {
	if rank, ok := roleRank[r]; ok {
		return rank
	}
	return 99
}
