package domain

// Actor is the authenticated principal performing an operation, rebuilt
// from the token claims. BranchID and Role are only set for employees.
type Actor struct {
	Type     PrincipalType
	UserID   string
	BranchID string
	Role     Role
}
