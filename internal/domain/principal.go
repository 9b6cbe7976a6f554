package domain

// PrincipalType distinguishes the three kinds of authenticated users.
type PrincipalType string

const (
	PrincipalAdmin    PrincipalType = "admin"
	PrincipalCompany  PrincipalType = "company"
	PrincipalEmployee PrincipalType = "employee"
)

func ParsePrincipalType(v string) (PrincipalType, bool) {
	switch PrincipalType(v) {
	case PrincipalAdmin, PrincipalCompany, PrincipalEmployee:
		return PrincipalType(v), true
	}
	return "", false
}

// EnforceRequest is what the authorization layer evaluates: a casbin
// subject (principal type, or employee role for employees) acting on a
// resource.
type EnforceRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
