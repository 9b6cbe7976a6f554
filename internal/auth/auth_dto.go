package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	UserType  string `json:"user_type"`
	ID        string `json:"id"`
	CompanyID string `json:"company_id,omitempty"`
	BranchID  string `json:"branch_id,omitempty"`
	Role      string `json:"role,omitempty"`
	Username  string `json:"username"`
	Name      string `json:"name"`
}
