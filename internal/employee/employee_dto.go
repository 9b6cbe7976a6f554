package employee

type CreateEmployeeRequest struct {
	Username      string `json:"username" binding:"required,min=3"`
	Password      string `json:"password" binding:"required,min=6"`
	FullName      string `json:"full_name" binding:"required"`
	Role          string `json:"role" binding:"required"`
	BranchID      string `json:"branch_id"`
	ProfilePicURL string `json:"profile_pic_url"`
}

type UpdateEmployeeProfileRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	ProfilePicURL string `json:"profile_pic_url"`
}

type SetEmployeeStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type ResetEmployeePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type EmployeeResponse struct {
	ID            string `json:"id"`
	CompanyID     string `json:"company_id"`
	BranchID      string `json:"branch_id"`
	Username      string `json:"username"`
	FullName      string `json:"full_name"`
	ProfilePicURL string `json:"profile_pic_url"`
	Role          string `json:"role"`
	EmployeeCode  string `json:"employee_code"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at"`
}
