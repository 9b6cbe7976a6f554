package company

type CreateCompanyRequest struct {
	CompanyName   string `json:"company_name" binding:"required"`
	Username      string `json:"username" binding:"required,min=3"`
	Password      string `json:"password" binding:"required,min=6"`
	ProfilePicURL string `json:"profile_pic_url"`
}

type UpdateCompanyProfileRequest struct {
	CompanyName   string `json:"company_name" binding:"required"`
	ProfilePicURL string `json:"profile_pic_url"`
}

type SetCompanyStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type ResetCompanyPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type ChangeCompanyPasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type CompanyResponse struct {
	ID            string `json:"id"`
	CompanyName   string `json:"company_name"`
	Username      string `json:"username"`
	ProfilePicURL string `json:"profile_pic_url"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at"`
}
