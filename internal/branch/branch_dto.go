package branch

type CreateBranchRequest struct {
	BranchName     string `json:"branch_name" binding:"required"`
	Location       string `json:"location"`
	ParentBranchID string `json:"parent_branch_id"`
}

type UpdateBranchRequest struct {
	BranchName     string `json:"branch_name" binding:"required"`
	Location       string `json:"location"`
	BranchType     string `json:"branch_type" binding:"omitempty,oneof=Branch Sub-Branch"`
	ParentBranchID string `json:"parent_branch_id"`
}

type SetBranchStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type BranchResponse struct {
	ID             string `json:"id"`
	CompanyID      string `json:"company_id"`
	BranchName     string `json:"branch_name"`
	BranchType     string `json:"branch_type"`
	ParentBranchID string `json:"parent_branch_id,omitempty"`
	Location       string `json:"location"`
	IsActive       bool   `json:"is_active"`
	IsMain         bool   `json:"is_main"`
	EmployeeCount  int64  `json:"employee_count"`
	CreatedAt      string `json:"created_at"`
}
