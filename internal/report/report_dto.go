package report

type SubmitReportRequest struct {
	ReportDate string `json:"report_date" binding:"required"`
	ReportText string `json:"report_text" binding:"required"`
}

type ReportResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	ReportDate   string `json:"report_date"`
	ReportText   string `json:"report_text"`
	UpdatedAt    string `json:"updated_at"`
}
