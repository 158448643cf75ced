package dto

// ── mutation responses ──

// MessageResponse {message}.
type MessageResponse struct {
	Message string `json:"message"`
}

// DepartmentMutationResponse returned by department create and update.
type DepartmentMutationResponse struct {
	Message      string `json:"message"`
	DepartmentID uint   `json:"department_id"`
}

// EmployeeCreatedResponse returned by employee create.
type EmployeeCreatedResponse struct {
	Message    string `json:"message"`
	EmployeeID uint   `json:"employee_id"`
}

// EmployeeUpdatedResponse returned by employee update. DepartmentID carries
// the employee id, as existing clients read it from that key.
type EmployeeUpdatedResponse struct {
	Message      string `json:"message"`
	DepartmentID uint   `json:"department_id"`
	EmployeeID   uint   `json:"employee_id"`
}

// HealthResponse body of GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
