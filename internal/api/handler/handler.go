package handler

import "hr-records/internal/service"

// Handler aggregates every handler.
type Handler struct {
	Department *DepartmentHandler
	Employee   *EmployeeHandler
	Export     *ExportHandler
	Health     *HealthHandler
}

// NewHandler creates the Handler aggregate. db backs the health check and
// may be nil.
func NewHandler(svc *service.Service, db Pinger) *Handler {
	return &Handler{
		Department: NewDepartmentHandler(svc.Department),
		Employee:   NewEmployeeHandler(svc.Employee),
		Export:     NewExportHandler(svc.Export),
		Health:     NewHealthHandler(db),
	}
}
