package service

import (
	"go.uber.org/zap"

	"hr-records/internal/repository"
)

// Service aggregates every service.
type Service struct {
	Department DepartmentService
	Employee   EmployeeService
	Export     ExportService
}

// NewService creates the Service aggregate.
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Department: NewDepartmentService(repo, logger),
		Employee:   NewEmployeeService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
