package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"hr-records/internal/dto"
	"hr-records/internal/model"
	"hr-records/internal/repository"
)

// ── employee errors ──

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeNameExists = errors.New("employee name already exists")
)

// EmployeeService employee and dependent business rules.
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeDetailResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.EmployeeDetailResponse, error)
	// ListByDepartment returns an empty slice when the department has no
	// employees or does not exist.
	ListByDepartment(ctx context.Context, departmentID uint) ([]dto.EmployeeSummaryResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateEmployeeRequest) (*dto.EmployeeDetailResponse, error)
	Delete(ctx context.Context, id uint) error
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService creates an EmployeeService.
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeDetailResponse, error) {
	exists, err := s.repo.Employee.ExistsByName(ctx, req.Name)
	if err != nil {
		s.logger.Error("check employee name failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrEmployeeNameExists
	}

	dept, err := s.requireDepartment(ctx, *req.DepartmentID)
	if err != nil {
		return nil, err
	}

	emp := &model.Employee{Name: req.Name, DepartmentID: dept.ID}
	if err := s.repo.Employee.Create(ctx, emp, req.Dependents); err != nil {
		if mapped := mapEmployeeWriteError(err); mapped != nil {
			return nil, mapped
		}
		s.logger.Error("create employee failed",
			zap.String("name", req.Name),
			zap.Uint("department_id", dept.ID),
			zap.Int("dependents", len(req.Dependents)),
			zap.Error(err),
		)
		return nil, err
	}

	emp.Department = dept
	resp := dto.NewEmployeeDetailResponse(emp)
	return &resp, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *employeeService) GetByID(ctx context.Context, id uint) (*dto.EmployeeDetailResponse, error) {
	emp, err := s.getEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewEmployeeDetailResponse(emp)
	return &resp, nil
}

// ────────────────────── ListByDepartment ──────────────────────

func (s *employeeService) ListByDepartment(ctx context.Context, departmentID uint) ([]dto.EmployeeSummaryResponse, error) {
	rows, err := s.repo.Employee.ListByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error("list employees failed", zap.Uint("department_id", departmentID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.EmployeeSummaryResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.EmployeeSummaryResponse{
			ID:             r.ID,
			Name:           r.Name,
			HaveDependents: r.HasDependents(),
		})
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *employeeService) Update(ctx context.Context, id uint, req *dto.UpdateEmployeeRequest) (*dto.EmployeeDetailResponse, error) {
	emp, err := s.getEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := &repository.EmployeeChanges{}

	if req.Name != nil && *req.Name != emp.Name {
		taken, err := s.repo.Employee.ExistsByNameExcludingID(ctx, *req.Name, id)
		if err != nil {
			s.logger.Error("check employee name failed", zap.String("name", *req.Name), zap.Error(err))
			return nil, err
		}
		if taken {
			return nil, ErrEmployeeNameExists
		}
		changes.Name = req.Name
	}

	if req.DepartmentID != nil && *req.DepartmentID != emp.DepartmentID {
		if _, err := s.requireDepartment(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
		changes.DepartmentID = req.DepartmentID
	}

	if req.Dependents != nil {
		changes.Dependents = *req.Dependents
		changes.ReplaceDependents = true
	}

	if err := s.repo.Employee.Update(ctx, id, changes); err != nil {
		if mapped := mapEmployeeWriteError(err); mapped != nil {
			return nil, mapped
		}
		s.logger.Error("update employee failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.getEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewEmployeeDetailResponse(updated)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *employeeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.getEmployee(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Employee.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("delete employee failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── helpers ──

func (s *employeeService) getEmployee(ctx context.Context, id uint) (*model.Employee, error) {
	emp, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("get employee failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return emp, nil
}

func (s *employeeService) requireDepartment(ctx context.Context, id uint) (*model.Department, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("get department failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return dept, nil
}

// mapEmployeeWriteError translates constraint violations that slipped past
// the pre-checks. Returns nil for anything else.
func mapEmployeeWriteError(err error) error {
	switch {
	case repository.IsNotFound(err):
		return ErrEmployeeNotFound
	case repository.IsDuplicateKey(err):
		return ErrEmployeeNameExists
	case repository.IsForeignKeyViolation(err):
		return ErrDepartmentNotFound
	}
	return nil
}
