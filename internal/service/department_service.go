package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"hr-records/internal/dto"
	"hr-records/internal/model"
	"hr-records/internal/repository"
)

// ── department errors ──

var (
	ErrDepartmentNotFound     = errors.New("department not found")
	ErrDepartmentNameExists   = errors.New("department name already exists")
	ErrDepartmentHasEmployees = errors.New("department still has employees")
)

// DepartmentService department business rules.
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.DepartmentResponse, error)
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	// Delete refuses while employees still reference the department.
	Delete(ctx context.Context, id uint) error
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartmentService creates a DepartmentService.
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	exists, err := s.repo.Department.ExistsByName(ctx, req.Name)
	if err != nil {
		s.logger.Error("check department name failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrDepartmentNameExists
	}

	dept := &model.Department{Name: req.Name}
	if err := s.repo.Department.Create(ctx, dept); err != nil {
		// lost a race with a concurrent create
		if repository.IsDuplicateKey(err) {
			return nil, ErrDepartmentNameExists
		}
		s.logger.Error("create department failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	resp := dto.NewDepartmentResponse(dept)
	return &resp, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *departmentService) GetByID(ctx context.Context, id uint) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("get department failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	resp := dto.NewDepartmentResponse(dept)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *departmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		result = append(result, dto.NewDepartmentResponse(&depts[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *departmentService) Update(ctx context.Context, id uint, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("get department failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name == dept.Name {
		resp := dto.NewDepartmentResponse(dept)
		return &resp, nil
	}

	exists, err := s.repo.Department.ExistsByName(ctx, req.Name)
	if err != nil {
		s.logger.Error("check department name failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrDepartmentNameExists
	}

	if err := s.repo.Department.Rename(ctx, id, req.Name); err != nil {
		switch {
		case repository.IsNotFound(err):
			return nil, ErrDepartmentNotFound
		case repository.IsDuplicateKey(err):
			return nil, ErrDepartmentNameExists
		}
		s.logger.Error("rename department failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	dept.Name = req.Name
	resp := dto.NewDepartmentResponse(dept)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *departmentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Department.GetByID(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrDepartmentNotFound
		}
		s.logger.Error("get department failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	count, err := s.repo.Department.CountEmployees(ctx, id)
	if err != nil {
		s.logger.Error("count department employees failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrDepartmentHasEmployees
	}

	if err := s.repo.Department.Delete(ctx, id); err != nil {
		switch {
		case repository.IsNotFound(err):
			return ErrDepartmentNotFound
		case repository.IsForeignKeyViolation(err):
			return ErrDepartmentHasEmployees
		}
		s.logger.Error("delete department failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}
