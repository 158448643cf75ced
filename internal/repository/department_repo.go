package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hr-records/internal/model"
)

// DepartmentRepository department data access.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *model.Department) error
	GetByID(ctx context.Context, id uint) (*model.Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]model.Department, error)
	Rename(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
	CountEmployees(ctx context.Context, departmentID uint) (int64, error)
}

// departmentRepo GORM implementation of DepartmentRepository.
type departmentRepo struct {
	db *gorm.DB
}

// NewDepartmentRepo creates a DepartmentRepository.
func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) Create(ctx context.Context, dept *model.Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *departmentRepo) GetByID(ctx context.Context, id uint) (*model.Department, error) {
	var dept model.Department
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Department{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *departmentRepo) List(ctx context.Context) ([]model.Department, error) {
	depts := make([]model.Department, 0)
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&depts).Error
	return depts, err
}

// Rename returns gorm.ErrRecordNotFound when id matches no row.
func (r *departmentRepo) Rename(ctx context.Context, id uint, name string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Department{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       name,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete returns gorm.ErrRecordNotFound when id matches no row.
func (r *departmentRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Department{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *departmentRepo) CountEmployees(ctx context.Context, departmentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}
