package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hr-records/internal/model"
)

// EmployeeSummary row of the per-department aggregate listing.
type EmployeeSummary struct {
	ID             uint
	Name           string
	DependentCount int64
}

// HasDependents reports whether the employee has at least one dependent.
func (s EmployeeSummary) HasDependents() bool { return s.DependentCount > 0 }

// EmployeeChanges the fields of an employee update. Nil fields are left
// unchanged. With ReplaceDependents set, the employee's dependents become
// exactly Dependents (possibly none) and the previous rows are discarded.
type EmployeeChanges struct {
	Name              *string
	DepartmentID      *uint
	Dependents        []string
	ReplaceDependents bool
}

// EmployeeRepository employee and dependent data access.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *model.Employee, dependents []string) error
	GetByID(ctx context.Context, id uint) (*model.Employee, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByNameExcludingID(ctx context.Context, name string, id uint) (bool, error)
	ListByDepartment(ctx context.Context, departmentID uint) ([]EmployeeSummary, error)
	ListWithDependentsByDepartment(ctx context.Context, departmentID uint) ([]model.Employee, error)
	Update(ctx context.Context, id uint, changes *EmployeeChanges) error
	Delete(ctx context.Context, id uint) error
}

// employeeRepo GORM implementation of EmployeeRepository.
type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo creates an EmployeeRepository.
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

// Create inserts the employee and one dependent row per name in a single
// transaction. On success emp.ID and emp.Dependents are populated.
func (r *employeeRepo) Create(ctx context.Context, emp *model.Employee, dependents []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(emp).Error; err != nil {
			return err
		}
		if len(dependents) == 0 {
			emp.Dependents = []model.Dependent{}
			return nil
		}
		rows := model.NewDependents(emp.ID, dependents)
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		emp.Dependents = rows
		return nil
	})
}

func (r *employeeRepo) GetByID(ctx context.Context, id uint) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Dependents", orderDependents).
		Where("id = ?", id).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *employeeRepo) ExistsByNameExcludingID(ctx context.Context, name string, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("name = ? AND id <> ?", name, id).
		Count(&count).Error
	return count > 0, err
}

// ListByDepartment returns the department's employees with their dependent
// counts in one aggregate query, ordered by id.
func (r *employeeRepo) ListByDepartment(ctx context.Context, departmentID uint) ([]EmployeeSummary, error) {
	rows := make([]EmployeeSummary, 0)
	err := r.db.WithContext(ctx).
		Table("employee").
		Select("employee.id, employee.name, COUNT(dependent.id) AS dependent_count").
		Joins("LEFT JOIN dependent ON dependent.employee_id = employee.id").
		Where("employee.department_id = ?", departmentID).
		Group("employee.id, employee.name").
		Order("employee.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *employeeRepo) ListWithDependentsByDepartment(ctx context.Context, departmentID uint) ([]model.Employee, error) {
	emps := make([]model.Employee, 0)
	err := r.db.WithContext(ctx).
		Preload("Dependents", orderDependents).
		Where("department_id = ?", departmentID).
		Order("id ASC").
		Find(&emps).Error
	return emps, err
}

// Update applies changes in one transaction. Returns gorm.ErrRecordNotFound
// when id matches no row.
func (r *employeeRepo) Update(ctx context.Context, id uint, changes *EmployeeChanges) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fields := map[string]interface{}{
			"updated_at": time.Now(),
		}
		if changes.Name != nil {
			fields["name"] = *changes.Name
		}
		if changes.DepartmentID != nil {
			fields["department_id"] = *changes.DepartmentID
		}

		res := tx.Model(&model.Employee{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if !changes.ReplaceDependents {
			return nil
		}
		if err := tx.Where("employee_id = ?", id).Delete(&model.Dependent{}).Error; err != nil {
			return err
		}
		if len(changes.Dependents) == 0 {
			return nil
		}
		rows := model.NewDependents(id, changes.Dependents)
		return tx.Create(&rows).Error
	})
}

// Delete removes the employee and its dependents. Returns
// gorm.ErrRecordNotFound when id matches no row.
func (r *employeeRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&model.Dependent{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Employee{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func orderDependents(db *gorm.DB) *gorm.DB {
	return db.Order("dependent.id ASC")
}
