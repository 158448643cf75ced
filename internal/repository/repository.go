package repository

import "gorm.io/gorm"

// Repository aggregates every repository.
type Repository struct {
	Department DepartmentRepository
	Employee   EmployeeRepository
}

// NewRepository creates the Repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Department: NewDepartmentRepo(db),
		Employee:   NewEmployeeRepo(db),
	}
}
