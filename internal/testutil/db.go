// Package testutil opens throwaway stores for store-backed tests.
package testutil

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hr-records/config"
	"hr-records/internal/model"
	"hr-records/pkg/database"
)

// NewDB opens a migrated sqlite database in a temp dir that is removed
// when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "hr_test.db"),
	}
	logger := zap.NewNop()

	db, err := database.NewDB(cfg, "silent", logger)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db, cfg.Driver, model.All(), logger); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SeedDepartment inserts a department and returns it.
func SeedDepartment(t testing.TB, db *gorm.DB, name string) *model.Department {
	t.Helper()
	dept := &model.Department{Name: name}
	if err := db.Create(dept).Error; err != nil {
		t.Fatalf("seed department %q: %v", name, err)
	}
	return dept
}

// SeedEmployee inserts an employee with the given dependents and returns it.
func SeedEmployee(t testing.TB, db *gorm.DB, name string, departmentID uint, dependents ...string) *model.Employee {
	t.Helper()
	emp := &model.Employee{Name: name, DepartmentID: departmentID}
	if err := db.Omit("Department", "Dependents").Create(emp).Error; err != nil {
		t.Fatalf("seed employee %q: %v", name, err)
	}
	if len(dependents) > 0 {
		rows := model.NewDependents(emp.ID, dependents)
		if err := db.Create(&rows).Error; err != nil {
			t.Fatalf("seed dependents of %q: %v", name, err)
		}
		emp.Dependents = rows
	}
	return emp
}
