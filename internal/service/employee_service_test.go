package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hr-records/internal/dto"
	"hr-records/internal/model"
)

// ── setup ──

func setupTestEmployeeService() (EmployeeService, *mockDeptRepo, *mockEmployeeRepo) {
	repo, deptRepo, empRepo := newMockRepository()
	return NewEmployeeService(repo, zap.NewNop()), deptRepo, empRepo
}

func uintPtr(v uint) *uint    { return &v }
func strPtr(s string) *string { return &s }

func createEmployee(t *testing.T, svc EmployeeService, name string, deptID uint, deps ...string) *dto.EmployeeDetailResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), &dto.CreateEmployeeRequest{
		Name:         name,
		DepartmentID: uintPtr(deptID),
		Dependents:   deps,
	})
	if err != nil {
		t.Fatalf("Create %s: %v", name, err)
	}
	return resp
}

// ── Create ──

func TestEmployeeService_Create_WithDependents(t *testing.T) {
	svc, _, empRepo := setupTestEmployeeService()

	resp := createEmployee(t, svc, "John Doe", 1, "Jane", "Jim")

	if resp.ID == 0 {
		t.Fatal("expected a generated id")
	}
	if resp.Department.ID != 1 || resp.Department.Name != "HR" {
		t.Errorf("unexpected department %+v", resp.Department)
	}
	if len(resp.Dependents) != 2 {
		t.Fatalf("expected 2 dependents, got %d", len(resp.Dependents))
	}
	if got := len(empRepo.employees[resp.ID].Dependents); got != 2 {
		t.Errorf("stored dependents = %d, want 2", got)
	}
}

func TestEmployeeService_Create_NoDependents(t *testing.T) {
	svc, _, _ := setupTestEmployeeService()

	resp := createEmployee(t, svc, "Mary", 1)
	if resp.Dependents == nil || len(resp.Dependents) != 0 {
		t.Errorf("expected empty dependents list, got %#v", resp.Dependents)
	}
}

func TestEmployeeService_Create_NameExists(t *testing.T) {
	svc, _, empRepo := setupTestEmployeeService()
	createEmployee(t, svc, "Ana", 1)

	_, err := svc.Create(context.Background(), &dto.CreateEmployeeRequest{Name: "Ana", DepartmentID: uintPtr(1)})
	if !errors.Is(err, ErrEmployeeNameExists) {
		t.Errorf("expected ErrEmployeeNameExists, got %v", err)
	}
	if len(empRepo.employees) != 1 {
		t.Errorf("duplicate create must not insert, got %d rows", len(empRepo.employees))
	}
}

func TestEmployeeService_Create_DepartmentNotFound(t *testing.T) {
	svc, _, empRepo := setupTestEmployeeService()

	_, err := svc.Create(context.Background(), &dto.CreateEmployeeRequest{Name: "Ana", DepartmentID: uintPtr(42)})
	if !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("expected ErrDepartmentNotFound, got %v", err)
	}
	if len(empRepo.employees) != 0 {
		t.Error("no employee should be stored")
	}
}

func TestEmployeeService_Create_StoreErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{"duplicate race", gorm.ErrDuplicatedKey, ErrEmployeeNameExists},
		{"department removed concurrently", gorm.ErrForeignKeyViolated, ErrDepartmentNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, empRepo := setupTestEmployeeService()
			empRepo.createErr = tt.repoErr

			_, err := svc.Create(context.Background(), &dto.CreateEmployeeRequest{Name: "Ana", DepartmentID: uintPtr(1)})
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	t.Run("infrastructure", func(t *testing.T) {
		svc, _, empRepo := setupTestEmployeeService()
		boom := errors.New("disk full")
		empRepo.createErr = boom

		_, err := svc.Create(context.Background(), &dto.CreateEmployeeRequest{Name: "Ana", DepartmentID: uintPtr(1)})
		if !errors.Is(err, boom) {
			t.Errorf("expected pass-through, got %v", err)
		}
	})
}

// ── GetByID ──

func TestEmployeeService_GetByID(t *testing.T) {
	svc, _, _ := setupTestEmployeeService()
	created := createEmployee(t, svc, "John Doe", 1, "Jane")

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "John Doe" || got.Department.Name != "HR" || len(got.Dependents) != 1 {
		t.Errorf("unexpected detail %+v", got)
	}

	if _, err := svc.GetByID(context.Background(), 99); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

// ── ListByDepartment ──

func TestEmployeeService_ListByDepartment(t *testing.T) {
	svc, deptRepo, _ := setupTestEmployeeService()
	deptRepo.departments[2] = &model.Department{ID: 2, Name: "Sales"}

	john := createEmployee(t, svc, "John Doe", 1, "Jane", "Jim")
	mary := createEmployee(t, svc, "Mary", 1)

	result, err := svc.ListByDepartment(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByDepartment: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(result))
	}
	if result[0].ID != john.ID || !result[0].HaveDependents {
		t.Errorf("unexpected first row %+v", result[0])
	}
	if result[1].ID != mary.ID || result[1].HaveDependents {
		t.Errorf("unexpected second row %+v", result[1])
	}

	empty, err := svc.ListByDepartment(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListByDepartment: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", empty)
	}
}

func TestEmployeeService_ListByDepartment_Error(t *testing.T) {
	svc, _, empRepo := setupTestEmployeeService()
	empRepo.listErr = errors.New("db down")

	if _, err := svc.ListByDepartment(context.Background(), 1); err == nil {
		t.Error("expected error")
	}
}

// ── Update ──

func TestEmployeeService_Update_ReplacesDependents(t *testing.T) {
	svc, _, empRepo := setupTestEmployeeService()
	emp := createEmployee(t, svc, "Ana", 1, "A", "B", "C")

	got, err := svc.Update(context.Background(), emp.ID, &dto.UpdateEmployeeRequest{
		Dependents: &[]string{"X"},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(got.Dependents) != 1 || got.Dependents[0].Name != "X" {
		t.Errorf("unexpected dependents %+v", got.Dependents)
	}
	if n := len(empRepo.employees[emp.ID].Dependents); n != 1 {
		t.Errorf("stored dependents = %d, want 1", n)
	}

	got, err = svc.Update(context.Background(), emp.ID, &dto.UpdateEmployeeRequest{Dependents: &[]string{}})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(got.Dependents) != 0 {
		t.Errorf("empty list must clear dependents, got %+v", got.Dependents)
	}
}

func TestEmployeeService_Update_KeepsDependentsWhenOmitted(t *testing.T) {
	svc, _, _ := setupTestEmployeeService()
	emp := createEmployee(t, svc, "Ana", 1, "Kid")

	got, err := svc.Update(context.Background(), emp.ID, &dto.UpdateEmployeeRequest{Name: strPtr("Ana Maria")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Name != "Ana Maria" {
		t.Errorf("Name = %q", got.Name)
	}
	if len(got.Dependents) != 1 {
		t.Errorf("dependents must be untouched, got %+v", got.Dependents)
	}
}

func TestEmployeeService_Update_OwnNameIsNotAConflict(t *testing.T) {
	svc, _, _ := setupTestEmployeeService()
	emp := createEmployee(t, svc, "Ana", 1)

	if _, err := svc.Update(context.Background(), emp.ID, &dto.UpdateEmployeeRequest{Name: strPtr("Ana")}); err != nil {
		t.Errorf("expected success, got %v", err)
	}
}

func TestEmployeeService_Update_NameTaken(t *testing.T) {
	svc, _, empRepo := setupTestEmployeeService()
	createEmployee(t, svc, "Bob", 1)
	ana := createEmployee(t, svc, "Ana", 1)

	_, err := svc.Update(context.Background(), ana.ID, &dto.UpdateEmployeeRequest{Name: strPtr("Bob")})
	if !errors.Is(err, ErrEmployeeNameExists) {
		t.Errorf("expected ErrEmployeeNameExists, got %v", err)
	}
	if empRepo.employees[ana.ID].Name != "Ana" {
		t.Error("rejected rename must not change the row")
	}
}

func TestEmployeeService_Update_MovesDepartment(t *testing.T) {
	svc, deptRepo, _ := setupTestEmployeeService()
	deptRepo.departments[2] = &model.Department{ID: 2, Name: "Sales"}
	emp := createEmployee(t, svc, "Ana", 1)

	got, err := svc.Update(context.Background(), emp.ID, &dto.UpdateEmployeeRequest{DepartmentID: uintPtr(2)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if deptRepo.employees[1] != 0 || deptRepo.employees[2] != 1 {
		t.Errorf("employee counts not moved: %v", deptRepo.employees)
	}
	if got.Department.ID != 2 || got.Department.Name != "Sales" {
		t.Errorf("unexpected department %+v", got.Department)
	}
}

func TestEmployeeService_Update_DepartmentNotFound(t *testing.T) {
	svc, _, _ := setupTestEmployeeService()
	emp := createEmployee(t, svc, "Ana", 1)

	_, err := svc.Update(context.Background(), emp.ID, &dto.UpdateEmployeeRequest{DepartmentID: uintPtr(77)})
	if !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	svc, _, _ := setupTestEmployeeService()

	_, err := svc.Update(context.Background(), 99, &dto.UpdateEmployeeRequest{Name: strPtr("Ghost")})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeService_Update_StoreDuplicate(t *testing.T) {
	svc, _, empRepo := setupTestEmployeeService()
	emp := createEmployee(t, svc, "Ana", 1)
	empRepo.updateErr = gorm.ErrDuplicatedKey

	_, err := svc.Update(context.Background(), emp.ID, &dto.UpdateEmployeeRequest{Name: strPtr("Bob")})
	if !errors.Is(err, ErrEmployeeNameExists) {
		t.Errorf("expected ErrEmployeeNameExists, got %v", err)
	}
}

// ── Delete ──

func TestEmployeeService_Delete(t *testing.T) {
	svc, deptRepo, empRepo := setupTestEmployeeService()
	emp := createEmployee(t, svc, "Ana", 1, "Kid")

	if err := svc.Delete(context.Background(), emp.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(empRepo.employees) != 0 {
		t.Error("employee should be removed")
	}
	if deptRepo.employees[1] != 0 {
		t.Errorf("department employee count = %d, want 0", deptRepo.employees[1])
	}

	if err := svc.Delete(context.Background(), emp.ID); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}
