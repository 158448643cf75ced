package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"hr-records/internal/model"
	"hr-records/internal/repository"
)

// ── Mock DepartmentRepository ──

type mockDeptRepo struct {
	departments map[uint]*model.Department
	employees   map[uint]int64 // department id → employee count
	nextID      uint

	// injected failures
	createErr error
	renameErr error
	deleteErr error
	listErr   error
}

func newMockDeptRepo() *mockDeptRepo {
	return &mockDeptRepo{
		departments: map[uint]*model.Department{
			1: {ID: 1, Name: "HR"},
		},
		employees: make(map[uint]int64),
		nextID:    2,
	}
}

func (m *mockDeptRepo) Create(_ context.Context, dept *model.Department) error {
	if m.createErr != nil {
		return m.createErr
	}
	dept.ID = m.nextID
	m.nextID++
	m.departments[dept.ID] = dept
	return nil
}

func (m *mockDeptRepo) GetByID(_ context.Context, id uint) (*model.Department, error) {
	if d, ok := m.departments[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDeptRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, d := range m.departments {
		if d.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDeptRepo) List(_ context.Context) ([]model.Department, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]model.Department, 0, len(m.departments))
	for _, d := range m.departments {
		result = append(result, *d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockDeptRepo) Rename(_ context.Context, id uint, name string) error {
	if m.renameErr != nil {
		return m.renameErr
	}
	d, ok := m.departments[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	d.Name = name
	return nil
}

func (m *mockDeptRepo) Delete(_ context.Context, id uint) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.departments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.departments, id)
	return nil
}

func (m *mockDeptRepo) CountEmployees(_ context.Context, departmentID uint) (int64, error) {
	return m.employees[departmentID], nil
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[uint]*model.Employee
	depts     *mockDeptRepo
	nextID    uint
	nextDepID uint

	createErr error
	updateErr error
	listErr   error
}

func newMockEmployeeRepo(depts *mockDeptRepo) *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees: make(map[uint]*model.Employee),
		depts:     depts,
		nextID:    1,
		nextDepID: 1,
	}
}

func (m *mockEmployeeRepo) dependents(employeeID uint, names []string) []model.Dependent {
	rows := model.NewDependents(employeeID, names)
	for i := range rows {
		rows[i].ID = m.nextDepID
		m.nextDepID++
	}
	return rows
}

func (m *mockEmployeeRepo) Create(_ context.Context, emp *model.Employee, dependents []string) error {
	if m.createErr != nil {
		return m.createErr
	}
	emp.ID = m.nextID
	m.nextID++
	emp.Dependents = m.dependents(emp.ID, dependents)
	m.employees[emp.ID] = emp
	m.depts.employees[emp.DepartmentID]++
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id uint) (*model.Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	cp.Dependents = append([]model.Dependent(nil), e.Dependents...)
	if d, ok := m.depts.departments[e.DepartmentID]; ok {
		dept := *d
		cp.Department = &dept
	}
	return &cp, nil
}

func (m *mockEmployeeRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, e := range m.employees {
		if e.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockEmployeeRepo) ExistsByNameExcludingID(_ context.Context, name string, id uint) (bool, error) {
	for _, e := range m.employees {
		if e.Name == name && e.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockEmployeeRepo) sortedIn(departmentID uint) []*model.Employee {
	var result []*model.Employee
	for _, e := range m.employees {
		if e.DepartmentID == departmentID {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (m *mockEmployeeRepo) ListByDepartment(_ context.Context, departmentID uint) ([]repository.EmployeeSummary, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	rows := make([]repository.EmployeeSummary, 0)
	for _, e := range m.sortedIn(departmentID) {
		rows = append(rows, repository.EmployeeSummary{
			ID:             e.ID,
			Name:           e.Name,
			DependentCount: int64(len(e.Dependents)),
		})
	}
	return rows, nil
}

func (m *mockEmployeeRepo) ListWithDependentsByDepartment(_ context.Context, departmentID uint) ([]model.Employee, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]model.Employee, 0)
	for _, e := range m.sortedIn(departmentID) {
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, id uint, changes *repository.EmployeeChanges) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	e, ok := m.employees[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if changes.Name != nil {
		e.Name = *changes.Name
	}
	if changes.DepartmentID != nil {
		m.depts.employees[e.DepartmentID]--
		e.DepartmentID = *changes.DepartmentID
		m.depts.employees[e.DepartmentID]++
	}
	if changes.ReplaceDependents {
		e.Dependents = m.dependents(id, changes.Dependents)
	}
	return nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id uint) error {
	e, ok := m.employees[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.depts.employees[e.DepartmentID]--
	delete(m.employees, id)
	return nil
}

// ── helpers ──

func newMockRepository() (*repository.Repository, *mockDeptRepo, *mockEmployeeRepo) {
	deptRepo := newMockDeptRepo()
	empRepo := newMockEmployeeRepo(deptRepo)
	return &repository.Repository{
		Department: deptRepo,
		Employee:   empRepo,
	}, deptRepo, empRepo
}
