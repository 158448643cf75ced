package model

// Employee maps table employee.
//
// An employee exclusively owns its dependents: deleting the employee row
// deletes them (ON DELETE CASCADE), while a department cannot be deleted
// while employees still reference it (ON DELETE RESTRICT).
type Employee struct {
	ID           uint   `gorm:"primaryKey"                                              json:"id"`
	Name         string `gorm:"type:varchar(100);not null;uniqueIndex:uq_employee_name" json:"name"`
	DepartmentID uint   `gorm:"not null;index:idx_employee_department_id"               json:"department_id"`
	BaseModel

	// relations
	Department *Department `gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"department,omitempty"`
	Dependents []Dependent `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"   json:"dependents,omitempty"`
}

// TableName table name.
func (Employee) TableName() string { return "employee" }

// Dependent maps table dependent.
type Dependent struct {
	ID         uint   `gorm:"primaryKey"                                json:"id"`
	Name       string `gorm:"type:varchar(100);not null"                json:"name"`
	EmployeeID uint   `gorm:"not null;index:idx_dependent_employee_id" json:"employee_id"`
	BaseModel
}

// TableName table name.
func (Dependent) TableName() string { return "dependent" }

// NewDependents builds one dependent row per name for employeeID.
func NewDependents(employeeID uint, names []string) []Dependent {
	deps := make([]Dependent, 0, len(names))
	for _, name := range names {
		deps = append(deps, Dependent{Name: name, EmployeeID: employeeID})
	}
	return deps
}
