package dto

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"hr-records/internal/model"
)

// ── employee DTOs ──

var dependentNameRules = []validation.Rule{
	validation.Required.Error(MsgDependentInvalid),
	validation.RuneLength(1, model.NameMaxLength).Error(MsgDependentInvalid),
}

// CreateEmployeeRequest body of POST /colaborador/cadastrar.
type CreateEmployeeRequest struct {
	Name         string   `json:"name"`
	DepartmentID *uint    `json:"department_id"`
	Dependents   []string `json:"dependents"`
}

// Normalize trims the employee and dependent names.
func (r *CreateEmployeeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Dependents = trimAll(r.Dependents)
}

// Validate implements validation.Validatable.
func (r CreateEmployeeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error(MsgEmployeeFieldsRequired),
			validation.RuneLength(1, model.NameMaxLength).Error(MsgNameTooLong),
		),
		validation.Field(&r.DepartmentID,
			validation.NotNil.Error(MsgEmployeeFieldsRequired),
			validation.Required.Error(MsgEmployeeFieldsRequired),
		),
		validation.Field(&r.Dependents, validation.Each(dependentNameRules...)),
	)
}

// UpdateEmployeeRequest body of PUT /colaborador/editar/{id}.
// A nil field is left unchanged; a non-nil Dependents, even empty,
// replaces the whole set.
type UpdateEmployeeRequest struct {
	Name         *string   `json:"name"`
	DepartmentID *uint     `json:"department_id"`
	Dependents   *[]string `json:"dependents"`
}

// Normalize trims names. A blank name counts as not provided.
func (r *UpdateEmployeeRequest) Normalize() {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			r.Name = nil
		} else {
			r.Name = &name
		}
	}
	if r.Dependents != nil {
		deps := trimAll(*r.Dependents)
		r.Dependents = &deps
	}
}

// HasChanges reports whether any field was provided.
func (r *UpdateEmployeeRequest) HasChanges() bool {
	return r.Name != nil || r.DepartmentID != nil || r.Dependents != nil
}

// Validate implements validation.Validatable.
func (r UpdateEmployeeRequest) Validate() error {
	if !r.HasChanges() {
		return validation.NewError("validation_no_fields", MsgNoUpdateFields)
	}
	var deps []string
	if r.Dependents != nil {
		deps = *r.Dependents
	}
	return validation.Errors{
		"name": validation.Validate(r.Name,
			validation.NilOrNotEmpty.Error(MsgNameTooLong),
			validation.RuneLength(1, model.NameMaxLength).Error(MsgNameTooLong),
		),
		"dependents": validation.Validate(deps, validation.Each(dependentNameRules...)),
	}.Filter()
}

// EmployeeSummaryResponse item of the per-department listing.
type EmployeeSummaryResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	HaveDependents bool   `json:"have_dependents"`
}

// DependentResponse {id, name}.
type DependentResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// EmployeeDetailResponse employee with its department and dependents.
type EmployeeDetailResponse struct {
	ID         uint                `json:"id"`
	Name       string              `json:"name"`
	Department DepartmentResponse  `json:"department"`
	Dependents []DependentResponse `json:"dependents"`
}

// NewEmployeeDetailResponse maps an employee loaded with its relations.
func NewEmployeeDetailResponse(e *model.Employee) EmployeeDetailResponse {
	resp := EmployeeDetailResponse{
		ID:         e.ID,
		Name:       e.Name,
		Dependents: make([]DependentResponse, 0, len(e.Dependents)),
	}
	if e.Department != nil {
		resp.Department = NewDepartmentResponse(e.Department)
	} else {
		resp.Department = DepartmentResponse{ID: e.DepartmentID}
	}
	for _, d := range e.Dependents {
		resp.Dependents = append(resp.Dependents, DependentResponse{ID: d.ID, Name: d.Name})
	}
	return resp
}

func trimAll(names []string) []string {
	if names == nil {
		return nil
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.TrimSpace(n)
	}
	return out
}
