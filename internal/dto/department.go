package dto

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"hr-records/internal/model"
)

// ── department DTOs ──

// CreateDepartmentRequest body of POST /departament/cadastrar.
type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

// Normalize trims the name.
func (r *CreateDepartmentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// Validate implements validation.Validatable.
func (r CreateDepartmentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error(MsgDepartmentNameRequired),
			validation.RuneLength(1, model.NameMaxLength).Error(MsgNameTooLong),
		),
	)
}

// UpdateDepartmentRequest body of PUT /departament/editar/{id}.
type UpdateDepartmentRequest struct {
	Name string `json:"name"`
}

// Normalize trims the name.
func (r *UpdateDepartmentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// Validate implements validation.Validatable.
func (r UpdateDepartmentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error(MsgDepartmentNewNameNeeded),
			validation.RuneLength(1, model.NameMaxLength).Error(MsgNameTooLong),
		),
	)
}

// DepartmentResponse {id, name}.
type DepartmentResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewDepartmentResponse maps a department row.
func NewDepartmentResponse(d *model.Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Name: d.Name}
}
