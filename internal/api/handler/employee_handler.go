package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hr-records/internal/dto"
	"hr-records/internal/service"
	"hr-records/pkg/response"
)

// EmployeeHandler employee HTTP handlers.
type EmployeeHandler struct {
	empSvc service.EmployeeService
}

// NewEmployeeHandler creates an EmployeeHandler.
func NewEmployeeHandler(empSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{empSvc: empSvc}
}

// CreateEmployee creates an employee together with its dependents.
// POST /colaborador/cadastrar
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Normalize()
	if !validate(c, req) {
		return
	}

	emp, err := h.empSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleEmployeeWriteError(c, err, dto.MsgEmployeeExists)
		return
	}

	response.Created(c, dto.EmployeeCreatedResponse{
		Message:    dto.MsgEmployeeCreated,
		EmployeeID: emp.ID,
	})
}

// ListByDepartment
// GET /colaborador/departamento/:department_id/colaboradores
func (h *EmployeeHandler) ListByDepartment(c *gin.Context) {
	deptID, ok := parseIDParam(c, "department_id")
	if !ok {
		return
	}

	emps, err := h.empSvc.ListByDepartment(c.Request.Context(), deptID)
	if err != nil {
		response.InternalError(c)
		return
	}
	if len(emps) == 0 {
		response.NotFound(c, dto.MsgNoEmployeesFound)
		return
	}

	response.OK(c, emps)
}

// GetEmployee
// GET /colaborador/busca_por_id/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	emp, err := h.empSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, emp)
}

// UpdateEmployee applies a partial update. A dependents list, even empty,
// replaces the existing dependents.
// PUT /colaborador/editar/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Normalize()
	if !validate(c, req) {
		return
	}

	emp, err := h.empSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleEmployeeWriteError(c, err, dto.MsgEmployeeNameTaken)
		return
	}

	response.OK(c, dto.EmployeeUpdatedResponse{
		Message:      dto.MsgEmployeeUpdated,
		DepartmentID: emp.ID,
		EmployeeID:   emp.ID,
	})
}

// DeleteEmployee removes the employee and its dependents.
// DELETE /colaborador/excluir/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.empSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, dto.MessageResponse{Message: dto.MsgEmployeeDeleted})
}

// handleEmployeeWriteError maps errors of create and update. conflictMsg
// is the message for a taken name.
func (h *EmployeeHandler) handleEmployeeWriteError(c *gin.Context, err error, conflictMsg string) {
	if errors.Is(err, service.ErrEmployeeNameExists) {
		response.Conflict(c, conflictMsg)
		return
	}
	h.handleEmployeeError(c, err)
}

// handleEmployeeError maps employee errors to responses.
func (h *EmployeeHandler) handleEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, dto.MsgEmployeeNotFound)
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, dto.MsgDepartmentNotFound)
	default:
		response.InternalError(c)
	}
}
