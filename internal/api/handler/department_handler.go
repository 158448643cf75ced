package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hr-records/internal/dto"
	"hr-records/internal/service"
	"hr-records/pkg/response"
)

// DepartmentHandler department HTTP handlers.
type DepartmentHandler struct {
	deptSvc service.DepartmentService
}

// NewDepartmentHandler creates a DepartmentHandler.
func NewDepartmentHandler(deptSvc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// CreateDepartment
// POST /departament/cadastrar
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Normalize()
	if !validate(c, req) {
		return
	}

	dept, err := h.deptSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleDepartmentWriteError(c, err, dto.MsgDepartmentExists)
		return
	}

	response.Created(c, dto.DepartmentMutationResponse{
		Message:      dto.MsgDepartmentCreated,
		DepartmentID: dept.ID,
	})
}

// ListDepartments
// GET /departament/listar
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	depts, err := h.deptSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, depts)
}

// GetDepartment
// GET /departament/busca_por_id/:id
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	dept, err := h.deptSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, dept)
}

// UpdateDepartment renames a department.
// PUT /departament/editar/:id
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Normalize()
	if !validate(c, req) {
		return
	}

	dept, err := h.deptSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleDepartmentWriteError(c, err, dto.MsgDepartmentNameTaken)
		return
	}

	response.OK(c, dto.DepartmentMutationResponse{
		Message:      dto.MsgDepartmentUpdated,
		DepartmentID: dept.ID,
	})
}

// DeleteDepartment
// DELETE /departament/excluir/:id
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deptSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, dto.MessageResponse{Message: dto.MsgDepartmentDeleted})
}

// handleDepartmentWriteError maps errors of create and rename. conflictMsg
// is the message for a taken name.
func (h *DepartmentHandler) handleDepartmentWriteError(c *gin.Context, err error, conflictMsg string) {
	if errors.Is(err, service.ErrDepartmentNameExists) {
		response.Conflict(c, conflictMsg)
		return
	}
	h.handleDepartmentError(c, err)
}

// handleDepartmentError maps department errors to responses.
func (h *DepartmentHandler) handleDepartmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, dto.MsgDepartmentNotFound)
	case errors.Is(err, service.ErrDepartmentHasEmployees):
		response.Conflict(c, dto.MsgDepartmentHasEmployees)
	default:
		response.InternalError(c)
	}
}
