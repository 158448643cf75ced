package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"hr-records/internal/dto"
	"hr-records/internal/service"
	"hr-records/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler spreadsheet download handlers.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportDepartmentRoster downloads a department's employees as .xlsx.
// GET /colaborador/departamento/:department_id/exportar
func (h *ExportHandler) ExportDepartmentRoster(c *gin.Context) {
	deptID, ok := parseIDParam(c, "department_id")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportDepartmentRoster(c.Request.Context(), deptID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, dto.MsgDepartmentNotFound)
	default:
		response.InternalError(c)
	}
}
