package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"hr-records/internal/repository"
)

// ── export errors ──

var ErrExportGenerateFail = errors.New("failed to generate spreadsheet")

const rosterSheet = "Colaboradores"

// ExportService spreadsheet exports.
//
// The workbook is returned as a buffer; the handler sets the download
// headers and writes it out.
type ExportService interface {
	// ExportDepartmentRoster renders the department's employees and their
	// dependents as .xlsx. Returns the content and a suggested filename.
	ExportDepartmentRoster(ctx context.Context, departmentID uint) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportDepartmentRoster
// ═══════════════════════════════════════════════════════════
//
// Layout:
//   - row 1: title with the department name, merged across the columns
//   - row 2: header  ID | Nome | Possui dependentes | Dependentes
//   - one row per employee ordered by id; dependents joined with ", "

func (s *exportService) ExportDepartmentRoster(ctx context.Context, departmentID uint) (*bytes.Buffer, string, error) {
	dept, err := s.repo.Department.GetByID(ctx, departmentID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, "", ErrDepartmentNotFound
		}
		s.logger.Error("get department failed", zap.Uint("id", departmentID), zap.Error(err))
		return nil, "", err
	}

	emps, err := s.repo.Employee.ListWithDependentsByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error("list employees for export failed", zap.Uint("department_id", departmentID), zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", rosterSheet); err != nil {
		s.logger.Error("rename sheet failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	f.SetColWidth(rosterSheet, "A", "A", 8)
	f.SetColWidth(rosterSheet, "B", "B", 32)
	f.SetColWidth(rosterSheet, "C", "C", 20)
	f.SetColWidth(rosterSheet, "D", "D", 48)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// title
	f.SetCellValue(rosterSheet, "A1", fmt.Sprintf("Departamento: %s", dept.Name))
	f.MergeCell(rosterSheet, "A1", "D1")
	f.SetCellStyle(rosterSheet, "A1", "D1", headerStyle)

	// header
	headers := []string{"ID", "Nome", "Possui dependentes", "Dependentes"}
	for i, h := range headers {
		f.SetCellValue(rosterSheet, cell(colName(i), 2), h)
	}
	f.SetCellStyle(rosterSheet, "A2", "D2", headerStyle)

	// data
	row := 3
	for _, e := range emps {
		names := make([]string, 0, len(e.Dependents))
		for _, d := range e.Dependents {
			names = append(names, d.Name)
		}
		has := "Não"
		if len(names) > 0 {
			has = "Sim"
		}

		f.SetCellValue(rosterSheet, cell("A", row), e.ID)
		f.SetCellValue(rosterSheet, cell("B", row), e.Name)
		f.SetCellValue(rosterSheet, cell("C", row), has)
		f.SetCellValue(rosterSheet, cell("D", row), strings.Join(names, ", "))
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write spreadsheet failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("colaboradores_departamento_%d.xlsx", dept.ID)
	return buf, filename, nil
}

// ── helpers ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
