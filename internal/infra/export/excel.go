package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	domain "github.com/bryanwahyu/applicant-intake/internal/domain/applications"
)

const sheetName = "Applications"

type excelColumn struct {
	Header string
	Width  float64
}

// excelColumns mirrors the CSV column set with human-readable headers.
var excelColumns = []excelColumn{
	{"ID", 36},
	{"Name", 25},
	{"Email", 30},
	{"Phone", 15},
	{"Address", 40},
	{"Education Level", 20},
	{"Pay Range", 15},
	{"Certificates", 40},
	{"LinkedIn", 40},
	{"Additional Notes", 50},
	{"Status", 15},
	{"Created At", 20},
	{"Updated At", 20},
}

// ToExcel serializes the rows into a single-sheet workbook with a bold
// header row and fixed column widths. Row order matches input order.
func ToExcel(apps []*domain.Application) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for i, col := range excelColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, name, name, col.Width); err != nil {
			return nil, err
		}
		cell := fmt.Sprintf("%s1", name)
		if err := f.SetCellValue(sheetName, cell, col.Header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, a := range apps {
		row := i + 2
		values := []interface{}{
			string(a.ID),
			a.Name,
			a.Email,
			a.Phone,
			a.Address,
			string(a.EducationLevel),
			a.PayRange,
			a.Certificates,
			a.LinkedIn,
			a.AdditionalNotes,
			string(a.Status),
			a.CreatedAt.Format(time.DateTime),
			a.UpdatedAt.Format(time.DateTime),
		}
		for col, v := range values {
			name, err := excelize.ColumnNumberToName(col + 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, fmt.Sprintf("%s%d", name, row), v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
