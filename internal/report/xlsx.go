package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/equitydesk/callinsight/internal/pipeline"
)

// BuildWorkbook returns the report as an XLSX workbook (as bytes): one sheet,
// Field/Value rows in the same fixed order as the HTML rendering. List fields
// are joined with newlines.
func BuildWorkbook(rep pipeline.Report) ([]byte, error) {
	a := rep.Analysis

	f := excelize.NewFile()
	const sheet = "Analysis"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	rows := [][2]string{
		{"Field", "Value"},
		{"Management Tone", a.ManagementTone},
		{"Confidence Level", a.ConfidenceLevel},
		{"Key Positives", strings.Join(a.KeyPositives, "\n")},
		{"Key Concerns", strings.Join(a.KeyConcerns, "\n")},
		{"Forward Guidance", a.ForwardGuidance},
		{"Capacity Utilization", a.CapacityUtilization},
		{"Growth Initiatives", strings.Join(a.GrowthInitiatives, "\n")},
	}

	for i, row := range rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
