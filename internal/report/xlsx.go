package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// mappingSheet is the sheet name for single-pair workbooks.
const mappingSheet = "Mapping"

// XLSXWriter writes the report as an Excel workbook holding one Mapping
// sheet with a bold, frozen header row.
type XLSXWriter struct{}

func (xw *XLSXWriter) Write(w io.Writer, rep *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", mappingSheet); err != nil {
		return fmt.Errorf("failed to name mapping sheet: %w", err)
	}
	if err := writeSheet(f, mappingSheet, rep); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteWorkbook writes one sheet per report into a single workbook at path.
// Sheet names derive from each pair's source and target labels.
func WriteWorkbook(path string, reports []*Report) error {
	f := excelize.NewFile()
	defer f.Close()

	used := make(map[string]bool, len(reports))
	for i, rep := range reports {
		sheet := uniqueSheetName(used, SheetName(rep.SourceObject, rep.TargetTable))
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", sheet, err)
		}
		if err := writeSheet(f, sheet, rep); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rep *Report) error {
	for col, h := range Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header %q: %w", h, err)
		}
	}

	for i, row := range rep.Rows {
		for col, v := range values(row) {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
	}

	return styleSheet(f, sheet)
}

func styleSheet(f *excelize.File, sheet string) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(Headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, bold); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header row: %w", err)
	}

	// Name/type columns, then the wider status and notes columns.
	if err := f.SetColWidth(sheet, "A", "H", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "I", "I", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "J", "J", 60); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "K", "K", 24)
}
