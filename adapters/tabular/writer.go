package tabular

import (
	"gohappy/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet of an exported workbook.
type Sheet struct {
	Name string
	Rows [][]interface{}
}

// WriteWorkbook writes the sheets to an XLSX file at path, first sheet active.
func WriteWorkbook(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return errors.InvalidArgument("workbook needs at least one sheet")
	}

	f := excelize.NewFile()

	for i, sheet := range sheets {
		if i == 0 {
			// Rename the default Sheet1 rather than leaving it dangling.
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return errors.Wrapf(err, "failed to create sheet %q", sheet.Name)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return errors.Wrapf(err, "failed to create sheet %q", sheet.Name)
			}
		}

		for r, row := range sheet.Rows {
			for c, value := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return errors.Wrapf(err, "bad cell coordinates (%d, %d)", c+1, r+1)
				}
				if err := f.SetCellValue(sheet.Name, cell, value); err != nil {
					return errors.Wrapf(err, "failed to write cell %s of %q", cell, sheet.Name)
				}
			}
		}
	}

	idx, err := f.GetSheetIndex(sheets[0].Name)
	if err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save workbook %s", path)
	}
	return nil
}
