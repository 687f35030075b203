// Package export renders a report table as a downloadable file. Writers
// consume the column/row contract only; no register math happens here.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"corrispettivi/internal/domain"
)

const dateLayout = "2006-01-02"

// WriteXLSX renders the table as a single-sheet workbook. Date cells are
// real dates, numeric cells carry a two-decimal format, and the totals row
// is appended last.
func WriteXLSX(w io.Writer, table *domain.ReportTable) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := table.SheetName
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	numberStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("number style: %w", err)
	}
	dateFmt := "yyyy-mm-dd"
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return fmt.Errorf("date style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, col := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.Label); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	writeRow := func(rowIdx int, row domain.Row) error {
		for i, col := range table.Columns {
			cell, err := excelize.CoordinatesToCellName(i+1, rowIdx)
			if err != nil {
				return err
			}
			value := row[col.Key]
			switch col.Type {
			case domain.ColumnDate:
				raw, _ := value.(string)
				if raw == "" {
					continue
				}
				t, err := time.Parse(dateLayout, raw)
				if err != nil {
					if err := f.SetCellValue(sheet, cell, raw); err != nil {
						return err
					}
					continue
				}
				if err := f.SetCellValue(sheet, cell, t); err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet, cell, cell, dateStyle); err != nil {
					return err
				}
			case domain.ColumnNumber:
				n, _ := value.(float64)
				if err := f.SetCellValue(sheet, cell, n); err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet, cell, cell, numberStyle); err != nil {
					return err
				}
			default:
				s, _ := value.(string)
				if err := f.SetCellValue(sheet, cell, s); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for i, row := range table.Rows {
		if err := writeRow(i+2, row); err != nil {
			return err
		}
	}
	if table.Totals != nil {
		if err := writeRow(len(table.Rows)+2, table.Totals); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
