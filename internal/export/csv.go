package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"corrispettivi/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV renders the table as UTF-8 CSV with a BOM. Dates stay ISO
// strings, numbers get two decimals, and the totals row comes last.
func WriteCSV(w io.Writer, table *domain.ReportTable) error {
	if _, err := w.Write(BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)

	header := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col.Label
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range table.Rows {
		if err := cw.Write(csvRow(table.Columns, row)); err != nil {
			return err
		}
	}
	if table.Totals != nil {
		if err := cw.Write(csvRow(table.Columns, table.Totals)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvRow(columns []domain.Column, row domain.Row) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		value := row[col.Key]
		switch col.Type {
		case domain.ColumnNumber:
			n, _ := value.(float64)
			out[i] = strconv.FormatFloat(n, 'f', 2, 64)
		default:
			s, _ := value.(string)
			out[i] = s
		}
	}
	return out
}
