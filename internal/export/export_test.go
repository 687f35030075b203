package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"corrispettivi/internal/domain"
)

func sampleTable() *domain.ReportTable {
	return &domain.ReportTable{
		Month: "2025-03",
		Columns: []domain.Column{
			{Key: "date", Label: "Date", Type: domain.ColumnDate},
			{Key: "total", Label: "Total daily payments", Type: domain.ColumnNumber},
			{Key: "tax_rate_22", Label: "Tax rate 22%", Type: domain.ColumnNumber},
			{Key: "invoice_number_from", Label: "Invoice from No.", Type: domain.ColumnString},
			{Key: "invoice_number_to", Label: "Invoice to No.", Type: domain.ColumnString},
		},
		Rows: []domain.Row{
			{
				"date":                "2025-03-05",
				"total":               122.0,
				"tax_rate_22":         122.0,
				"invoice_number_from": "2025/0001",
				"invoice_number_to":   "2025/0002",
			},
		},
		Totals: domain.Row{
			"date":                "",
			"total":               122.0,
			"tax_rate_22":         122.0,
			"invoice_number_from": "",
			"invoice_number_to":   "",
		},
		FileBase:  "corrispettivi-2025-03",
		SheetName: "Corrispettivi",
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTable()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, string(BOM)))

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(out, string(BOM))), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Total daily payments,Tax rate 22%,Invoice from No.,Invoice to No.", lines[0])
	assert.Equal(t, "2025-03-05,122.00,122.00,2025/0001,2025/0002", lines[1])
	assert.Equal(t, ",122.00,122.00,,", lines[2])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleTable()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, "Corrispettivi", f.GetSheetName(0))

	header, err := f.GetCellValue("Corrispettivi", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	date, err := f.GetCellValue("Corrispettivi", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-05", date)

	total, err := f.GetCellValue("Corrispettivi", "B2")
	require.NoError(t, err)
	assert.Equal(t, "122.00", total)

	from, err := f.GetCellValue("Corrispettivi", "D2")
	require.NoError(t, err)
	assert.Equal(t, "2025/0001", from)

	totalsRow, err := f.GetCellValue("Corrispettivi", "B3")
	require.NoError(t, err)
	assert.Equal(t, "122.00", totalsRow)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "corrispettivi-2025-03", SanitizeFilename("corrispettivi-2025-03"))
	assert.Equal(t, "report_marzo", SanitizeFilename("report marzo!"))
	assert.Equal(t, "a_b", SanitizeFilename("__a///b__"))
}

func TestBuildFilename(t *testing.T) {
	assert.Equal(t, "corrispettivi-2025-03.xlsx", BuildFilename("corrispettivi-2025-03", "xlsx"))
	assert.Equal(t, "corrispettivi-2025-03.csv", BuildFilename("corrispettivi-2025-03", "csv"))
}
