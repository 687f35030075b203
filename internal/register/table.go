package register

import (
	"fmt"
	"math"

	"corrispettivi/internal/domain"
)

// SheetName labels the exported worksheet.
const SheetName = "Corrispettivi"

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func rateColumn(key RateKey) domain.Column {
	switch {
	case key.IsZero():
		return domain.Column{
			Key:   "tax_rate_0",
			Label: "Non-taxable or exempt transactions",
			Type:  domain.ColumnNumber,
		}
	case key.IsNotSubject():
		return domain.Column{
			Key:   "tax_rate_ns",
			Label: "Transactions not subject to VAT registration",
			Type:  domain.ColumnNumber,
		}
	default:
		return domain.Column{
			Key:   "tax_rate_" + key.String(),
			Label: fmt.Sprintf("Tax rate %s%%", key.String()),
			Type:  domain.ColumnNumber,
		}
	}
}

// BuildTable reshapes a rolled-up register into the column/row contract
// consumed by rendering and export. It owns no aggregation rules: every
// number is already summed, only display rounding happens here.
func BuildTable(reg *Register) *domain.ReportTable {
	columns := []domain.Column{
		{Key: "date", Label: "Date", Type: domain.ColumnDate},
		{Key: "total", Label: "Total daily payments", Type: domain.ColumnNumber},
	}
	for _, key := range reg.Keys {
		columns = append(columns, rateColumn(key))
	}
	columns = append(columns,
		domain.Column{Key: "invoice_number_from", Label: "Invoice from No.", Type: domain.ColumnString},
		domain.Column{Key: "invoice_number_to", Label: "Invoice to No.", Type: domain.ColumnString},
	)

	rows := make([]domain.Row, 0, len(reg.Rows))
	for _, day := range reg.Rows {
		rows = append(rows, buildRow(reg.Keys, day, day.Date, day.Min, day.Max))
	}
	totals := buildRow(reg.Keys, reg.Totals, "", "", "")

	return &domain.ReportTable{
		Month:     reg.Month,
		Columns:   columns,
		Rows:      rows,
		Totals:    totals,
		FileBase:  "corrispettivi-" + reg.Month,
		SheetName: SheetName,
	}
}

func buildRow(keys []RateKey, day DayRow, date, min, max string) domain.Row {
	row := domain.Row{
		"date":                date,
		"total":               round2(day.Total),
		"invoice_number_from": min,
		"invoice_number_to":   max,
	}
	for _, key := range keys {
		row[rateColumn(key).Key] = round2(day.Buckets[key].Total)
	}
	return row
}
