package register

import (
	"sort"

	"corrispettivi/internal/domain"
)

// DayRow is the aggregate for one calendar day: running total, the lowest
// and highest invoice number seen, and per-rate sub-totals.
type DayRow struct {
	Date    string
	Total   float64
	Min     string
	Max     string
	Buckets Buckets
}

// Register is the rolled-up month: rows sorted ascending by date, the
// display-ordered rate key set, and the column-wise totals row.
type Register struct {
	Month  string
	Keys   []RateKey
	Rows   []DayRow
	Totals DayRow
}

// Rollup merges per-order results into one row per calendar day. The rate
// key set is the union of every bucket seen plus the two sentinel buckets.
// With fillZeroDays, days of the month without activity get zero-valued
// rows; a month with no activity at all stays empty.
//
// Invoice-number min/max uses raw string comparison of the formatted
// number, matching how the numbers are displayed. With inconsistent
// zero-padding across periods this may not follow issuance order.
func Rollup(month string, results []OrderResult, fillZeroDays bool) *Register {
	days := make(map[string]*DayRow)
	discovered := map[RateKey]struct{}{
		ZeroRate():       {},
		NotSubjectRate(): {},
	}

	for _, res := range results {
		day := days[res.Date]
		if day == nil {
			day = &DayRow{Date: res.Date, Buckets: make(Buckets)}
			days[res.Date] = day
		}
		for _, record := range res.Records {
			if record.Number == "" || record.Kind != domain.KindInvoice {
				continue
			}
			if day.Min == "" || record.Number < day.Min {
				day.Min = record.Number
			}
			if day.Max == "" || record.Number > day.Max {
				day.Max = record.Number
			}
		}
		for key, totals := range res.Buckets {
			discovered[key] = struct{}{}
			day.Buckets.Add(key, totals.Tax, totals.Total)
			day.Total += totals.Total
		}
	}

	if fillZeroDays && len(days) > 0 {
		from, to := domain.MonthRange(month)
		for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
			date := d.Format("2006-01-02")
			if _, ok := days[date]; !ok {
				days[date] = &DayRow{Date: date, Buckets: make(Buckets)}
			}
		}
	}

	keys := make([]RateKey, 0, len(discovered))
	for key := range discovered {
		keys = append(keys, key)
	}
	SortKeys(keys)

	rows := make([]DayRow, 0, len(days))
	for _, day := range days {
		rows = append(rows, *day)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })

	totals := DayRow{Buckets: make(Buckets)}
	for _, row := range rows {
		totals.Total += row.Total
		for key, t := range row.Buckets {
			totals.Buckets.Add(key, t.Tax, t.Total)
		}
	}

	return &Register{Month: month, Keys: keys, Rows: rows, Totals: totals}
}
