package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corrispettivi/internal/domain"
)

func dayResult(date string, records []domain.DocumentRecord, buckets Buckets) OrderResult {
	return OrderResult{Date: date, Records: records, Buckets: buckets}
}

func TestRollup_MergesOrdersIntoDays(t *testing.T) {
	results := []OrderResult{
		dayResult("2025-03-05",
			[]domain.DocumentRecord{{Number: "2025/0002", Kind: domain.KindInvoice}},
			Buckets{PercentRate(22): {Tax: 22, Total: 122}}),
		dayResult("2025-03-05",
			[]domain.DocumentRecord{{Number: "2025/0001", Kind: domain.KindInvoice}},
			Buckets{PercentRate(22): {Tax: 11, Total: 61}}),
	}

	reg := Rollup("2025-03", results, false)

	require.Len(t, reg.Rows, 1)
	row := reg.Rows[0]
	assert.Equal(t, "2025-03-05", row.Date)
	assert.Equal(t, 183.0, row.Total)
	assert.Equal(t, "2025/0001", row.Min)
	assert.Equal(t, "2025/0002", row.Max)
	assert.Equal(t, Totals{Tax: 33, Total: 183}, row.Buckets[PercentRate(22)])
}

func TestRollup_EmptyNumberAndCreditNotesIgnoredForRange(t *testing.T) {
	results := []OrderResult{
		dayResult("2025-03-05",
			[]domain.DocumentRecord{
				{Number: "", Kind: domain.KindInvoice},
				{Number: "NC-1", Kind: domain.KindCreditNote},
			},
			Buckets{ZeroRate(): {Total: 10}}),
	}

	reg := Rollup("2025-03", results, false)

	require.Len(t, reg.Rows, 1)
	assert.Empty(t, reg.Rows[0].Min)
	assert.Empty(t, reg.Rows[0].Max)
	assert.Equal(t, 10.0, reg.Rows[0].Total)
}

func TestRollup_SentinelKeysAlwaysPresent(t *testing.T) {
	reg := Rollup("2025-03", []OrderResult{
		dayResult("2025-03-05", nil, Buckets{PercentRate(22): {Total: 122}}),
	}, false)

	assert.Equal(t, []RateKey{PercentRate(22), ZeroRate(), NotSubjectRate()}, reg.Keys)
}

func TestRollup_ZeroDayFill(t *testing.T) {
	reg := Rollup("2025-03", []OrderResult{
		dayResult("2025-03-05", nil, Buckets{PercentRate(22): {Total: 122}}),
	}, true)

	require.Len(t, reg.Rows, 31)
	assert.Equal(t, "2025-03-01", reg.Rows[0].Date)
	assert.Equal(t, "2025-03-31", reg.Rows[30].Date)
	assert.Equal(t, 0.0, reg.Rows[0].Total)
	assert.Empty(t, reg.Rows[0].Min)
	assert.Equal(t, 122.0, reg.Rows[4].Total)
}

func TestRollup_NoActivityMeansNoSyntheticRows(t *testing.T) {
	reg := Rollup("2025-03", nil, true)
	assert.Empty(t, reg.Rows)
}

func TestRollup_WithoutFillOnlyActiveDays(t *testing.T) {
	reg := Rollup("2025-03", []OrderResult{
		dayResult("2025-03-05", nil, Buckets{PercentRate(22): {Total: 122}}),
		dayResult("2025-03-20", nil, Buckets{PercentRate(22): {Total: 61}}),
	}, false)

	require.Len(t, reg.Rows, 2)
	assert.Equal(t, "2025-03-05", reg.Rows[0].Date)
	assert.Equal(t, "2025-03-20", reg.Rows[1].Date)
}

func TestRollup_TotalsRowSumsEveryColumn(t *testing.T) {
	reg := Rollup("2025-03", []OrderResult{
		dayResult("2025-03-05", nil, Buckets{
			PercentRate(22): {Tax: 22, Total: 122},
			ZeroRate():      {Total: 30},
		}),
		dayResult("2025-03-06", nil, Buckets{
			PercentRate(22):  {Tax: 11, Total: 61},
			NotSubjectRate(): {Total: 2},
		}),
	}, false)

	assert.Equal(t, 215.0, reg.Totals.Total)
	assert.Equal(t, Totals{Tax: 33, Total: 183}, reg.Totals.Buckets[PercentRate(22)])
	assert.Equal(t, Totals{Total: 30}, reg.Totals.Buckets[ZeroRate()])
	assert.Equal(t, Totals{Total: 2}, reg.Totals.Buckets[NotSubjectRate()])
	assert.Empty(t, reg.Totals.Min)
	assert.Empty(t, reg.Totals.Max)
}

func TestRollup_Idempotent(t *testing.T) {
	results := []OrderResult{
		dayResult("2025-03-05",
			[]domain.DocumentRecord{{Number: "2025/0001", Kind: domain.KindInvoice}},
			Buckets{PercentRate(22): {Tax: 22, Total: 122}}),
		dayResult("2025-03-02", nil, Buckets{ZeroRate(): {Total: 15}}),
	}

	first := Rollup("2025-03", results, true)
	second := Rollup("2025-03", results, true)

	assert.Equal(t, first, second)
}
