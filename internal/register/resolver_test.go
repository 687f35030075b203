package register

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"corrispettivi/internal/domain"
)

func taxTable() *domain.TaxTable {
	return &domain.TaxTable{
		Enabled: true,
		BasedOn: "billing",
		Percents: map[int64]float64{
			1: 22,
			2: 10,
			3: 4,
		},
		Rates: []domain.TaxRate{
			{ID: 1, Country: "IT", Class: "", Percent: 22},
			{ID: 3, Country: "IT", Class: "reduced", Percent: 4},
		},
	}
}

func TestResolveRate_TaxDisabled(t *testing.T) {
	item := domain.LineItem{Total: 100, TotalTax: 22, Taxes: map[int64]float64{1: 22}}
	key := ResolveRate(item, "IT", &domain.TaxTable{Enabled: false})
	assert.True(t, key.IsZero())
}

func TestResolveRate_SingleRate(t *testing.T) {
	item := domain.LineItem{Total: 100, TotalTax: 22, Taxes: map[int64]float64{1: 22}}
	key := ResolveRate(item, "IT", taxTable())
	assert.Equal(t, PercentRate(22), key)
}

func TestResolveRate_CompoundIsMultiplicative(t *testing.T) {
	// 22% and 10% compound to 22 * 1.10 = 24.2, not 32.
	item := domain.LineItem{Total: 100, TotalTax: 24.2, Taxes: map[int64]float64{1: 22, 2: 2.2}}
	key := ResolveRate(item, "IT", taxTable())
	assert.Equal(t, PercentRate(24.2), key)
}

func TestResolveRate_CompoundOrderIndependent(t *testing.T) {
	a := domain.LineItem{Total: 100, TotalTax: 24.2, Taxes: map[int64]float64{2: 2.2, 1: 22}}
	b := domain.LineItem{Total: 100, TotalTax: 24.2, Taxes: map[int64]float64{1: 22, 2: 2.2}}
	assert.Equal(t, ResolveRate(a, "IT", taxTable()), ResolveRate(b, "IT", taxTable()))
}

func TestResolveRate_ZeroAmountComponentSuppressed(t *testing.T) {
	// The 10% component recorded a zero amount while tax was charged, so
	// only the 22% component participates.
	item := domain.LineItem{Total: 100, TotalTax: 22, Taxes: map[int64]float64{1: 22, 2: 0}}
	key := ResolveRate(item, "IT", taxTable())
	assert.Equal(t, PercentRate(22), key)
}

func TestResolveRate_NoTaxChargedIsZeroRated(t *testing.T) {
	// Even with a configured rate on the identifier, an item that charged
	// no tax at all resolves to the zero-rate bucket.
	item := domain.LineItem{Total: 100, TotalTax: 0, Taxes: map[int64]float64{1: 0}}
	key := ResolveRate(item, "IT", taxTable())
	assert.True(t, key.IsZero())
}

func TestResolveRate_EmpiricalFallback(t *testing.T) {
	// Unknown tax identifier: the rate is derived from the recorded
	// amounts, rounded to 4 decimals.
	item := domain.LineItem{Total: 90, TotalTax: 19.8, Taxes: map[int64]float64{99: 19.8}}
	key := ResolveRate(item, "IT", taxTable())
	assert.Equal(t, PercentRate(22), key)
}

func TestResolveRate_EmpiricalFallbackOnCreditNoteAmounts(t *testing.T) {
	item := domain.LineItem{Total: -90, TotalTax: -19.8, Taxes: map[int64]float64{99: -19.8}}
	key := ResolveRate(item, "IT", taxTable())
	assert.Equal(t, PercentRate(22), key)
}

func TestResolveRate_ClassLookupFallback(t *testing.T) {
	// No recorded tax data at all but a free item: step 7 consults the
	// configured rate for the country and class.
	item := domain.LineItem{Total: 0, TotalTax: 0, TaxClass: "reduced"}
	key := ResolveRate(item, "IT", taxTable())
	assert.Equal(t, PercentRate(4), key)
}

func TestResolveRate_InheritClassResolvesToDefault(t *testing.T) {
	item := domain.LineItem{Total: 0, TotalTax: 0, TaxClass: "inherit"}
	key := ResolveRate(item, "IT", taxTable())
	assert.Equal(t, PercentRate(22), key)
}

func TestResolveRate_EmpiricalSkippedOnZeroPreTax(t *testing.T) {
	// No division by zero: a zero pre-tax total never triggers the
	// empirical derivation.
	item := domain.LineItem{Total: 0, TotalTax: 5, Taxes: map[int64]float64{99: 5}}
	key := ResolveRate(item, "XX", &domain.TaxTable{Enabled: true})
	assert.True(t, key.IsZero())
}
