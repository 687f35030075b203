package register

import (
	"math"
	"sort"

	"corrispettivi/internal/domain"
)

// ResolveRate determines one effective VAT percentage for a line item from
// its recorded per-rate tax amounts, falling back to an empirically derived
// rate and finally to the configured rate for the document country and the
// item's tax class.
func ResolveRate(item domain.LineItem, country string, tax *domain.TaxTable) RateKey {
	if tax == nil || !tax.Enabled {
		return ZeroRate()
	}

	// An item that charged no tax at all keeps its zero-amount components;
	// otherwise zero-amount components are suppressed.
	ids := make([]int64, 0, len(item.Taxes))
	for id, amount := range item.Taxes {
		if amount == 0 && item.TotalTax != 0 {
			continue
		}
		ids = append(ids, id)
	}

	var rates []float64
	for _, id := range ids {
		if p := tax.RatePercent(id); p > 0 {
			rates = append(rates, p)
		}
	}

	var rate float64
	switch {
	case len(rates) > 1:
		// Compound taxation: the largest rate is the base, each further
		// rate scales it as tax-on-tax.
		sort.Sort(sort.Reverse(sort.Float64Slice(rates)))
		rate = rates[0]
		for _, r := range rates[1:] {
			rate *= 1 + r/100
		}
	case len(rates) == 1:
		rate = rates[0]
	}

	if rate == 0 && item.Total != 0 && item.TotalTax != 0 {
		rate = math.Round(item.TotalTax/item.Total*100*10000) / 10000
	}
	if rate == 0 {
		if p, ok := tax.FindRate(country, item.TaxClass); ok {
			rate = p
		}
	}

	// A non-free item that charged no tax is zero-rated regardless of what
	// the class lookup says.
	if item.Total != 0 && item.TotalTax == 0 {
		return ZeroRate()
	}
	return PercentRate(rate)
}
