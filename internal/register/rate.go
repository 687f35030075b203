// Package register computes the daily payments register from a month of
// store orders: it resolves an effective VAT rate per line item, buckets
// amounts per rate, matches invoice and credit-note numbers, and rolls
// everything up into one row per calendar day.
package register

import (
	"sort"
	"strconv"
	"strings"
)

// rateKind orders the three bucket families.
type rateKind int

const (
	kindPercent rateKind = iota
	kindZero
	kindNotSubject
)

// RateKey identifies one rate bucket: a positive percentage, the zero-rate
// (non-taxable or exempt) sentinel, or the not-subject-to-VAT sentinel.
// Percentages are held as fixed-point basis units (percent × 10000) so that
// keys compare exactly at 4-decimal precision.
type RateKey struct {
	kind  rateKind
	basis int64
}

// ZeroRate is the bucket for non-taxable or exempt transactions.
func ZeroRate() RateKey { return RateKey{kind: kindZero} }

// NotSubjectRate is the bucket for transactions outside VAT registration,
// such as stamp duty.
func NotSubjectRate() RateKey { return RateKey{kind: kindNotSubject} }

// PercentRate builds the bucket key for an effective percentage, rounding
// to 4 decimal places. Non-positive percentages collapse to the zero-rate
// sentinel.
func PercentRate(percent float64) RateKey {
	basis := int64(percent*10000 + 0.5)
	if percent < 0 {
		basis = -int64(-percent*10000 + 0.5)
	}
	if basis <= 0 {
		return ZeroRate()
	}
	return RateKey{kind: kindPercent, basis: basis}
}

// IsZero reports whether the key is the zero-rate sentinel.
func (k RateKey) IsZero() bool { return k.kind == kindZero }

// IsNotSubject reports whether the key is the not-subject-to-VAT sentinel.
func (k RateKey) IsNotSubject() bool { return k.kind == kindNotSubject }

// Percent returns the percentage value, zero for both sentinels.
func (k RateKey) Percent() float64 {
	if k.kind != kindPercent {
		return 0
	}
	return float64(k.basis) / 10000
}

// String renders the key as its stable map representation: "0" for the
// zero-rate, "ns" for not-subject, and the percentage with up to 4 trimmed
// decimals otherwise.
func (k RateKey) String() string {
	switch k.kind {
	case kindZero:
		return "0"
	case kindNotSubject:
		return "ns"
	}
	s := strconv.FormatFloat(float64(k.basis)/10000, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// Totals accumulates the tax and gross amounts of one bucket.
type Totals struct {
	Tax   float64 `json:"tax"`
	Total float64 `json:"total"`
}

// Buckets maps rate keys to their accumulators. Within one order processing
// pass buckets are only ever created and added to, never removed.
type Buckets map[RateKey]Totals

// Add accumulates tax and gross amounts into the bucket for key.
func (b Buckets) Add(key RateKey, tax, total float64) {
	t := b[key]
	t.Tax += tax
	t.Total += total
	b[key] = t
}

// SortKeys orders rate keys for rendering: positive rates descending, then
// the zero-rate column, then the not-subject column.
func SortKeys(keys []RateKey) {
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.kind != b.kind {
			return a.kind < b.kind
		}
		return a.basis > b.basis
	})
}
