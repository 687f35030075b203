package register

import (
	"fmt"
	"math"
	"strings"

	"corrispettivi/internal/domain"
)

// Labels are the exact fee names the aggregator special-cases. They mirror
// a third-party plugin's item naming and are configuration, not constants:
// a deployment with a different locale must override them.
type Labels struct {
	WithholdingFee string
	StampDutyFee   string
}

// DefaultLabels returns the fee labels the reference store uses.
func DefaultLabels() Labels {
	return Labels{
		WithholdingFee: "Withholding tax",
		StampDutyFee:   "Imposta di bollo",
	}
}

// DocumentMeta carries the invoicing-collaborator state for one document:
// whether an external numbering feature owns its kind, and the document the
// external PDF service already generated, if any.
type DocumentMeta struct {
	Generated        *domain.GeneratedDocument
	NumberingManaged bool
}

// OrderInput is one order plus the prefetched invoicing metadata for it and
// each of its refunds (keyed by refund ID).
type OrderInput struct {
	Order       *domain.Order
	Invoice     DocumentMeta
	CreditNotes map[int64]DocumentMeta
}

// OrderResult is the outcome of one order processing pass: the order date,
// the matched document records, and the rate buckets accumulated across the
// order and all its refunds.
type OrderResult struct {
	Date     string
	Records  []domain.DocumentRecord
	Buckets  Buckets
	Warnings []string
}

// ProcessOrder matches documents and aggregates line items for one order
// and its refunds. The bucket set is rebuilt from empty for every order.
func ProcessOrder(in OrderInput, tax *domain.TaxTable, labels Labels) OrderResult {
	order := in.Order
	result := OrderResult{
		Date:    order.CreatedAt.Format("2006-01-02"),
		Buckets: make(Buckets),
	}

	result.Records = append(result.Records,
		MatchDocument(order, nil, in.Invoice.Generated, in.Invoice.NumberingManaged))
	result.Warnings = append(result.Warnings,
		aggregateLines(order, domain.KindInvoice, nil, tax, labels, result.Buckets)...)

	for _, refund := range order.Refunds {
		meta := in.CreditNotes[refund.ID]
		result.Records = append(result.Records,
			MatchDocument(refund, order, meta.Generated, meta.NumberingManaged))
		result.Warnings = append(result.Warnings,
			aggregateLines(refund, domain.KindCreditNote, order, tax, labels, result.Buckets)...)
	}
	return result
}

// aggregateLines folds one document's chargeable items into buckets and
// returns warnings for fee names that only matched a special label
// case-insensitively.
func aggregateLines(doc domain.Document, kind domain.DocumentKind, parent *domain.Order, tax *domain.TaxTable, labels Labels, buckets Buckets) []string {
	items := doc.Items()
	if kind == domain.KindCreditNote && len(items) == 0 && parent != nil &&
		math.Abs(doc.Total()) == parent.Total() {
		// Full-value refund with no itemization: borrow the parent's items,
		// negated to keep refund sign semantics.
		items = negateItems(parent.Items())
	}

	basedOn := ""
	if tax != nil {
		basedOn = tax.BasedOn
	}
	country := doc.Country(basedOn)

	var warnings []string
	for _, item := range items {
		if item.Type == domain.ItemTypeFee {
			switch item.Name {
			case labels.WithholdingFee:
				continue
			case labels.StampDutyFee:
				buckets.Add(NotSubjectRate(), 0, item.Total)
				continue
			}
			if strings.EqualFold(item.Name, labels.WithholdingFee) || strings.EqualFold(item.Name, labels.StampDutyFee) {
				warnings = append(warnings, fmt.Sprintf(
					"fee %q does not exactly match a special fee label; treated as a regular item", item.Name))
			}
		}
		key := ResolveRate(item, country, tax)
		buckets.Add(key, item.TotalTax, item.Total+item.TotalTax)
	}
	return warnings
}

func negateItems(items []domain.LineItem) []domain.LineItem {
	negated := make([]domain.LineItem, len(items))
	for i, item := range items {
		n := item
		n.Total = -item.Total
		n.TotalTax = -item.TotalTax
		if len(item.Taxes) > 0 {
			n.Taxes = make(map[int64]float64, len(item.Taxes))
			for id, amount := range item.Taxes {
				n.Taxes[id] = -amount
			}
		}
		negated[i] = n
	}
	return negated
}
