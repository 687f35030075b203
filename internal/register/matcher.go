package register

import (
	"time"

	"corrispettivi/internal/domain"
)

// dateLayouts are the stored date shapes the numbering plugins produce.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

func normalizeDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// MatchDocument resolves the invoice or credit-note number and issue date
// for an order (parent nil) or one of its refunds, from whichever numbering
// source is authoritative. A record with an empty number means no document
// metadata matched; the document's rate buckets still count, it just
// contributes nothing to the daily invoice-number range.
//
// generated is the document already produced by the external PDF service,
// nil when the service is absent or produced nothing; numberingManaged
// reports whether an external numbering feature owns this document kind.
func MatchDocument(doc domain.Document, parent *domain.Order, generated *domain.GeneratedDocument, numberingManaged bool) domain.DocumentRecord {
	kind := domain.KindInvoice
	if parent != nil {
		kind = domain.KindCreditNote
	}
	record := domain.DocumentRecord{Kind: kind}

	if !numberingManaged && generated != nil && generated.NumberFormatted != "" {
		record.Number = generated.NumberFormatted
		if !generated.Date.IsZero() {
			record.Date = generated.Date.Format("2006-01-02")
		} else {
			record.Date = normalizeDate(generated.RawDate)
		}
		return record
	}

	if data := doc.DocumentData(); data != nil && data.NumberFormatted != "" {
		record.Number = data.NumberFormatted
		record.Date = normalizeDate(data.Date)
		return record
	}

	// Legacy flat metadata lives on the parent order for both kinds.
	legacy := parent
	if legacy == nil {
		legacy, _ = doc.(*domain.Order)
	}
	if legacy != nil {
		if number := legacy.Meta("woo_pdf_" + string(kind) + "_id"); number != "" {
			record.Number = number
			record.Date = normalizeDate(legacy.Meta("woo_pdf_" + string(kind) + "_date"))
		}
	}
	return record
}
