package domain

// ItemType classifies a chargeable order line.
type ItemType string

const (
	ItemTypeProduct  ItemType = "line_item"
	ItemTypeFee      ItemType = "fee"
	ItemTypeShipping ItemType = "shipping"
)

// DocumentKind distinguishes a sale document from its reversal.
type DocumentKind string

const (
	KindInvoice    DocumentKind = "invoice"
	KindCreditNote DocumentKind = "credit_note"
)

// ColumnType drives how export writers encode a column's cells.
type ColumnType string

const (
	ColumnDate   ColumnType = "date"
	ColumnNumber ColumnType = "number"
	ColumnString ColumnType = "string"
)

// StatusCompleted is always part of the selected status set.
const StatusCompleted = "wc-completed"

// DefaultAllowedStatuses is the order-status allow-list the register accepts.
var DefaultAllowedStatuses = []string{
	"wc-processing",
	"wc-on-hold",
	"wc-completed",
	"wc-refunded",
}

// SelectStatuses filters requested statuses against the allow-list, dropping
// unknown values and duplicates. The completed status is always
// force-included so the selection can never end up empty.
func SelectStatuses(requested, allowed []string) []string {
	if len(allowed) == 0 {
		allowed = []string{StatusCompleted}
	}
	allowedSet := make(map[string]bool, len(allowed))
	for _, s := range allowed {
		allowedSet[s] = true
	}

	seen := make(map[string]bool, len(requested)+1)
	var selected []string
	for _, s := range requested {
		if !allowedSet[s] || seen[s] {
			continue
		}
		seen[s] = true
		selected = append(selected, s)
	}
	if !seen[StatusCompleted] {
		selected = append(selected, StatusCompleted)
	}
	return selected
}
