package domain

import "time"

// LineItem is one chargeable line of an order or refund. Total is the
// pre-tax amount; Taxes maps a store tax-rate identifier to the tax amount
// recorded for that rate (empty when tax is disabled or the line is
// zero-rated).
type LineItem struct {
	ID       int64             `json:"id"`
	Type     ItemType          `json:"type"`
	Name     string            `json:"name"`
	TaxClass string            `json:"tax_class"`
	Total    float64           `json:"total"`
	TotalTax float64           `json:"total_tax"`
	Taxes    map[int64]float64 `json:"taxes,omitempty"`
}

// StoredDocumentData is structured invoicing metadata previously written to
// an order or refund by the numbering plugin.
type StoredDocumentData struct {
	NumberFormatted string `json:"number_formatted"`
	Date            string `json:"date"`
}

// Document is the read surface shared by orders and refunds during register
// computation.
type Document interface {
	Items() []LineItem
	Total() float64
	// Country returns the country used for class-based rate fallback: the
	// shipping country when the store bases tax on the shipping address and
	// a shipping recipient is present, the billing country otherwise.
	Country(taxBasedOn string) string
	Meta(key string) string
	DocumentData() *StoredDocumentData
}

// Order is a read-only projection of a store order.
type Order struct {
	ID              int64             `json:"id"`
	Status          string            `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	BillingCountry  string            `json:"billing_country"`
	ShippingCountry string            `json:"shipping_country"`
	ShippingName    string            `json:"shipping_name"`
	TotalAmount     float64           `json:"total"`
	Lines           []LineItem        `json:"lines"`
	Refunds         []*Refund         `json:"refunds,omitempty"`
	Metadata        map[string]string `json:"-"`
	DocData         *StoredDocumentData
}

func (o *Order) Items() []LineItem { return o.Lines }

func (o *Order) Total() float64 { return o.TotalAmount }

func (o *Order) Country(taxBasedOn string) string {
	if taxBasedOn == "shipping" && o.ShippingName != "" {
		return o.ShippingCountry
	}
	return o.BillingCountry
}

func (o *Order) Meta(key string) string { return o.Metadata[key] }

func (o *Order) DocumentData() *StoredDocumentData { return o.DocData }

// Refund is a reversal document attached to its parent order. TotalAmount
// is negative for ordinary refunds.
type Refund struct {
	ID          int64             `json:"id"`
	Parent      *Order            `json:"-"`
	TotalAmount float64           `json:"total"`
	Lines       []LineItem        `json:"lines"`
	Metadata    map[string]string `json:"-"`
	DocData     *StoredDocumentData
}

func (r *Refund) Items() []LineItem { return r.Lines }

func (r *Refund) Total() float64 { return r.TotalAmount }

// Country delegates to the parent order; refunds carry no address of their
// own.
func (r *Refund) Country(taxBasedOn string) string {
	if r.Parent == nil {
		return ""
	}
	return r.Parent.Country(taxBasedOn)
}

func (r *Refund) Meta(key string) string { return r.Metadata[key] }

func (r *Refund) DocumentData() *StoredDocumentData { return r.DocData }

// GeneratedDocument is a document already produced by an external PDF
// service. Date is zero when the service only recorded a raw date-time
// string, which is kept in RawDate.
type GeneratedDocument struct {
	NumberFormatted string
	Date            time.Time
	RawDate         string
}

// DocumentRecord is the matched numbering result for one document. An empty
// Number means no invoice or credit-note metadata was found; the document
// still contributes its rate buckets, just no invoice-number data.
type DocumentRecord struct {
	Number string       `json:"number"`
	Date   string       `json:"date"`
	Kind   DocumentKind `json:"kind"`
}

// TaxRate is one configured store tax rate.
type TaxRate struct {
	ID      int64
	Country string
	Class   string
	Percent float64
}

// TaxTable is a per-request snapshot of the store tax configuration.
type TaxTable struct {
	Enabled  bool
	BasedOn  string
	Percents map[int64]float64
	Rates    []TaxRate
}

// RatePercent returns the configured percentage for a tax-rate identifier,
// zero when unknown.
func (t *TaxTable) RatePercent(id int64) float64 {
	if t == nil || t.Percents == nil {
		return 0
	}
	return t.Percents[id]
}

// FindRate returns the first configured rate matching country and tax
// class. The "inherit" class resolves to the default class.
func (t *TaxTable) FindRate(country, taxClass string) (float64, bool) {
	if t == nil {
		return 0, false
	}
	if taxClass == "inherit" {
		taxClass = ""
	}
	for _, r := range t.Rates {
		if r.Class != taxClass {
			continue
		}
		if r.Country == "" || r.Country == country {
			return r.Percent, true
		}
	}
	return 0, false
}

// MonthOption is one entry of the month selector.
type MonthOption struct {
	Year  int `json:"year" db:"yr"`
	Month int `json:"month" db:"mo"`
}

// Value formats the option as YYYY-MM.
func (m MonthOption) Value() string {
	return time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// RegisterOptions selects what the register is computed over.
type RegisterOptions struct {
	Month        string
	ShowZeroDays bool
	Statuses     []string
}

// Column describes one register table column for rendering and export.
type Column struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Type  ColumnType `json:"type"`
}

// Row maps column keys to cell values.
type Row map[string]any

// ReportTable is the presentation-ready register: ordered columns, one row
// per day, and a trailing totals row.
type ReportTable struct {
	Month     string   `json:"month"`
	Columns   []Column `json:"columns"`
	Rows      []Row    `json:"rows"`
	Totals    Row      `json:"totals"`
	FileBase  string   `json:"file_base"`
	SheetName string   `json:"sheet_name"`
}
