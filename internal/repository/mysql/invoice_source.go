package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/elliotchance/phpserialize"
	"github.com/jmoiron/sqlx"

	"corrispettivi/internal/domain"
	"corrispettivi/internal/port"
)

type invoiceSource struct {
	db     *sqlx.DB
	prefix string
}

// NewInvoiceSource creates a MySQL-backed InvoiceSource reading the
// invoicing plugin's options and per-order metadata.
func NewInvoiceSource(db *sqlx.DB, tablePrefix string) port.InvoiceSource {
	return &invoiceSource{db: db, prefix: tablePrefix}
}

func settingsOption(kind domain.DocumentKind) string {
	return "wcpdf_IT_settings_" + string(kind)
}

func numberMetaKey(kind domain.DocumentKind) string {
	return "_wcpdf_IT_" + string(kind) + "_number"
}

func dateMetaKey(kind domain.DocumentKind) string {
	return "_wcpdf_IT_" + string(kind) + "_date"
}

// NumberingManaged reads the plugin settings blob for the kind and reports
// whether the plugin owns the numbering sequence.
func (s *invoiceSource) NumberingManaged(ctx context.Context, kind domain.DocumentKind) (bool, error) {
	var raw string
	query := fmt.Sprintf(
		`SELECT option_value FROM %soptions WHERE option_name = ?`, s.prefix)
	err := s.db.GetContext(ctx, &raw, query, settingsOption(kind))
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("invoiceSource.NumberingManaged %s: %w", kind, err)
	}

	var decoded map[interface{}]interface{}
	if err := phpserialize.Unmarshal([]byte(raw), &decoded); err != nil {
		return false, nil
	}
	managed, _ := decoded["manage_numbering"].(string)
	return managed == "yes", nil
}

// Generated returns the document the plugin already produced for the order,
// or nil when no number is recorded.
func (s *invoiceSource) Generated(ctx context.Context, orderID int64, kind domain.DocumentKind) (*domain.GeneratedDocument, error) {
	var rows []metaRow
	query := fmt.Sprintf(
		`SELECT order_id, meta_key, COALESCE(meta_value, '') AS meta_value
		 FROM %swc_orders_meta
		 WHERE order_id = ? AND meta_key IN (?, ?)`, s.prefix)
	if err := s.db.SelectContext(ctx, &rows, query, orderID, numberMetaKey(kind), dateMetaKey(kind)); err != nil {
		return nil, fmt.Errorf("invoiceSource.Generated order %d: %w", orderID, err)
	}

	doc := &domain.GeneratedDocument{}
	for _, row := range rows {
		switch row.Key {
		case numberMetaKey(kind):
			doc.NumberFormatted = row.Value
		case dateMetaKey(kind):
			doc.RawDate = row.Value
			if t, err := time.Parse("2006-01-02 15:04:05", row.Value); err == nil {
				doc.Date = t
			}
		}
	}
	if doc.NumberFormatted == "" {
		return nil, nil
	}
	return doc, nil
}
