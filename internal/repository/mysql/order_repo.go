package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"corrispettivi/internal/domain"
	"corrispettivi/internal/port"
)

type orderRepo struct {
	db     *sqlx.DB
	prefix string
}

// NewOrderRepo creates a MySQL-backed OrderRepository over the HPOS order
// tables.
func NewOrderRepo(db *sqlx.DB, tablePrefix string) port.OrderRepository {
	return &orderRepo{db: db, prefix: tablePrefix}
}

func (r *orderRepo) table(name string) string {
	return r.prefix + name
}

// Metadata keys read for document matching. Everything else on the order
// is ignored.
var documentMetaKeys = []string{
	"_wcpdf_IT_document_data",
	"woo_pdf_invoice_id",
	"woo_pdf_invoice_date",
	"woo_pdf_credit_note_id",
	"woo_pdf_credit_note_date",
}

type orderRow struct {
	ID          int64        `db:"id"`
	Status      string       `db:"status"`
	TotalAmount float64      `db:"total_amount"`
	CreatedAt   sql.NullTime `db:"date_created_gmt"`
}

type refundRow struct {
	ID          int64   `db:"id"`
	ParentID    int64   `db:"parent_order_id"`
	TotalAmount float64 `db:"total_amount"`
}

type addressRow struct {
	OrderID   int64  `db:"order_id"`
	Type      string `db:"address_type"`
	Country   string `db:"country"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}

type metaRow struct {
	OrderID int64  `db:"order_id"`
	Key     string `db:"meta_key"`
	Value   string `db:"meta_value"`
}

type itemMetaRow struct {
	OrderID  int64  `db:"order_id"`
	ItemID   int64  `db:"order_item_id"`
	ItemName string `db:"order_item_name"`
	ItemType string `db:"order_item_type"`
	Key      string `db:"meta_key"`
	Value    string `db:"meta_value"`
}

func (r *orderRepo) ListByMonth(ctx context.Context, month string, statuses []string) ([]*domain.Order, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	from, to := domain.MonthRange(month)

	query, args, err := sqlx.In(fmt.Sprintf(
		`SELECT id, status, total_amount, date_created_gmt
		 FROM %s
		 WHERE type = 'shop_order' AND status IN (?)
		   AND date_created_gmt >= ? AND date_created_gmt < ?
		 ORDER BY id`, r.table("wc_orders")),
		statuses, from, to)
	if err != nil {
		return nil, fmt.Errorf("orderRepo.ListByMonth query: %w", err)
	}
	var rows []orderRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("orderRepo.ListByMonth orders: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	orders := make([]*domain.Order, 0, len(rows))
	byID := make(map[int64]*domain.Order, len(rows))
	parentIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		order := &domain.Order{
			ID:          row.ID,
			Status:      row.Status,
			TotalAmount: row.TotalAmount,
			Metadata:    make(map[string]string),
		}
		if row.CreatedAt.Valid {
			order.CreatedAt = row.CreatedAt.Time.UTC()
		}
		orders = append(orders, order)
		byID[row.ID] = order
		parentIDs = append(parentIDs, row.ID)
	}

	if err := r.loadRefunds(ctx, byID, parentIDs); err != nil {
		return nil, err
	}
	if err := r.loadAddresses(ctx, byID, parentIDs); err != nil {
		return nil, err
	}

	allIDs := parentIDs
	refundsByID := make(map[int64]*domain.Refund)
	for _, order := range orders {
		for _, refund := range order.Refunds {
			allIDs = append(allIDs, refund.ID)
			refundsByID[refund.ID] = refund
		}
	}

	if err := r.loadMetadata(ctx, byID, refundsByID, allIDs); err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, byID, refundsByID, allIDs); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepo) loadRefunds(ctx context.Context, byID map[int64]*domain.Order, parentIDs []int64) error {
	query, args, err := sqlx.In(fmt.Sprintf(
		`SELECT id, parent_order_id, total_amount
		 FROM %s
		 WHERE type = 'shop_order_refund' AND parent_order_id IN (?)
		 ORDER BY id`, r.table("wc_orders")), parentIDs)
	if err != nil {
		return fmt.Errorf("orderRepo.loadRefunds query: %w", err)
	}
	var rows []refundRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return fmt.Errorf("orderRepo.loadRefunds: %w", err)
	}

	for _, row := range rows {
		parent := byID[row.ParentID]
		if parent == nil {
			continue
		}
		parent.Refunds = append(parent.Refunds, &domain.Refund{
			ID:          row.ID,
			Parent:      parent,
			TotalAmount: row.TotalAmount,
			Metadata:    make(map[string]string),
		})
	}
	return nil
}

func (r *orderRepo) loadAddresses(ctx context.Context, byID map[int64]*domain.Order, parentIDs []int64) error {
	query, args, err := sqlx.In(fmt.Sprintf(
		`SELECT order_id, address_type,
		        COALESCE(country, '') AS country,
		        COALESCE(first_name, '') AS first_name,
		        COALESCE(last_name, '') AS last_name
		 FROM %s WHERE order_id IN (?)`, r.table("wc_order_addresses")), parentIDs)
	if err != nil {
		return fmt.Errorf("orderRepo.loadAddresses query: %w", err)
	}
	var rows []addressRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return fmt.Errorf("orderRepo.loadAddresses: %w", err)
	}
	for _, row := range rows {
		order := byID[row.OrderID]
		if order == nil {
			continue
		}
		switch row.Type {
		case "billing":
			order.BillingCountry = row.Country
		case "shipping":
			order.ShippingCountry = row.Country
			order.ShippingName = joinName(row.FirstName, row.LastName)
		}
	}
	return nil
}

func (r *orderRepo) loadMetadata(ctx context.Context, byID map[int64]*domain.Order, refunds map[int64]*domain.Refund, ids []int64) error {
	query, args, err := sqlx.In(fmt.Sprintf(
		`SELECT order_id, meta_key, COALESCE(meta_value, '') AS meta_value
		 FROM %s WHERE order_id IN (?) AND meta_key IN (?)`, r.table("wc_orders_meta")),
		ids, documentMetaKeys)
	if err != nil {
		return fmt.Errorf("orderRepo.loadMetadata query: %w", err)
	}
	var rows []metaRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return fmt.Errorf("orderRepo.loadMetadata: %w", err)
	}
	for _, row := range rows {
		if row.Key == "_wcpdf_IT_document_data" {
			data := parseStoredDocumentData(row.Value)
			if order := byID[row.OrderID]; order != nil {
				order.DocData = data
			} else if refund := refunds[row.OrderID]; refund != nil {
				refund.DocData = data
			}
			continue
		}
		if order := byID[row.OrderID]; order != nil {
			order.Metadata[row.Key] = row.Value
		} else if refund := refunds[row.OrderID]; refund != nil {
			refund.Metadata[row.Key] = row.Value
		}
	}
	return nil
}

func (r *orderRepo) loadItems(ctx context.Context, byID map[int64]*domain.Order, refunds map[int64]*domain.Refund, ids []int64) error {
	query, args, err := sqlx.In(fmt.Sprintf(
		`SELECT i.order_id, i.order_item_id, i.order_item_name, i.order_item_type,
		        m.meta_key, COALESCE(m.meta_value, '') AS meta_value
		 FROM %s i
		 JOIN %s m ON m.order_item_id = i.order_item_id
		 WHERE i.order_id IN (?)
		   AND i.order_item_type IN ('line_item', 'fee', 'shipping')
		   AND m.meta_key IN ('_line_total', '_line_tax', '_tax_class', '_line_tax_data',
		                      'cost', 'total_tax', 'taxes')
		 ORDER BY i.order_id, i.order_item_id`,
		r.table("woocommerce_order_items"), r.table("woocommerce_order_itemmeta")), ids)
	if err != nil {
		return fmt.Errorf("orderRepo.loadItems query: %w", err)
	}
	var rows []itemMetaRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return fmt.Errorf("orderRepo.loadItems: %w", err)
	}

	items := make(map[int64]*domain.LineItem)
	itemOrder := make(map[int64]int64)
	var itemIDs []int64
	for _, row := range rows {
		item := items[row.ItemID]
		if item == nil {
			item = &domain.LineItem{
				ID:   row.ItemID,
				Name: row.ItemName,
				Type: itemType(row.ItemType),
			}
			items[row.ItemID] = item
			itemOrder[row.ItemID] = row.OrderID
			itemIDs = append(itemIDs, row.ItemID)
		}
		applyItemMeta(item, row.Key, row.Value)
	}

	for _, itemID := range itemIDs {
		item := items[itemID]
		orderID := itemOrder[itemID]
		if order := byID[orderID]; order != nil {
			order.Lines = append(order.Lines, *item)
		} else if refund := refunds[orderID]; refund != nil {
			refund.Lines = append(refund.Lines, *item)
		}
	}
	return nil
}

func itemType(raw string) domain.ItemType {
	switch raw {
	case "fee":
		return domain.ItemTypeFee
	case "shipping":
		return domain.ItemTypeShipping
	default:
		return domain.ItemTypeProduct
	}
}

func applyItemMeta(item *domain.LineItem, key, value string) {
	switch key {
	case "_line_total", "cost":
		item.Total = parseAmount(value)
	case "_line_tax", "total_tax":
		item.TotalTax = parseAmount(value)
	case "_tax_class":
		item.TaxClass = value
	case "_line_tax_data", "taxes":
		item.Taxes = parseTaxAmounts(value)
	}
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

func (r *orderRepo) AvailableMonths(ctx context.Context, statuses []string) ([]domain.MonthOption, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(fmt.Sprintf(
		`SELECT YEAR(date_created_gmt) AS yr, MONTH(date_created_gmt) AS mo
		 FROM %s
		 WHERE type = 'shop_order' AND status IN (?) AND date_created_gmt IS NOT NULL
		 GROUP BY yr, mo
		 ORDER BY yr DESC, mo DESC`, r.table("wc_orders")), statuses)
	if err != nil {
		return nil, fmt.Errorf("orderRepo.AvailableMonths query: %w", err)
	}
	var months []domain.MonthOption
	if err := r.db.SelectContext(ctx, &months, query, args...); err != nil {
		return nil, fmt.Errorf("orderRepo.AvailableMonths: %w", err)
	}
	return months, nil
}
