package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"corrispettivi/internal/domain"
	"corrispettivi/internal/port"
)

type taxRepo struct {
	db     *sqlx.DB
	prefix string
}

// NewTaxRepo creates a MySQL-backed TaxRepository over the store tax-rate
// table and options.
func NewTaxRepo(db *sqlx.DB, tablePrefix string) port.TaxRepository {
	return &taxRepo{db: db, prefix: tablePrefix}
}

type taxRateRow struct {
	ID      int64   `db:"tax_rate_id"`
	Country string  `db:"tax_rate_country"`
	Class   string  `db:"tax_rate_class"`
	Percent float64 `db:"tax_rate"`
}

func (r *taxRepo) Snapshot(ctx context.Context) (*domain.TaxTable, error) {
	calcTaxes, err := r.option(ctx, "woocommerce_calc_taxes")
	if err != nil {
		return nil, err
	}
	basedOn, err := r.option(ctx, "woocommerce_tax_based_on")
	if err != nil {
		return nil, err
	}

	table := &domain.TaxTable{
		Enabled: calcTaxes == "yes",
		BasedOn: basedOn,
	}
	if !table.Enabled {
		return table, nil
	}

	var rows []taxRateRow
	query := fmt.Sprintf(
		`SELECT tax_rate_id, tax_rate_country, tax_rate_class, tax_rate
		 FROM %swoocommerce_tax_rates
		 ORDER BY tax_rate_order, tax_rate_id`, r.prefix)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("taxRepo.Snapshot rates: %w", err)
	}

	table.Percents = make(map[int64]float64, len(rows))
	table.Rates = make([]domain.TaxRate, 0, len(rows))
	for _, row := range rows {
		table.Percents[row.ID] = row.Percent
		table.Rates = append(table.Rates, domain.TaxRate{
			ID:      row.ID,
			Country: row.Country,
			Class:   row.Class,
			Percent: row.Percent,
		})
	}
	return table, nil
}

func (r *taxRepo) option(ctx context.Context, name string) (string, error) {
	var value string
	query := fmt.Sprintf(
		`SELECT option_value FROM %soptions WHERE option_name = ?`, r.prefix)
	err := r.db.GetContext(ctx, &value, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("taxRepo.option %s: %w", name, err)
	}
	return value, nil
}
