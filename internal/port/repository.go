package port

import (
	"context"

	"corrispettivi/internal/domain"
)

// OrderRepository defines the contract for reading store orders.
type OrderRepository interface {
	// ListByMonth returns the orders paid within the month (inclusive of
	// their refunds), restricted to the given statuses.
	ListByMonth(ctx context.Context, month string, statuses []string) ([]*domain.Order, error)
	// AvailableMonths returns the distinct year/month pairs with at least
	// one order in the given statuses, newest first.
	AvailableMonths(ctx context.Context, statuses []string) ([]domain.MonthOption, error)
}

// TaxRepository defines the contract for reading the store tax setup.
type TaxRepository interface {
	// Snapshot loads the tax rate table and the store tax settings in one
	// consistent read.
	Snapshot(ctx context.Context) (*domain.TaxTable, error)
}

// SettingsRepository defines the contract for plugin settings persistence.
type SettingsRepository interface {
	SelectedStatuses(ctx context.Context) ([]string, error)
	SaveSelectedStatuses(ctx context.Context, statuses []string) error
	NoticeDismissed(ctx context.Context) (bool, error)
	DismissNotice(ctx context.Context) error
}

// InvoiceSource defines the contract for reading invoicing plugin data.
type InvoiceSource interface {
	// NumberingManaged reports whether the invoicing plugin owns the
	// numbering sequence for the given document kind.
	NumberingManaged(ctx context.Context, kind domain.DocumentKind) (bool, error)
	// Generated returns the document the invoicing plugin produced for
	// the given order, or nil when none exists.
	Generated(ctx context.Context, orderID int64, kind domain.DocumentKind) (*domain.GeneratedDocument, error)
}
