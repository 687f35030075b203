package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"corrispettivi/internal/domain"
	"corrispettivi/internal/port"
	"corrispettivi/internal/register"
)

// RegisterService computes the daily payments register.
type RegisterService interface {
	Compute(ctx context.Context, opts domain.RegisterOptions) (*domain.ReportTable, error)
	Months(ctx context.Context) ([]domain.MonthOption, error)
}

type registerService struct {
	orders   port.OrderRepository
	taxes    port.TaxRepository
	settings port.SettingsRepository
	invoices port.InvoiceSource
	labels   register.Labels
	months   *gocache.Cache
	now      func() time.Time
}

// NewRegisterService creates a new RegisterService implementation. The
// month list is cached for monthCacheTTL per status set; concurrent
// refreshes are last-writer-wins, which is acceptable for a selector.
func NewRegisterService(
	orders port.OrderRepository,
	taxes port.TaxRepository,
	settings port.SettingsRepository,
	invoices port.InvoiceSource,
	labels register.Labels,
	monthCacheTTL time.Duration,
) RegisterService {
	if monthCacheTTL <= 0 {
		monthCacheTTL = 5 * time.Minute
	}
	return &registerService{
		orders:   orders,
		taxes:    taxes,
		settings: settings,
		invoices: invoices,
		labels:   labels,
		months:   gocache.New(monthCacheTTL, 2*monthCacheTTL),
		now:      time.Now,
	}
}

func (s *registerService) Compute(ctx context.Context, opts domain.RegisterOptions) (*domain.ReportTable, error) {
	month := domain.SanitizeMonth(opts.Month, s.now())

	statuses, err := s.resolveStatuses(ctx, opts.Statuses)
	if err != nil {
		return nil, err
	}

	tax, err := s.taxes.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("register.Compute tax snapshot: %w", err)
	}
	orders, err := s.orders.ListByMonth(ctx, month, statuses)
	if err != nil {
		return nil, fmt.Errorf("register.Compute orders: %w", err)
	}

	invoiceManaged, err := s.invoices.NumberingManaged(ctx, domain.KindInvoice)
	if err != nil {
		return nil, fmt.Errorf("register.Compute numbering: %w", err)
	}
	creditManaged, err := s.invoices.NumberingManaged(ctx, domain.KindCreditNote)
	if err != nil {
		return nil, fmt.Errorf("register.Compute numbering: %w", err)
	}

	results := make([]register.OrderResult, 0, len(orders))
	for _, order := range orders {
		input, err := s.orderInput(ctx, order, invoiceManaged, creditManaged)
		if err != nil {
			return nil, err
		}
		res := register.ProcessOrder(input, tax, s.labels)
		for _, warning := range res.Warnings {
			log.Printf("[WARN] register: order %d: %s", order.ID, warning)
		}
		results = append(results, res)
	}

	return register.BuildTable(register.Rollup(month, results, opts.ShowZeroDays)), nil
}

func (s *registerService) orderInput(ctx context.Context, order *domain.Order, invoiceManaged, creditManaged bool) (register.OrderInput, error) {
	input := register.OrderInput{
		Order:   order,
		Invoice: register.DocumentMeta{NumberingManaged: invoiceManaged},
	}

	generated, err := s.invoices.Generated(ctx, order.ID, domain.KindInvoice)
	if err != nil {
		return input, fmt.Errorf("register.Compute order %d invoice: %w", order.ID, err)
	}
	input.Invoice.Generated = generated

	if len(order.Refunds) > 0 {
		input.CreditNotes = make(map[int64]register.DocumentMeta, len(order.Refunds))
		for _, refund := range order.Refunds {
			generated, err := s.invoices.Generated(ctx, refund.ID, domain.KindCreditNote)
			if err != nil {
				return input, fmt.Errorf("register.Compute refund %d credit note: %w", refund.ID, err)
			}
			input.CreditNotes[refund.ID] = register.DocumentMeta{
				Generated:        generated,
				NumberingManaged: creditManaged,
			}
		}
	}
	return input, nil
}

func (s *registerService) Months(ctx context.Context) ([]domain.MonthOption, error) {
	statuses, err := s.resolveStatuses(ctx, nil)
	if err != nil {
		return nil, err
	}

	key := strings.Join(statuses, ",")
	if cached, found := s.months.Get(key); found {
		return cached.([]domain.MonthOption), nil
	}

	months, err := s.orders.AvailableMonths(ctx, statuses)
	if err != nil {
		return nil, fmt.Errorf("register.Months: %w", err)
	}
	s.months.Set(key, months, gocache.DefaultExpiration)
	return months, nil
}

// resolveStatuses picks the status set for a request: explicit statuses win,
// otherwise the stored selection, always filtered through the allow-list.
func (s *registerService) resolveStatuses(ctx context.Context, requested []string) ([]string, error) {
	if len(requested) == 0 {
		stored, err := s.settings.SelectedStatuses(ctx)
		if err != nil {
			return nil, fmt.Errorf("register.resolveStatuses: %w", err)
		}
		requested = stored
	}
	return domain.SelectStatuses(requested, domain.DefaultAllowedStatuses), nil
}
