package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"corrispettivi/internal/domain"
)

// MockInvoiceSource is a mock implementation of port.InvoiceSource.
type MockInvoiceSource struct {
	mock.Mock
}

func (m *MockInvoiceSource) NumberingManaged(ctx context.Context, kind domain.DocumentKind) (bool, error) {
	args := m.Called(ctx, kind)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceSource) Generated(ctx context.Context, orderID int64, kind domain.DocumentKind) (*domain.GeneratedDocument, error) {
	args := m.Called(ctx, orderID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedDocument), args.Error(1)
}
