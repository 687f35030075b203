package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"corrispettivi/internal/domain"
)

// MockTaxRepo is a mock implementation of port.TaxRepository.
type MockTaxRepo struct {
	mock.Mock
}

func (m *MockTaxRepo) Snapshot(ctx context.Context) (*domain.TaxTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxTable), args.Error(1)
}
