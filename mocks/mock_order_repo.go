package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"corrispettivi/internal/domain"
)

// MockOrderRepo is a mock implementation of port.OrderRepository.
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) ListByMonth(ctx context.Context, month string, statuses []string) ([]*domain.Order, error) {
	args := m.Called(ctx, month, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockOrderRepo) AvailableMonths(ctx context.Context, statuses []string) ([]domain.MonthOption, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthOption), args.Error(1)
}
