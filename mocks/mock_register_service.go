package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"corrispettivi/internal/domain"
)

// MockRegisterService is a mock implementation of service.RegisterService.
type MockRegisterService struct {
	mock.Mock
}

func (m *MockRegisterService) Compute(ctx context.Context, opts domain.RegisterOptions) (*domain.ReportTable, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportTable), args.Error(1)
}

func (m *MockRegisterService) Months(ctx context.Context) ([]domain.MonthOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthOption), args.Error(1)
}
