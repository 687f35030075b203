package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"corrispettivi/internal/service"
)

// MockSettingsService is a mock implementation of service.SettingsService.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Statuses(ctx context.Context) (*service.StatusSelection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StatusSelection), args.Error(1)
}

func (m *MockSettingsService) SaveStatuses(ctx context.Context, requested []string) (*service.StatusSelection, error) {
	args := m.Called(ctx, requested)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StatusSelection), args.Error(1)
}

func (m *MockSettingsService) NoticeDismissed(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockSettingsService) DismissNotice(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSettingsService) DismissNonce() string {
	args := m.Called()
	return args.String(0)
}
