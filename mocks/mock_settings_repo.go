package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSettingsRepo is a mock implementation of port.SettingsRepository.
type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) SelectedStatuses(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSettingsRepo) SaveSelectedStatuses(ctx context.Context, statuses []string) error {
	args := m.Called(ctx, statuses)
	return args.Error(0)
}

func (m *MockSettingsRepo) NoticeDismissed(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockSettingsRepo) DismissNotice(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
