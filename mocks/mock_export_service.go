package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"corrispettivi/internal/domain"
	"corrispettivi/internal/service"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, opts domain.RegisterOptions, format string) (*service.ExportFile, error) {
	args := m.Called(ctx, opts, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}

func (m *MockExportService) Archive(ctx context.Context, opts domain.RegisterOptions) (*service.ArchiveResult, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ArchiveResult), args.Error(1)
}

func (m *MockExportService) Email(ctx context.Context, opts domain.RegisterOptions, toEmail string) error {
	args := m.Called(ctx, opts, toEmail)
	return args.Error(0)
}
