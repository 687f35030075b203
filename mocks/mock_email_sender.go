package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"corrispettivi/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendRegisterEmail(ctx context.Context, toEmail, month string, attachment port.Attachment) error {
	args := m.Called(ctx, toEmail, month, attachment)
	return args.Error(0)
}
