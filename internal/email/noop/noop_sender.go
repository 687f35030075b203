package noop

import (
	"context"
	"log"

	"corrispettivi/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that only logs deliveries.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendRegisterEmail(_ context.Context, toEmail, month string, attachment port.Attachment) error {
	log.Printf("[NOOP EMAIL] Register %s for %s (%s, %d bytes)",
		month, toEmail, attachment.Filename, len(attachment.Data))
	return nil
}
