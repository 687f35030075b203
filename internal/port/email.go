package port

import "context"

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendRegisterEmail(ctx context.Context, toEmail, month string, attachment Attachment) error
}
