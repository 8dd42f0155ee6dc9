package notify

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/kazukazukun/building-controller/internal/logger"
)

// ErrNoRecipient is returned when a mail has no address.
var ErrNoRecipient = errors.New("mail has no recipient")

// Mail is one sent message.
type Mail struct {
	Address string
	Subject string
	Body    string
	SentAt  time.Time
}

// Outbox is an email service that writes mail to the structured log.
type Outbox struct {
	sent []Mail
	mu   sync.Mutex
}

// NewOutbox creates an empty outbox.
func NewOutbox() *Outbox {
	return new(Outbox)
}

// SendMail records the message and logs it at warn level, since mail is
// only sent for problems.
func (o *Outbox) SendMail(ctx context.Context, address, subject, body string) error {
	if address == "" {
		return ErrNoRecipient
	}

	o.mu.Lock()
	o.sent = append(o.sent, Mail{
		Address: address,
		Subject: subject,
		Body:    body,
		SentAt:  time.Now(),
	})
	o.mu.Unlock()

	logger.WarnKV(logger.WithName(ctx, "mail"), "Mail sent", "address", address, "subject", subject, "body", body)

	return nil
}

// Sent returns a copy of the sent mail in send order.
func (o *Outbox) Sent() []Mail {
	o.mu.Lock()
	defer o.mu.Unlock()

	return slices.Clone(o.sent)
}
