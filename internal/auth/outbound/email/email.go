// Package email delivers one-time codes to account holders over email.
package email

import (
	"context"

	"github.com/Mohamedalijas/turfnation/internal/pkg/instrument"
	"github.com/Mohamedalijas/turfnation/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

// Notifier sends transactional messages through a mail provider.
type Notifier struct {
	mail mail.Mail
	ins  instrument.Instrumentation
}

// NewNotifier constructs an email-backed Notifier.
func NewNotifier(m mail.Mail, ins instrument.Instrumentation) *Notifier {
	return &Notifier{mail: m, ins: ins}
}

// Send delivers a plain-text message to a single recipient. Delivery is
// synchronous; the caller decides what a failure means for its flow.
func (n *Notifier) Send(ctx context.Context, to, subject, body string) error {
	ctx, span := n.ins.Tracer("auth.email").Start(ctx, "Send")
	defer span.End()

	err := n.mail.Send(ctx, mail.Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: body,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
