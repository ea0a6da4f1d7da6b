// Package mail delivers transactional mail for the accounts service.
package mail

import (
	"context"

	"github.com/lynlab/accounts/internal/logging"
)

// Sender delivers one message to one recipient. Delivery is best-effort
// from the caller's point of view: the accounts service logs errors and
// never surfaces them.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogSender writes outgoing mail to the logger instead of delivering it.
// Used in development or when no SMTP credentials are configured.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(l logging.Logger) *LogSender {
	return &LogSender{logger: l.With("module", "mail")}
}

func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	s.logger.Info(ctx, "outgoing mail", "to", to, "subject", subject, "body", body)
	return nil
}
