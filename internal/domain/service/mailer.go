package service

import "context"

// Mailer delivers outbound notification mail. The reset flow treats delivery
// as best-effort: failures are logged, never surfaced to the caller.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
