package email

import (
	"context"

	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"

	"fintrack/config"
	"fintrack/internal/domain/service"
)

// smtpMailer delivers mail through a configured SMTP relay.
type smtpMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp settings must be provided")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.SMTP.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTP.Username),
		mail.WithPassword(cfg.SMTP.Password),
	}
	client, err := mail.NewClient(cfg.SMTP.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}

	return &smtpMailer{
		client: client,
		from:   cfg.SMTP.FromAddress,
	}, nil
}

// Send composes and delivers a single HTML message.
func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "set sender")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "set recipient")
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "send mail")
	}

	return nil
}
