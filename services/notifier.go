package services

import (
	"context"
	"fmt"
	"html"
	"inspection-app/config"
	"time"

	"gopkg.in/gomail.v2"
)

type VerificationEvent struct {
	CallNo     string
	Entity     string
	VerifiedBy string
	VerifiedAt time.Time
	Records    int
}

type Notifier interface {
	NotifyVerified(ctx context.Context, event VerificationEvent) error
}

// NewNotifier returns a mail notifier, or a no-op one when SMTP is not
// configured.
func NewNotifier(cfg config.Config) Notifier {
	if cfg.SMTPHost == "" || len(cfg.NotifyTo) == 0 {
		return noopNotifier{}
	}
	return &MailNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
		to:     cfg.NotifyTo,
	}
}

type noopNotifier struct{}

func (noopNotifier) NotifyVerified(context.Context, VerificationEvent) error {
	return nil
}

type MailNotifier struct {
	dialer *gomail.Dialer
	from   string
	to     []string
}

func (n *MailNotifier) buildMessage(event VerificationEvent) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to...)
	m.SetHeader("Subject", fmt.Sprintf("Inspection call %s: %s verified", event.CallNo, event.Entity))
	m.SetBody("text/html", fmt.Sprintf(
		"<p>%s of inspection call <b>%s</b> verified by %s at %s.</p><p>Records: %d</p>",
		html.EscapeString(event.Entity),
		html.EscapeString(event.CallNo),
		html.EscapeString(event.VerifiedBy),
		event.VerifiedAt.Format(time.RFC3339),
		event.Records,
	))
	return m
}

func (n *MailNotifier) NotifyVerified(ctx context.Context, event VerificationEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return n.dialer.DialAndSend(n.buildMessage(event))
}
