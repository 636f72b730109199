// Package mailer delivers outgoing notification mail over SMTP.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/mail.v2"
)

var ErrNoRecipients = errors.New("no recipients")

type Message struct {
	To      []string
	ReplyTo string
	Subject string
	// HTML is optional. When Text is empty it is derived from HTML.
	HTML string
	Text string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

type SMTPMailer struct {
	log    *slog.Logger
	cfg    Config
	dialer *mail.Dialer
	strip  *bluemonday.Policy
}

func NewSMTPMailer(log *slog.Logger, cfg Config) *SMTPMailer {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if cfg.Timeout > 0 {
		d.Timeout = cfg.Timeout
	}

	return &SMTPMailer{
		log:    log,
		cfg:    cfg,
		dialer: d,
		strip:  bluemonday.StrictPolicy(),
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	const op = "mailer.SMTPMailer.Send"

	if len(msg.To) == 0 {
		return fmt.Errorf("%s: %w", op, ErrNoRecipients)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	gm := mail.NewMessage()
	gm.SetHeader("From", m.cfg.From)
	gm.SetHeader("To", msg.To...)
	gm.SetHeader("Subject", msg.Subject)
	if msg.ReplyTo != "" {
		gm.SetHeader("Reply-To", msg.ReplyTo)
	}

	gm.SetBody("text/plain", PlainText(m.strip, msg))
	if msg.HTML != "" {
		gm.AddAlternative("text/html", msg.HTML)
	}

	if err := m.dialer.DialAndSend(gm); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m.log.Debug("mail sent", slog.String("op", op), slog.String("subject", msg.Subject))

	return nil
}

// PlainText returns msg.Text, or msg.HTML with every tag removed.
func PlainText(p *bluemonday.Policy, msg Message) string {
	if msg.Text != "" {
		return msg.Text
	}

	return strings.TrimSpace(html.UnescapeString(p.Sanitize(msg.HTML)))
}

// LogMailer only logs messages. It is used when outgoing mail is disabled.
type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (l *LogMailer) Send(_ context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("mailer.LogMailer.Send: %w", ErrNoRecipients)
	}

	l.log.Info("mail delivery disabled, message dropped",
		slog.String("subject", msg.Subject),
		slog.Int("recipients", len(msg.To)),
	)

	return nil
}
