package mailer

import (
	"context"
	"log/slog"
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	p := bluemonday.StrictPolicy()

	assert.Equal(t, "given text", PlainText(p, Message{Text: "given text", HTML: "<b>ignored</b>"}))
	assert.Equal(t, "Hello Tom & Jerry", PlainText(p, Message{HTML: "<p>Hello <b>Tom &amp; Jerry</b></p>"}))
	assert.Equal(t, "", PlainText(p, Message{}))
}

func TestLogMailer(t *testing.T) {
	m := NewLogMailer(slog.Default())

	assert.NoError(t, m.Send(context.Background(), Message{To: []string{"a@example.com"}, Subject: "hi"}))
	assert.ErrorIs(t, m.Send(context.Background(), Message{Subject: "hi"}), ErrNoRecipients)
}

func TestSMTPMailer_NoRecipients(t *testing.T) {
	m := NewSMTPMailer(slog.Default(), Config{Host: "localhost", Port: 1025, From: "noreply@example.com"})

	err := m.Send(context.Background(), Message{Subject: "hi", Text: "body"})
	assert.ErrorIs(t, err, ErrNoRecipients)
}
