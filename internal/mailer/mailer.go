// Package mailer wraps outbound email behind an EmailSender interface. The
// production sender talks to Resend; delivery is fire-and-forget from the
// request's point of view, so failures are logged and never propagated.
package mailer

import (
	"context"
	"errors"
	"sync"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// EmailSender delivers one email. Implementations must be safe for
// concurrent use.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, html string) error
}

// ResendSender delivers via the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *ResendSender) SendEmail(ctx context.Context, to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}
	_, err := s.client.Emails.SendWithContext(ctx, params)
	return err
}

// Dispatcher renders the hospital template and hands the result to a sender.
// Dispatch returns before delivery completes.
type Dispatcher struct {
	sender EmailSender
	log    zerolog.Logger
}

func NewDispatcher(sender EmailSender, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{sender: sender, log: log}
}

// Send renders and delivers synchronously. Used directly by tests and by
// Dispatch's background goroutine.
func (d *Dispatcher) Send(ctx context.Context, to, subject, message string) error {
	err := d.sender.SendEmail(ctx, to, subject, renderBody(message))
	if err != nil {
		d.log.Error().Str("to", to).Err(err).Msg("mailer: send failed")
	}
	return err
}

// Dispatch fires delivery on its own goroutine. The caller never learns about
// failures; they only reach the log.
func (d *Dispatcher) Dispatch(to, subject, message string) {
	go func() {
		_ = d.Send(context.Background(), to, subject, message)
	}()
}

// MockSender records calls for tests and can be told to fail.
type MockSender struct {
	mu         sync.Mutex
	calls      []MockCall
	ShouldFail bool
}

type MockCall struct {
	To      string
	Subject string
	HTML    string
}

func (m *MockSender) SendEmail(_ context.Context, to, subject, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MockCall{To: to, Subject: subject, HTML: html})
	if m.ShouldFail {
		return errors.New("mock send failure")
	}
	return nil
}

func (m *MockSender) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}
