package api

import (
	"context"
	"sync"
)

type MailMock struct {
	lock sync.Mutex

	sent []MailMessage

	// FailWith makes every Send fail until it is cleared again.
	FailWith error
}

func (m *MailMock) Send(ctx context.Context, from, to, subject, body string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.FailWith != nil {
		return m.FailWith
	}

	m.sent = append(m.sent, MailMessage{
		From:    from,
		To:      to,
		Subject: subject,
		Body:    body,
	})
	return nil
}

func (m *MailMock) SetFailWith(err error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.FailWith = err
}

func (m *MailMock) Sent() []MailMessage {
	m.lock.Lock()
	defer m.lock.Unlock()

	return append([]MailMessage(nil), m.sent...)
}
