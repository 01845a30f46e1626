package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type MailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MailClient talks to the mail gateway. The gateway owns the SMTP details;
// this client only hands messages off and reports whether the gateway
// accepted them.
type MailClient struct {
	addr   string
	client *http.Client
}

func NewMailClient(addr string) MailClient {
	if addr == "" {
		panic("mail gateway address is empty")
	}
	return MailClient{
		addr: addr,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c MailClient) Send(ctx context.Context, from, to, subject, body string) error {
	payload, err := json.Marshal(MailMessage{
		From:    from,
		To:      to,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		return fmt.Errorf("could not marshal mail message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.addr+"/send", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("could not build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending mail %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
