package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"gigs/entities"
	"gigs/queue"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

type Queue interface {
	Poll(ctx context.Context) (*queue.Delivery, error)
	Ack(ctx context.Context, handle string) error
}

type MailSender interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// Consumer drains the notification queue. Each ProcessOne call handles at
// most one message: poll, unwrap the transport envelope, decode the event,
// render, hand off to the mail transport, then acknowledge. Acknowledgement
// strictly follows a successful handoff; any earlier failure leaves the
// message pending so the queue redelivers it after the visibility timeout.
type Consumer struct {
	queue  Queue
	mail   MailSender
	sender string
}

func NewConsumer(q Queue, mail MailSender, sender string) Consumer {
	if q == nil {
		panic("missing queue")
	}
	if mail == nil {
		panic("missing mail sender")
	}
	if sender == "" {
		panic("missing sender address")
	}
	return Consumer{
		queue:  q,
		mail:   mail,
		sender: sender,
	}
}

func (c Consumer) ProcessOne(ctx context.Context) error {
	delivery, err := c.queue.Poll(ctx)
	if err != nil {
		return fmt.Errorf("could not poll notification queue: %w", err)
	}
	if delivery == nil {
		return nil
	}

	envelope, err := queue.UnwrapEnvelope(delivery.Body)
	if err != nil {
		return err
	}

	var event entities.TicketPurchaseConfirmed
	if err := json.Unmarshal(envelope.Payload, &event); err != nil {
		return fmt.Errorf("could not decode purchase event: %w", err)
	}

	subject, body := Render(event)

	if err := c.mail.Send(ctx, c.sender, event.Ticket.Email, subject, body); err != nil {
		return fmt.Errorf("could not send confirmation for ticket %s: %w", event.Ticket.TicketID, err)
	}

	// The mail is handed off at this point. If the ack fails the message
	// comes back and the recipient gets the confirmation twice; that is the
	// accepted cost of at-least-once delivery.
	if err := c.queue.Ack(ctx, delivery.Handle); err != nil {
		return fmt.Errorf("confirmation sent but message %s not acknowledged: %w", envelope.MessageID, err)
	}

	log.FromContext(ctx).
		WithField("ticket_id", event.Ticket.TicketID).
		Info("Confirmation email sent")

	return nil
}

// Run polls until the context is cancelled. Failed iterations are logged
// and the message in question is left for redelivery.
func (c Consumer) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		if err := c.ProcessOne(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.FromContext(ctx).WithError(err).Error("Failed to process notification")
		}
	}
}
