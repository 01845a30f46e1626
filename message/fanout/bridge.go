package fanout

import (
	"context"
	"fmt"

	"gigs/queue"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/sirupsen/logrus"
)

type Queue interface {
	Enqueue(ctx context.Context, envelope queue.Envelope) error
}

// AddBridge subscribes a handler to a fan-out topic and forwards every
// message onto a work queue, wrapped in a transport envelope. Each bridge
// has its own consumer group on the topic, so adding another queue never
// steals messages from this one. A failed enqueue nacks the message and the
// topic redelivers it.
func AddBridge(router *message.Router, sub message.Subscriber, q Queue, topic string, handlerName string) {
	router.AddNoPublisherHandler(
		handlerName,
		topic,
		sub,
		func(msg *message.Message) error {
			envelope := queue.NewEnvelope(msg.UUID, topic, msg.Payload)

			if err := q.Enqueue(msg.Context(), envelope); err != nil {
				return fmt.Errorf("could not forward message to work queue: %w", err)
			}

			log.FromContext(msg.Context()).WithFields(logrus.Fields{
				"message_id": msg.UUID,
				"topic":      topic,
			}).Info("Forwarded message to work queue")

			return nil
		},
	)
}
