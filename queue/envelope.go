package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Envelope is the transport wrapper the fanout bridge puts around every
// event before it lands on a work queue. Payload carries the event exactly
// as it was published to the topic; consumers unwrap this one layer before
// decoding the event itself.
type Envelope struct {
	MessageID   string          `json:"message_id"`
	Topic       string          `json:"topic"`
	PublishedAt time.Time       `json:"published_at"`
	Payload     json.RawMessage `json:"payload"`
}

func NewEnvelope(messageID, topic string, payload []byte) Envelope {
	return Envelope{
		MessageID:   messageID,
		Topic:       topic,
		PublishedAt: time.Now().UTC(),
		Payload:     payload,
	}
}

func UnwrapEnvelope(body []byte) (Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Envelope{}, fmt.Errorf("could not unwrap transport envelope: %w", err)
	}

	if len(envelope.Payload) == 0 {
		return Envelope{}, errors.New("transport envelope has no payload")
	}

	return envelope, nil
}
