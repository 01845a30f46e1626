package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v3"
	"github.com/redis/go-redis/v9"
)

const bodyField = "body"

// Delivery is one polled message. Handle is the opaque token the queue wants
// back to acknowledge the message; until that happens the message stays
// pending and becomes claimable again once the visibility timeout passes.
type Delivery struct {
	Handle string
	Body   []byte
}

type Config struct {
	Stream string
	Group  string

	// VisibilityTimeout is the minimum idle time before an unacknowledged
	// delivery may be claimed by another consumer.
	VisibilityTimeout time.Duration

	// PollBlock caps how long a poll waits for a new message.
	PollBlock time.Duration
}

// Client is a work-queue endpoint on a Redis Stream consumer group:
// at-least-once delivery, one message per poll, acknowledgement by handle.
type Client struct {
	rdb      *redis.Client
	config   Config
	consumer string
}

func NewClient(rdb *redis.Client, config Config) *Client {
	if rdb == nil {
		panic("redis client is nil")
	}
	if config.Stream == "" || config.Group == "" {
		panic("queue stream and group are required")
	}

	err := rdb.XGroupCreateMkStream(context.Background(), config.Stream, config.Group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		panic(fmt.Errorf("could not create consumer group %s: %w", config.Group, err))
	}

	return &Client{
		rdb:      rdb,
		config:   config,
		consumer: config.Group + "-" + shortuuid.New(),
	}
}

func (c *Client) Enqueue(ctx context.Context, envelope Envelope) error {
	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("could not marshal envelope: %w", err)
	}

	err = c.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: c.config.Stream,
		Values: map[string]any{bodyField: body},
	}).Err()
	if err != nil {
		return fmt.Errorf("could not enqueue message on %s: %w", c.config.Stream, err)
	}

	return nil
}

// Poll returns at most one message, or nil when the queue is empty. Messages
// another consumer polled but never acknowledged are picked up first, once
// their visibility timeout has passed.
func (c *Client) Poll(ctx context.Context) (*Delivery, error) {
	claimed, _, err := c.rdb.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   c.config.Stream,
		Group:    c.config.Group,
		Consumer: c.consumer,
		MinIdle:  c.config.VisibilityTimeout,
		Start:    "0-0",
		Count:    1,
	}).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("could not claim pending messages on %s: %w", c.config.Stream, err)
	}
	if len(claimed) > 0 {
		return deliveryFrom(claimed[0])
	}

	streams, err := c.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.config.Group,
		Consumer: c.consumer,
		Streams:  []string{c.config.Stream, ">"},
		Count:    1,
		Block:    c.config.PollBlock,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not poll %s: %w", c.config.Stream, err)
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return nil, nil
	}

	return deliveryFrom(streams[0].Messages[0])
}

// Ack removes a delivery from the pending list. Past this point the message
// will never be delivered again.
func (c *Client) Ack(ctx context.Context, handle string) error {
	err := c.rdb.XAck(ctx, c.config.Stream, c.config.Group, handle).Err()
	if err != nil {
		return fmt.Errorf("could not ack message %s: %w", handle, err)
	}

	return nil
}

func deliveryFrom(msg redis.XMessage) (*Delivery, error) {
	body, ok := msg.Values[bodyField].(string)
	if !ok {
		return nil, fmt.Errorf("message %s has no %s field", msg.ID, bodyField)
	}

	return &Delivery{
		Handle: msg.ID,
		Body:   []byte(body),
	}, nil
}
