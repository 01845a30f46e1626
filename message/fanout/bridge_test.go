package fanout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gigs/queue"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queueDouble struct {
	lock      sync.Mutex
	enqueued  []queue.Envelope
	failFirst bool
}

func (q *queueDouble) Enqueue(_ context.Context, envelope queue.Envelope) error {
	q.lock.Lock()
	defer q.lock.Unlock()

	if q.failFirst {
		q.failFirst = false
		return errors.New("queue unavailable")
	}

	q.enqueued = append(q.enqueued, envelope)
	return nil
}

func (q *queueDouble) Enqueued() []queue.Envelope {
	q.lock.Lock()
	defer q.lock.Unlock()

	return append([]queue.Envelope(nil), q.enqueued...)
}

func runBridge(t *testing.T, q Queue) message.Publisher {
	t.Helper()

	logger := watermill.NopLogger{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, logger)

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	require.NoError(t, err)

	AddBridge(router, pubSub, q, "events.test", "test-fanout")

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() {
		_ = router.Run(ctx)
	}()
	select {
	case <-router.Running():
	case <-time.After(5 * time.Second):
		t.Fatal("router did not start")
	}

	return pubSub
}

func TestBridgeWrapsPublishedMessages(t *testing.T) {
	q := &queueDouble{}
	pub := runBridge(t, q)

	msg := message.NewMessage("message-1", []byte(`{"ticket_id":"abc"}`))
	require.NoError(t, pub.Publish("events.test", msg))

	assert.EventuallyWithT(t, func(t *assert.CollectT) {
		enqueued := q.Enqueued()
		if !assert.Len(t, enqueued, 1) {
			return
		}

		assert.Equal(t, "message-1", enqueued[0].MessageID)
		assert.Equal(t, "events.test", enqueued[0].Topic)
		assert.JSONEq(t, `{"ticket_id":"abc"}`, string(enqueued[0].Payload))
	}, 5*time.Second, 10*time.Millisecond)
}

func TestBridgeRetriesFailedEnqueue(t *testing.T) {
	q := &queueDouble{failFirst: true}
	pub := runBridge(t, q)

	msg := message.NewMessage("message-1", []byte(`{"ticket_id":"abc"}`))
	require.NoError(t, pub.Publish("events.test", msg))

	assert.EventuallyWithT(t, func(t *assert.CollectT) {
		assert.Len(t, q.Enqueued(), 1)
	}, 5*time.Second, 10*time.Millisecond)
}
