package message

import (
	"gigs/entities"
	"gigs/message/event"
	"gigs/message/fanout"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
)

func NewWatermillRouter(
	fanoutSubscriber message.Subscriber,
	notificationQueue fanout.Queue,
	eventProcessorConfig cqrs.EventProcessorConfig,
	eventHandler event.Handler,
	watermillLogger watermill.LoggerAdapter,
) *message.Router {
	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		panic(err)
	}

	useMiddlewares(router, watermillLogger)

	fanout.AddBridge(
		router,
		fanoutSubscriber,
		notificationQueue,
		event.Topic(entities.TicketPurchaseConfirmed{}),
		"notifications-fanout",
	)

	eventProcessor, err := cqrs.NewEventProcessorWithConfig(router, eventProcessorConfig)
	if err != nil {
		panic(err)
	}

	err = eventProcessor.AddHandlers(
		cqrs.NewEventHandler(
			"StoreTicket",
			eventHandler.StoreTicket,
		),
	)
	if err != nil {
		panic(err)
	}

	return router
}
