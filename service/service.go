package service

import (
	"context"
	"net/http"

	"gigs/config"
	"gigs/db"
	gigsHttp "gigs/http"
	"gigs/message"
	"gigs/message/event"
	"gigs/notification"
	"gigs/queue"
	"gigs/validation"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	watermillMessage "github.com/ThreeDotsLabs/watermill/message"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func init() {
	log.Init(logrus.InfoLevel)
}

const notificationStream = "queue:notifications"
const notificationGroup = "notifications-worker"

type Service struct {
	watermillRouter    *watermillMessage.Router
	echoRouter         *echo.Echo
	notificationWorker notification.Consumer
	httpAddr           string
}

func New(
	cfg config.Config,
	redisClient *redis.Client,
	mailSender notification.MailSender,
	conn db.DB,
) Service {
	watermillLogger := log.NewWatermill(log.FromContext(context.Background()))

	var redisPublisher watermillMessage.Publisher
	redisPublisher = message.NewRedisPublisher(redisClient, watermillLogger)
	redisPublisher = log.CorrelationPublisherDecorator{Publisher: redisPublisher}

	eventBus := event.NewBus(redisPublisher)

	ticketRepo := db.NewTicketRepo(&conn)
	gigRepo := db.NewGigRepository(redisClient)

	notificationQueue := queue.NewClient(redisClient, queue.Config{
		Stream:            notificationStream,
		Group:             notificationGroup,
		VisibilityTimeout: cfg.QueueVisibilityTimeout,
		PollBlock:         cfg.QueuePollBlock,
	})

	eventsHandler := event.NewHandler(ticketRepo)
	eventProcessorConfig := event.NewProcessorConfig(redisClient, watermillLogger)

	fanoutSubscriber := message.NewRedisSubscriber(redisClient, "notifications-fanout", watermillLogger)
	watermillRouter := message.NewWatermillRouter(
		fanoutSubscriber,
		notificationQueue,
		eventProcessorConfig,
		eventsHandler,
		watermillLogger,
	)

	notificationWorker := notification.NewConsumer(notificationQueue, mailSender, cfg.MailSender)

	echoRouter := gigsHttp.NewHttpRouter(
		eventBus,
		gigRepo,
		ticketRepo,
		validation.NewValidator(cfg.CardExpiryYearMin, cfg.CardExpiryYearMax),
	)

	return Service{
		watermillRouter:    watermillRouter,
		echoRouter:         echoRouter,
		notificationWorker: notificationWorker,
		httpAddr:           cfg.HTTPAddr,
	}
}

func (s Service) Run(
	ctx context.Context,
) error {
	errgrp, ctx := errgroup.WithContext(ctx)

	errgrp.Go(func() error {
		return s.watermillRouter.Run(ctx)
	})

	errgrp.Go(func() error {
		<-s.watermillRouter.Running()
		return s.notificationWorker.Run(ctx)
	})

	errgrp.Go(func() error {
		// we don't want to start HTTP server before Watermill router (so service won't be healthy before it's ready)
		<-s.watermillRouter.Running()

		err := s.echoRouter.Start(s.httpAddr)

		if err != nil && err != http.ErrServerClosed {
			return err
		}

		return nil
	})

	errgrp.Go(func() error {
		<-ctx.Done()
		return s.echoRouter.Shutdown(context.Background())
	})

	return errgrp.Wait()
}
