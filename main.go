package main

import (
	"context"
	"os"
	"os/signal"

	"gigs/api"
	"gigs/config"
	"gigs/db"
	"gigs/message"
	"gigs/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	conn, err := db.NewDBConn(cfg.PostgresURL)
	if err != nil {
		panic(err)
	}
	defer conn.Close()
	conn.MigrateSchema()

	redisClient := message.NewRedisClient(cfg.RedisAddr)
	defer redisClient.Close()

	mailClient := api.NewMailClient(cfg.MailGatewayAddr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	svc := service.New(cfg, redisClient, mailClient, conn)
	if err := svc.Run(ctx); err != nil {
		panic(err)
	}
}
