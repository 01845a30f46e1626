package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	PostgresURL string `env:"POSTGRES_URL,required"`

	MailGatewayAddr string `env:"MAIL_GATEWAY_ADDR,required"`
	MailSender      string `env:"MAIL_SENDER" envDefault:"tickets@gigs.example.com"`

	CardExpiryYearMin int `env:"CARD_EXPIRY_YEAR_MIN" envDefault:"2020"`
	CardExpiryYearMax int `env:"CARD_EXPIRY_YEAR_MAX" envDefault:"2045"`

	// QueueVisibilityTimeout is how long a polled-but-unacknowledged
	// notification stays hidden before another consumer may claim it.
	QueueVisibilityTimeout time.Duration `env:"QUEUE_VISIBILITY_TIMEOUT" envDefault:"30s"`
	QueuePollBlock         time.Duration `env:"QUEUE_POLL_BLOCK" envDefault:"5s"`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}
