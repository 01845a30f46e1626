package tests

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"gigs/api"
	"gigs/config"
	"gigs/db"
	"gigs/entities"
	"gigs/message"
	"gigs/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purchaseRequest struct {
	Gig                string `json:"gig"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	CardNumber         string `json:"cardNumber"`
	CardExpiryMonth    int    `json:"cardExpiryMonth"`
	CardExpiryYear     int    `json:"cardExpiryYear"`
	CardCVC            string `json:"cardCVC"`
	DisclaimerAccepted bool   `json:"disclaimerAccepted"`
}

func TestComponent(t *testing.T) {
	if os.Getenv("REDIS_ADDR") == "" || os.Getenv("POSTGRES_URL") == "" {
		t.Skip("REDIS_ADDR and POSTGRES_URL are required")
	}

	conn, err := db.NewDBConn(os.Getenv("POSTGRES_URL"))
	require.NoError(t, err)
	defer conn.Close()
	conn.MigrateSchema()

	redisClient := message.NewRedisClient(os.Getenv("REDIS_ADDR"))
	defer redisClient.Close()

	mailService := &api.MailMock{}

	cfg := config.Config{
		HTTPAddr:               ":8080",
		MailSender:             "tickets@gigs.example.com",
		CardExpiryYearMin:      2020,
		CardExpiryYearMax:      2045,
		QueueVisibilityTimeout: 5 * time.Second,
		QueuePollBlock:         100 * time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		svc := service.New(cfg, redisClient, mailService, conn)
		assert.NoError(t, svc.Run(ctx))
	}()
	waitForHttpServer(t)

	gig := entities.Gig{
		GigID:           "blur-hyde-park",
		Band:            "Blur",
		City:            "London",
		Date:            "2026-07-02",
		CollectionPoint: "Hyde Park north gate",
		CollectionTime:  "17:00",
	}
	resp := postJSON(t, "/gigs", gig)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	buyerEmail := uuid.NewString() + "@example.com"
	resp = postJSON(t, "/purchases", purchaseRequest{
		Gig:                gig.GigID,
		Name:               "Alice",
		Email:              buyerEmail,
		CardNumber:         "4242424242424242",
		CardExpiryMonth:    6,
		CardExpiryYear:     2024,
		CardCVC:            "123",
		DisclaimerAccepted: true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var purchase struct {
		TicketID string `json:"ticket_id"`
	}
	decodeBody(t, resp, &purchase)
	require.NotEmpty(t, purchase.TicketID)

	assertConfirmationSent(t, mailService, buyerEmail, purchase.TicketID)
	assertTicketStored(t, purchase.TicketID)

	// unknown gig: a client error with the non-validation shape
	resp = postJSON(t, "/purchases", purchaseRequest{
		Gig:                "no-such-gig",
		Name:               "Alice",
		Email:              buyerEmail,
		CardNumber:         "4242424242424242",
		CardExpiryMonth:    6,
		CardExpiryYear:     2024,
		CardCVC:            "123",
		DisclaimerAccepted: true,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errBody map[string]any
	decodeBody(t, resp, &errBody)
	assert.Contains(t, errBody, "error")
	assert.NotContains(t, errBody, "errors")
}

func assertConfirmationSent(t *testing.T, mailService *api.MailMock, buyerEmail, ticketID string) {
	assert.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			for _, sent := range mailService.Sent() {
				if sent.To != buyerEmail {
					continue
				}

				assert.Contains(t, sent.Subject, "Blur")
				assert.Contains(t, sent.Subject, "London")
				assert.Contains(t, sent.Body, ticketID)
				return
			}
			assert.Fail(t, "no confirmation sent to "+buyerEmail)
		},
		10*time.Second,
		100*time.Millisecond,
	)
}

func assertTicketStored(t *testing.T, ticketID string) {
	assert.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			resp, err := http.Get(baseURL + "/tickets")
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			var tickets []entities.Ticket
			if !assert.NoError(t, decodeJSON(resp, &tickets)) {
				return
			}

			ids := make([]string, 0, len(tickets))
			for _, ticket := range tickets {
				ids = append(ids, ticket.TicketID)
			}
			assert.Contains(t, ids, ticketID)
		},
		10*time.Second,
		100*time.Millisecond,
	)
}
