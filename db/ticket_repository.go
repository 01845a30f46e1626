package db

import (
	"context"
	"fmt"

	"gigs/entities"
)

type TicketRepository struct {
	db *DB
}

func NewTicketRepo(db *DB) TicketRepository {
	if db == nil {
		panic("db is nil")
	}
	return TicketRepository{
		db: db,
	}
}

// Create is idempotent on ticket_id: the archival consumer runs with
// at-least-once delivery, so the same event may arrive more than once.
func (tr TicketRepository) Create(ctx context.Context, ticket entities.Ticket) error {
	_, err := tr.db.Conn.NamedExecContext(
		ctx,
		`
		INSERT INTO
			tickets (ticket_id, created_at, name, email, gig_id)
		VALUES
			(:ticket_id, :created_at, :name, :email, :gig_id) ON CONFLICT DO NOTHING`,
		ticket,
	)
	if err != nil {
		return fmt.Errorf("could not save ticket: %w", err)
	}
	return nil
}

func (tr TicketRepository) Get(ctx context.Context) ([]entities.Ticket, error) {
	var tickets []entities.Ticket
	err := tr.db.Conn.SelectContext(ctx, &tickets, `
	SELECT ticket_id, created_at, name, email, gig_id
	FROM tickets
	ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("could not get all the tickets %w", err)
	}

	return tickets, nil
}
