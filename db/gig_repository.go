package db

import (
	"context"
	"errors"
	"fmt"

	"gigs/entities"

	"github.com/redis/go-redis/v9"
)

// ErrGigNotFound marks an identifier that passed validation but has no
// catalog entry. The HTTP boundary maps it to a client error, not to a
// validation failure.
var ErrGigNotFound = errors.New("gig not found")

const gigIndexKey = "gigs"

func gigKey(gigID string) string {
	return "gig:" + gigID
}

// GigRepository is the read side of the catalog: one hash per gig plus a set
// of known identifiers for the full-scan listing. The purchase flow never
// mutates a gig; Add exists for seeding the catalog.
type GigRepository struct {
	rdb *redis.Client
}

func NewGigRepository(rdb *redis.Client) GigRepository {
	if rdb == nil {
		panic("redis client is nil")
	}
	return GigRepository{
		rdb: rdb,
	}
}

func (r GigRepository) Add(ctx context.Context, gig entities.Gig) error {
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, gigKey(gig.GigID), gig)
	pipe.SAdd(ctx, gigIndexKey, gig.GigID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("could not save gig %s: %w", gig.GigID, err)
	}
	return nil
}

func (r GigRepository) ByID(ctx context.Context, gigID string) (entities.Gig, error) {
	cmd := r.rdb.HGetAll(ctx, gigKey(gigID))
	if err := cmd.Err(); err != nil {
		return entities.Gig{}, fmt.Errorf("could not get gig %s: %w", gigID, err)
	}

	// HGETALL on a missing key returns an empty map, not a nil reply
	if len(cmd.Val()) == 0 {
		return entities.Gig{}, ErrGigNotFound
	}

	var gig entities.Gig
	if err := cmd.Scan(&gig); err != nil {
		return entities.Gig{}, fmt.Errorf("could not scan gig %s: %w", gigID, err)
	}

	return gig, nil
}

func (r GigRepository) All(ctx context.Context) ([]entities.Gig, error) {
	gigIDs, err := r.rdb.SMembers(ctx, gigIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("could not list gigs: %w", err)
	}

	gigs := make([]entities.Gig, 0, len(gigIDs))
	for _, gigID := range gigIDs {
		gig, err := r.ByID(ctx, gigID)
		if errors.Is(err, ErrGigNotFound) {
			// index entry without a hash, e.g. a half-removed gig
			continue
		}
		if err != nil {
			return nil, err
		}
		gigs = append(gigs, gig)
	}

	return gigs, nil
}
