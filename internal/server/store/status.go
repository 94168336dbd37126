package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StatusCheck is a single liveness probe record from a client.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewStatusCheck builds a record with a fresh id and the current UTC instant.
func NewStatusCheck(clientName string) *StatusCheck {
	return &StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
}

// statusCheckDoc is the stored shape. Timestamps round-trip through an
// ISO-8601 string because the store has no sub-millisecond datetime fidelity.
type statusCheckDoc struct {
	ID         string `bson:"id"`
	ClientName string `bson:"client_name"`
	Timestamp  string `bson:"timestamp"`
}

func (c *StatusCheck) doc() *statusCheckDoc {
	return &statusCheckDoc{
		ID:         c.ID,
		ClientName: c.ClientName,
		Timestamp:  c.Timestamp.Format(time.RFC3339Nano),
	}
}

func (d *statusCheckDoc) model() (*StatusCheck, error) {
	ts, err := time.Parse(time.RFC3339, d.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp %q: %w", d.Timestamp, err)
	}
	return &StatusCheck{
		ID:         d.ID,
		ClientName: d.ClientName,
		Timestamp:  ts,
	}, nil
}

// CreateStatusCheck persists the record. The insert result is ignored beyond
// error propagation.
func (s *Store) CreateStatusCheck(ctx context.Context, check *StatusCheck) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := s.statusChecks().InsertOne(ctx, check.doc()); err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

// ListStatusChecks returns up to 1000 records in the store's natural order.
// The store's internal row id is projected out so it never leaks into the API.
func (s *Store) ListStatusChecks(ctx context.Context) ([]*StatusCheck, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 0}}).
		SetLimit(listLimit)

	cur, err := s.statusChecks().Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find status checks: %w", err)
	}
	defer cur.Close(ctx)

	var docs []statusCheckDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode status checks: %w", err)
	}

	checks := make([]*StatusCheck, 0, len(docs))
	for i := range docs {
		check, err := docs[i].model()
		if err != nil {
			return nil, err
		}
		checks = append(checks, check)
	}
	return checks, nil
}
