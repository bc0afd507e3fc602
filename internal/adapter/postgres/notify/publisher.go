// Package notify publishes change notifications through PostgreSQL
// NOTIFY so subsystems holding denormalized copies can refresh them.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/users-resources/internal/adapter/postgres"
	"github.com/heartmarshall/users-resources/internal/domain"
)

// Publisher sends change notifications on a pg_notify channel.
type Publisher struct {
	q       postgres.Querier
	channel string
}

// New creates a new publisher on channel.
func New(q postgres.Querier, channel string) *Publisher {
	return &Publisher{q: q, channel: channel}
}

// Publish sends one notification per entry in a single batch.
func (p *Publisher) Publish(ctx context.Context, notes []domain.ChangeNotification) error {
	if len(notes) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, n := range notes {
		payload, err := json.Marshal(n)
		if err != nil {
			return fmt.Errorf("marshal notification %s/%s: %w", n.EntityType, n.ID, err)
		}
		batch.Queue("SELECT pg_notify($1, $2)", p.channel, string(payload))
	}

	br := p.q.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("publish notification %d: %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close notification batch: %w", err)
	}
	return nil
}
