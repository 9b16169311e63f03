package shared

import (
	"time"

	"github.com/google/uuid"
)

// OutboxMessage is a persisted event waiting for the relay.
type OutboxMessage struct {
	ID          uuid.UUID
	Topic       string
	AggregateID uuid.UUID
	Payload     []byte
	Attempts    int
	CreatedAt   time.Time
}
