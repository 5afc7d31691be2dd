// Package events defines the domain events the ledger emits after a
// successful mutation.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is implemented by every domain event.
type Event interface {
	Type() string
}

// Meta carries the fields common to all events.
type Meta struct {
	ID         uuid.UUID
	OccurredAt time.Time
}

func newMeta() Meta {
	return Meta{ID: uuid.New(), OccurredAt: time.Now().UTC()}
}
