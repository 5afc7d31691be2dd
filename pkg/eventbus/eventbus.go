// Package eventbus defines the contract for publishing domain events to
// subscribers.
package eventbus

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/events"
)

// HandlerFunc handles one event.
type HandlerFunc func(ctx context.Context, e events.Event) error

// Bus dispatches events to the handlers registered for their type.
type Bus interface {
	Register(eventType events.EventType, handler HandlerFunc)
	Emit(ctx context.Context, e events.Event) error
}
