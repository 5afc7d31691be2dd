package eventbus_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	infraeventbus "github.com/amirasaad/ledger/infra/eventbus"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/domain/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBus() *infraeventbus.MemoryEventBus {
	return infraeventbus.NewWithMemory(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMemoryEventBus_DispatchesByType(t *testing.T) {
	bus := newBus()

	var ruleEvents, txEvents int
	bus.Register(events.EventTypeInterestRuleAdded, func(ctx context.Context, e events.Event) error {
		evt, ok := e.(*events.InterestRuleAdded)
		require.True(t, ok)
		assert.Equal(t, "R1", evt.Rule.ID)
		ruleEvents++
		return nil
	})
	bus.Register(events.EventTypeTransactionPosted, func(ctx context.Context, e events.Event) error {
		txEvents++
		return nil
	})

	err := bus.Emit(context.Background(), events.NewInterestRuleAdded(rule.InterestRule{ID: "R1"}, false))
	require.NoError(t, err)

	assert.Equal(t, 1, ruleEvents)
	assert.Equal(t, 0, txEvents)
	assert.Len(t, bus.Published(), 1)
}

func TestMemoryEventBus_RunsAllHandlersAndJoinsErrors(t *testing.T) {
	bus := newBus()
	boom := errors.New("boom")

	var calls int
	bus.Register(events.EventTypeInterestRuleAdded, func(context.Context, events.Event) error {
		calls++
		return boom
	})
	bus.Register(events.EventTypeInterestRuleAdded, func(context.Context, events.Event) error {
		calls++
		return nil
	})

	err := bus.Emit(context.Background(), events.NewInterestRuleAdded(rule.InterestRule{}, true))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestMemoryEventBus_ClearPublished(t *testing.T) {
	bus := newBus()
	require.NoError(t, bus.Emit(context.Background(), events.NewInterestRuleAdded(rule.InterestRule{}, false)))
	require.Len(t, bus.Published(), 1)

	bus.ClearPublished()
	assert.Empty(t, bus.Published())
}
