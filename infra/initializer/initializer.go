package initializer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	infra_eventbus "github.com/amirasaad/ledger/infra/eventbus"
	"github.com/amirasaad/ledger/infra/repository/memory"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/service/transaction"
)

// InitializeDependencies builds the logger, the in-memory stores and the
// event bus. Log output goes to logOut.
func InitializeDependencies(cfg *config.App, logOut io.Writer) (*app.Deps, error) {
	if cfg == nil || cfg.Log == nil {
		return nil, fmt.Errorf("initializer: log configuration is required")
	}
	logger := SetupLogger(cfg.Log, logOut)

	bus := infra_eventbus.NewWithMemory(logger)
	RegisterEventLogging(bus, logger)

	return &app.Deps{
		Accounts:  memory.NewAccountRepository(),
		Rules:     memory.NewRuleRepository(),
		Sequencer: transaction.NewSequencer(),
		EventBus:  bus,
		Logger:    logger,
	}, nil
}

// RegisterEventLogging subscribes audit log handlers for every domain event.
func RegisterEventLogging(bus eventbus.Bus, logger *slog.Logger) {
	bus.Register(events.EventTypeTransactionPosted, func(ctx context.Context, e events.Event) error {
		evt, ok := e.(*events.TransactionPosted)
		if !ok {
			return fmt.Errorf("unexpected event %T for %s", e, e.Type())
		}
		logger.InfoContext(ctx, "transaction posted",
			"event_id", evt.ID,
			"account", evt.AccountID,
			"txn_id", evt.TransactionID,
			"type", evt.TxType.String(),
			"amount", evt.Amount.String(),
			"balance", evt.Balance.String(),
		)
		return nil
	})
	bus.Register(events.EventTypeInterestRuleAdded, func(ctx context.Context, e events.Event) error {
		evt, ok := e.(*events.InterestRuleAdded)
		if !ok {
			return fmt.Errorf("unexpected event %T for %s", e, e.Type())
		}
		logger.InfoContext(ctx, "interest rule stored",
			"event_id", evt.ID,
			"rule_id", evt.Rule.ID,
			"date", evt.Rule.Date.String(),
			"rate", evt.Rule.Rate.String(),
			"replaced", evt.Replaced,
		)
		return nil
	})
}
