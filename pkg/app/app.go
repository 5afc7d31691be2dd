// Package app wires the ledger services into a single facade that the
// console and the HTTP API share. It serialises access to the in-memory
// stores and publishes domain events after every successful mutation.
package app

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/domain/rule"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/repository"
	rulesvc "github.com/amirasaad/ledger/pkg/service/rule"
	"github.com/amirasaad/ledger/pkg/service/statement"
	"github.com/amirasaad/ledger/pkg/service/transaction"
	"github.com/shopspring/decimal"
)

// Deps contains the infrastructure the facade is built from.
type Deps struct {
	Accounts  repository.AccountRepository
	Rules     repository.RuleRepository
	Sequencer *transaction.Sequencer
	EventBus  eventbus.Bus
	Logger    *slog.Logger
}

type App struct {
	Deps               *Deps
	Config             *config.App
	TransactionService *transaction.Service
	RuleService        *rulesvc.Service
	StatementService   *statement.Service

	mu sync.RWMutex
}

func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &App{
		Deps:               deps,
		Config:             cfg,
		TransactionService: transaction.New(deps.Accounts, deps.Sequencer),
		RuleService:        rulesvc.New(deps.Rules),
		StatementService:   statement.New(deps.Accounts, deps.Rules),
	}
}

// PostTransaction posts a deposit or withdrawal and returns the stored
// transaction.
func (a *App) PostTransaction(
	ctx context.Context,
	dateText, accountID, typeText string,
	amount decimal.Decimal,
) (account.Transaction, error) {
	a.mu.Lock()
	tx, err := a.TransactionService.PostTransaction(dateText, accountID, typeText, amount)
	if err != nil {
		a.mu.Unlock()
		return account.Transaction{}, err
	}
	acc, _ := a.Deps.Accounts.Get(strings.TrimSpace(accountID))
	evt := events.NewTransactionPosted(acc.ID, tx, acc.Balance())
	a.mu.Unlock()

	a.emit(ctx, evt)
	return tx, nil
}

// AddRule stores an interest rule, replacing any rule on the same date.
func (a *App) AddRule(
	ctx context.Context,
	dateText, ruleID string,
	rate decimal.Decimal,
) (rule.InterestRule, bool, error) {
	a.mu.Lock()
	r, replaced, err := a.RuleService.AddRule(dateText, ruleID, rate)
	a.mu.Unlock()
	if err != nil {
		return rule.InterestRule{}, false, err
	}

	a.emit(ctx, events.NewInterestRuleAdded(r, replaced))
	return r, replaced, nil
}

// ListRules returns all interest rules in date order.
func (a *App) ListRules() []rule.InterestRule {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.RuleService.ListRules()
}

// GenerateStatement returns the statement of accountID for a YYYYMM month.
func (a *App) GenerateStatement(accountID, yearMonth string) []statement.Line {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.StatementService.Generate(accountID, yearMonth)
}

// GetAccount returns a detached copy of the account.
func (a *App) GetAccount(id string) (account.Account, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	acc, ok := a.Deps.Accounts.Get(id)
	if !ok {
		return account.Account{}, domain.ErrAccountNotFound
	}
	return acc.Snapshot(), nil
}

// ListAccounts returns detached copies of all accounts, ordered by id.
func (a *App) ListAccounts() []account.Account {
	a.mu.RLock()
	defer a.mu.RUnlock()
	accounts := a.Deps.Accounts.List()
	out := make([]account.Account, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, acc.Snapshot())
	}
	return out
}

// emit publishes evt. Subscribers cannot undo a mutation, so their
// failures are logged and otherwise ignored.
func (a *App) emit(ctx context.Context, evt events.Event) {
	if a.Deps.EventBus == nil {
		return
	}
	if err := a.Deps.EventBus.Emit(ctx, evt); err != nil {
		a.Deps.Logger.Warn("event subscriber failed", "type", evt.Type(), "error", err)
	}
}
