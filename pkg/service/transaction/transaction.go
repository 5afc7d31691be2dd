// Package transaction is the only write path into the ledger. It validates
// deposits and withdrawals, provisions accounts on first use, assigns
// transaction ids and posts the result.
package transaction

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/amirasaad/ledger/pkg/calendar"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/shopspring/decimal"
)

// Service posts validated transactions.
type Service struct {
	accounts repository.AccountRepository
	seq      *Sequencer
}

// New creates a transaction service. A nil seq gets a fresh Sequencer.
func New(accounts repository.AccountRepository, seq *Sequencer) *Service {
	if seq == nil {
		seq = NewSequencer()
	}
	return &Service{accounts: accounts, seq: seq}
}

// PostTransaction validates the input and posts a deposit or withdrawal.
//
// Checks run in order: date, type, amount sign, amount precision, account
// id. An unknown account is created before the balance check, so a
// rejected first withdrawal still leaves an empty account behind.
// Withdrawals may not exceed the balance and deposits may not push it past
// the largest representable amount.
func (s *Service) PostTransaction(
	dateText, accountID, typeText string,
	amount decimal.Decimal,
) (account.Transaction, error) {
	date, err := calendar.ParseDate(dateText)
	if err != nil {
		return account.Transaction{}, fmt.Errorf("%w: %w", domain.ErrInvalidDate, err)
	}
	typ, ok := account.ParseType(typeText)
	if !ok {
		return account.Transaction{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, typeText)
	}
	if !amount.IsPositive() {
		return account.Transaction{}, fmt.Errorf("%w: %s", domain.ErrNonPositiveAmount, amount)
	}
	if !money.HasValidPrecision(amount) {
		return account.Transaction{}, fmt.Errorf("%w: %s", domain.ErrTooManyDecimals, amount)
	}
	amt, err := money.New(amount)
	if err != nil {
		return account.Transaction{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return account.Transaction{}, domain.ErrEmptyAccountID
	}

	acc, ok := s.accounts.Get(accountID)
	if !ok {
		acc = s.accounts.Create(accountID)
	}
	if typ == account.Withdrawal && amt.GreaterThan(acc.Balance()) {
		return account.Transaction{}, fmt.Errorf("%w: balance %s, requested %s",
			domain.ErrInsufficientBalance, acc.Balance(), amt)
	}
	if _, err := acc.Balance().AddChecked(typ.Effect(amt)); err != nil {
		return account.Transaction{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	tx := account.NewTransaction(s.seq.Next(date), date, typ, amt)
	s.accounts.Post(acc, tx)
	return tx, nil
}

// TransactionCount returns the number of ids issued for date.
func (s *Service) TransactionCount(date civil.Date) int {
	return s.seq.Count(date)
}
