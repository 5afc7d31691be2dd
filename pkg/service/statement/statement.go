// Package statement builds monthly account statements: the month's
// transactions with running balances plus a synthetic interest line.
//
// Generating a statement never changes the ledger. The interest line is
// presentation only and is not posted back to the account.
package statement

import (
	"slices"

	"cloud.google.com/go/civil"
	"github.com/amirasaad/ledger/pkg/calendar"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/amirasaad/ledger/pkg/repository"
)

// Line is one row of a statement. TransactionID is empty on the interest line.
type Line struct {
	Date          civil.Date
	TransactionID string
	Type          account.Type
	Amount        money.Money
	Balance       money.Money
}

// Service generates statements from the account ledger and the rule registry.
type Service struct {
	accounts repository.AccountRepository
	rules    repository.RuleRepository
}

// New creates a statement service.
func New(accounts repository.AccountRepository, rules repository.RuleRepository) *Service {
	return &Service{accounts: accounts, rules: rules}
}

// Generate returns the statement of accountID for the YYYYMM month.
// An unknown account or a malformed month yields an empty statement.
func (s *Service) Generate(accountID, yearMonth string) []Line {
	lines := make([]Line, 0)
	acc, ok := s.accounts.Get(accountID)
	if !ok {
		return lines
	}
	start, err := calendar.ParseYearMonth(yearMonth)
	if err != nil {
		return lines
	}
	end := calendar.EndOfMonth(start)

	running := acc.BalanceBefore(start)
	for _, tx := range transactionsWithin(acc.Transactions(), start, end) {
		running = running.Add(tx.Effect())
		lines = append(lines, Line{
			Date:          tx.Date,
			TransactionID: tx.ID,
			Type:          tx.Type,
			Amount:        tx.Amount,
			Balance:       running,
		})
	}

	if interest := s.MonthlyInterest(acc, start); interest.IsPositive() {
		lines = append(lines, Line{
			Date:    end,
			Type:    account.Interest,
			Amount:  interest,
			Balance: running.Add(interest),
		})
	}
	return lines
}

// StartingBalance rebuilds the balance of acc as it stood at the start of
// date, from transactions alone.
func (s *Service) StartingBalance(acc *account.Account, date civil.Date) money.Money {
	return acc.BalanceBefore(date)
}

// transactionsWithin returns the transactions dated in [from, to] sorted by
// date. Same-day transactions keep their posting order.
func transactionsWithin(txs []account.Transaction, from, to civil.Date) []account.Transaction {
	out := make([]account.Transaction, 0, len(txs))
	for _, tx := range txs {
		if calendar.Within(tx.Date, from, to) {
			out = append(out, tx)
		}
	}
	slices.SortStableFunc(out, func(a, b account.Transaction) int {
		return calendar.Compare(a.Date, b.Date)
	})
	return out
}
