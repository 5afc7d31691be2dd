package account

import (
	"slices"

	"cloud.google.com/go/civil"
	"github.com/amirasaad/ledger/pkg/money"
)

// Account is a named ledger account: a running balance and the
// transactions posted to it, in posting order.
//
// Invariants:
//   - Balance always equals the sum of the signed effects of Transactions.
//   - Transactions are never removed or modified once posted.
type Account struct {
	ID           string
	balance      money.Money
	transactions []Transaction
}

// New creates an empty account with a zero balance.
func New(id string) *Account {
	return &Account{ID: id}
}

// Balance returns the current balance.
func (a *Account) Balance() money.Money {
	return a.balance
}

// Transactions returns a copy of the posted transactions in posting order.
func (a *Account) Transactions() []Transaction {
	return slices.Clone(a.transactions)
}

// Len returns the number of posted transactions.
func (a *Account) Len() int {
	return len(a.transactions)
}

// Post appends tx and applies its effect to the balance. It does not
// validate; callers are expected to have done so.
func (a *Account) Post(tx Transaction) {
	a.transactions = append(a.transactions, tx)
	a.balance = a.balance.Add(tx.Effect())
}

// BalanceBefore rebuilds the balance from scratch using only transactions
// dated strictly before date. It ignores the cached balance.
func (a *Account) BalanceBefore(date civil.Date) money.Money {
	total := money.Zero
	for _, tx := range a.transactions {
		if tx.Date.Before(date) {
			total = total.Add(tx.Effect())
		}
	}
	return total
}

// ReplayBalance rebuilds the balance from every posted transaction.
func (a *Account) ReplayBalance() money.Money {
	total := money.Zero
	for _, tx := range a.transactions {
		total = total.Add(tx.Effect())
	}
	return total
}

// Snapshot returns a deep copy that shares no state with a.
func (a *Account) Snapshot() Account {
	return Account{
		ID:           a.ID,
		balance:      a.balance,
		transactions: slices.Clone(a.transactions),
	}
}
