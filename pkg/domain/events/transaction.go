package events

import (
	"cloud.google.com/go/civil"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/money"
)

// TransactionPosted is emitted after a transaction has been posted to an account.
type TransactionPosted struct {
	Meta
	AccountID     string
	TransactionID string
	Date          civil.Date
	TxType        account.Type
	Amount        money.Money
	Balance       money.Money // balance after posting
}

// NewTransactionPosted builds the event from the posted transaction and the
// account balance right after it.
func NewTransactionPosted(accountID string, tx account.Transaction, balance money.Money) *TransactionPosted {
	return &TransactionPosted{
		Meta:          newMeta(),
		AccountID:     accountID,
		TransactionID: tx.ID,
		Date:          tx.Date,
		TxType:        tx.Type,
		Amount:        tx.Amount,
		Balance:       balance,
	}
}

func (e TransactionPosted) Type() string { return EventTypeTransactionPosted.String() }
