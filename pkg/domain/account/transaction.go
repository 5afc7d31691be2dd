package account

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/amirasaad/ledger/pkg/calendar"
	"github.com/amirasaad/ledger/pkg/money"
)

// Type is the closed set of transaction kinds.
type Type uint8

// Transaction kinds. Interest is produced by the accrual engine only;
// ParseType never returns it.
const (
	Deposit Type = iota + 1
	Withdrawal
	Interest
)

// ParseType reads a user-supplied transaction type. It accepts "D"/"W" and
// "Deposit"/"Withdrawal" in any letter case.
func ParseType(text string) (Type, bool) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "D", "DEPOSIT":
		return Deposit, true
	case "W", "WITHDRAWAL":
		return Withdrawal, true
	default:
		return 0, false
	}
}

// String returns the one letter code used on statements.
func (t Type) String() string {
	switch t {
	case Deposit:
		return "D"
	case Withdrawal:
		return "W"
	case Interest:
		return "I"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// MarshalText encodes the type as its one letter code.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Effect returns the signed change amount makes to a balance.
// Deposits and interest add, withdrawals subtract.
func (t Type) Effect(amount money.Money) money.Money {
	if t == Withdrawal {
		return amount.Neg()
	}
	return amount
}

// Transaction is an immutable posted ledger entry.
type Transaction struct {
	ID     string
	Date   civil.Date
	Type   Type
	Amount money.Money
}

// NewTransaction builds a transaction. It performs no validation; the
// transaction service validates input before calling it.
func NewTransaction(id string, date civil.Date, typ Type, amount money.Money) Transaction {
	return Transaction{ID: id, Date: date, Type: typ, Amount: amount}
}

// Effect returns the signed change the transaction makes to a balance.
func (t Transaction) Effect() money.Money {
	return t.Type.Effect(t.Amount)
}

// FormatID renders a transaction id as YYYYMMDD-NN.
func FormatID(date civil.Date, seq int) string {
	return fmt.Sprintf("%s-%02d", calendar.Format(date), seq)
}
