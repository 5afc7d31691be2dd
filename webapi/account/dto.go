package account

import (
	"github.com/amirasaad/ledger/pkg/calendar"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/amirasaad/ledger/pkg/service/statement"
)

// PostTransactionRequest is the body of POST /transactions. The amount is a
// decimal string so that precision is checked on the exact input.
type PostTransactionRequest struct {
	Date    string `json:"date" validate:"required"`
	Account string `json:"account" validate:"required,max=64"`
	Type    string `json:"type" validate:"required"`
	Amount  string `json:"amount" validate:"required"`
}

type TransactionDTO struct {
	ID     string      `json:"id"`
	Date   string      `json:"date"`
	Type   string      `json:"type"`
	Amount money.Money `json:"amount"`
}

type AccountDTO struct {
	ID           string           `json:"id"`
	Balance      money.Money      `json:"balance"`
	Transactions []TransactionDTO `json:"transactions"`
}

// StatementLineDTO is one statement row; txn_id is omitted on the interest line.
type StatementLineDTO struct {
	Date    string      `json:"date"`
	TxnID   string      `json:"txn_id,omitempty"`
	Type    string      `json:"type"`
	Amount  money.Money `json:"amount"`
	Balance money.Money `json:"balance"`
}

type StatementDTO struct {
	Account string             `json:"account"`
	Month   string             `json:"month"`
	Lines   []StatementLineDTO `json:"lines"`
}

func toTransactionDTO(tx account.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:     tx.ID,
		Date:   calendar.Format(tx.Date),
		Type:   tx.Type.String(),
		Amount: tx.Amount,
	}
}

func toAccountDTO(acc account.Account) AccountDTO {
	dto := AccountDTO{
		ID:           acc.ID,
		Balance:      acc.Balance(),
		Transactions: make([]TransactionDTO, 0, acc.Len()),
	}
	for _, tx := range acc.Transactions() {
		dto.Transactions = append(dto.Transactions, toTransactionDTO(tx))
	}
	return dto
}

func toStatementDTO(accountID, month string, lines []statement.Line) StatementDTO {
	dto := StatementDTO{Account: accountID, Month: month, Lines: make([]StatementLineDTO, 0, len(lines))}
	for _, l := range lines {
		dto.Lines = append(dto.Lines, StatementLineDTO{
			Date:    calendar.Format(l.Date),
			TxnID:   l.TransactionID,
			Type:    l.Type.String(),
			Amount:  l.Amount,
			Balance: l.Balance,
		})
	}
	return dto
}
