package account_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestNewAccount(t *testing.T) {
	t.Parallel()
	acc := account.New("AC001")
	assert.Equal(t, "AC001", acc.ID)
	assert.True(t, acc.Balance().IsZero())
	assert.Empty(t, acc.Transactions())
}

func TestPost_UpdatesBalanceByType(t *testing.T) {
	t.Parallel()
	acc := account.New("AC001")

	acc.Post(account.NewTransaction("20230505-01", day(2023, time.May, 5), account.Deposit, money.Must("100")))
	acc.Post(account.NewTransaction("20230601-01", day(2023, time.June, 1), account.Withdrawal, money.Must("50")))
	acc.Post(account.NewTransaction("", day(2023, time.June, 30), account.Interest, money.Must("0.39")))

	assert.Equal(t, "50.39", acc.Balance().String())
	require.Equal(t, 3, acc.Len())
	assert.Equal(t, acc.Balance(), acc.ReplayBalance())
}

func TestBalanceBefore(t *testing.T) {
	t.Parallel()
	acc := account.New("AC001")
	// posted out of date order on purpose
	acc.Post(account.NewTransaction("20230626-01", day(2023, time.June, 26), account.Deposit, money.Must("20")))
	acc.Post(account.NewTransaction("20230505-01", day(2023, time.May, 5), account.Deposit, money.Must("100")))
	acc.Post(account.NewTransaction("20230601-01", day(2023, time.June, 1), account.Withdrawal, money.Must("30")))

	tests := []struct {
		name string
		date civil.Date
		want string
	}{
		{"before everything", day(2023, time.May, 1), "0.00"},
		{"same day excluded", day(2023, time.May, 5), "0.00"},
		{"after first deposit", day(2023, time.June, 1), "100.00"},
		{"mid june", day(2023, time.June, 26), "70.00"},
		{"after everything", day(2024, time.January, 1), "90.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, acc.BalanceBefore(tt.date).String())
		})
	}
}

func TestTransactions_ReturnsCopy(t *testing.T) {
	t.Parallel()
	acc := account.New("AC001")
	acc.Post(account.NewTransaction("20230505-01", day(2023, time.May, 5), account.Deposit, money.Must("10")))

	txs := acc.Transactions()
	txs[0].Amount = money.Must("999")

	assert.Equal(t, "10.00", acc.Transactions()[0].Amount.String())
}

func TestSnapshot_IsDetached(t *testing.T) {
	t.Parallel()
	acc := account.New("AC001")
	acc.Post(account.NewTransaction("20230505-01", day(2023, time.May, 5), account.Deposit, money.Must("10")))

	snap := acc.Snapshot()
	acc.Post(account.NewTransaction("20230505-02", day(2023, time.May, 5), account.Deposit, money.Must("5")))

	assert.Equal(t, "10.00", snap.Balance().String())
	assert.Equal(t, 1, snap.Len())
	assert.Equal(t, "15.00", acc.Balance().String())
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want account.Type
		ok   bool
	}{
		{"D", account.Deposit, true},
		{"d", account.Deposit, true},
		{"Deposit", account.Deposit, true},
		{"W", account.Withdrawal, true},
		{"withdrawal", account.Withdrawal, true},
		{"I", 0, false},
		{"Interest", 0, false},
		{"X", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := account.ParseType(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypeEffectAndString(t *testing.T) {
	amt := money.Must("12.5")
	assert.Equal(t, "12.50", account.Deposit.Effect(amt).String())
	assert.Equal(t, "12.50", account.Interest.Effect(amt).String())
	assert.Equal(t, "-12.50", account.Withdrawal.Effect(amt).String())

	assert.Equal(t, "D", account.Deposit.String())
	assert.Equal(t, "W", account.Withdrawal.String())
	assert.Equal(t, "I", account.Interest.String())
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "20230626-01", account.FormatID(day(2023, time.June, 26), 1))
	assert.Equal(t, "20230626-12", account.FormatID(day(2023, time.June, 26), 12))
	assert.Equal(t, "20230626-100", account.FormatID(day(2023, time.June, 26), 100))
}
