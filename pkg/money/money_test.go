package money_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/amirasaad/ledger/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to parse a decimal for testing
func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := money.Parse(s)
	require.NoError(t, err, "failed to parse decimal for test")
	return d
}

func TestNew_Precision(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
		wantErr  error
	}{
		{"whole amount", "100", "100.00", nil},
		{"one decimal", "99.9", "99.90", nil},
		{"two decimals", "10.43", "10.43", nil},
		{"trailing zero third decimal", "10.430", "10.43", nil},
		{"three decimals", "10.433", "", money.ErrInvalidPrecision},
		{"four decimals", "0.0001", "", money.ErrInvalidPrecision},
		{"negative", "-3.5", "-3.50", nil},
		{"too large", "100000000000000000000", "", money.ErrAmountOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := money.New(mustDecimal(t, tt.amount))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "abc", "1,00", "1.2.3"} {
		_, err := money.Parse(s)
		assert.ErrorIs(t, err, money.ErrInvalidAmount, s)
	}
}

func TestArithmetic(t *testing.T) {
	a := money.Must("50")
	b := money.Must("20.25")

	assert.Equal(t, money.FromCents(7025), a.Add(b))
	assert.Equal(t, "29.75", a.Sub(b).String())
	assert.Equal(t, "-50.00", a.Neg().String())
	assert.True(t, a.GreaterThan(b))
	assert.False(t, b.GreaterThan(a))
	assert.Equal(t, money.FromCents(5000), a)
	assert.True(t, money.Zero.IsZero())
	assert.False(t, money.Zero.IsPositive())
	assert.True(t, b.IsPositive())
}

func TestAddChecked(t *testing.T) {
	maxMoney := money.FromCents(math.MaxInt64)
	minMoney := money.FromCents(math.MinInt64)

	sum, err := money.Must("10.25").AddChecked(money.Must("0.75"))
	require.NoError(t, err)
	assert.Equal(t, "11.00", sum.String())

	sum, err = maxMoney.AddChecked(money.Must("-0.01"))
	require.NoError(t, err)
	assert.Equal(t, money.FromCents(math.MaxInt64-1), sum)

	_, err = maxMoney.AddChecked(money.Must("0.01"))
	assert.ErrorIs(t, err, money.ErrAmountOutOfRange)

	_, err = minMoney.AddChecked(money.Must("-0.01"))
	assert.ErrorIs(t, err, money.ErrAmountOutOfRange)
}

func TestRound_HalfUp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.004", "0.00"},
		{"0.005", "0.01"},
		{"0.0249999", "0.02"},
		{"1.235", "1.24"},
		{"0.02465753424657534", "0.02"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Round(mustDecimal(t, tt.in)).String())
		})
	}
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Amount money.Money `json:"amount"`
	}{money.Must("30.1")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": 30.10}`, string(data))

	var got struct {
		Amount money.Money `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"amount": "12.34"}`), &got))
	assert.Equal(t, money.FromCents(1234), got.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"amount": 7.5}`), &got))
	assert.Equal(t, money.FromCents(750), got.Amount)

	err = json.Unmarshal([]byte(`{"amount": 1.234}`), &got)
	assert.ErrorIs(t, err, money.ErrInvalidPrecision)
}
