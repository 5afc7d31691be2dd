package statement_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func june(d int) civil.Date {
	return civil.Date{Year: 2023, Month: time.June, Day: d}
}

func TestPeriods_WorkedExample(t *testing.T) {
	f := newWorkedExample(t)
	acc, _ := f.accounts.Get("AC001")

	periods := f.statements.Periods(acc, june(1))

	type p struct {
		from, to civil.Date
		balance  string
		rule     string
		days     int
	}
	var got []p
	for _, period := range periods {
		got = append(got, p{period.From, period.To, period.Balance.String(), period.Rule.ID, period.Days()})
	}
	assert.Equal(t, []p{
		{june(1), june(15), "250.00", "RULE02", 14},
		{june(15), june(26), "250.00", "RULE03", 11},
		{june(26), civil.Date{Year: 2023, Month: time.July, Day: 1}, "130.00", "RULE03", 5},
	}, got)

	total := 0
	for _, period := range periods {
		total += period.Days()
	}
	assert.Equal(t, 30, total, "periods must cover the whole month")
}

func TestMonthlyInterest_DayOneTransactionEarnsWholeMonth(t *testing.T) {
	f := newFixture()
	f.rule(t, "20230101", "R1", "10")
	f.post(t, "20230301", "AC001", "D", "365")
	acc, _ := f.accounts.Get("AC001")

	// 365 * 10% * 31/365 = 3.10
	assert.Equal(t, "3.10", f.statements.MonthlyInterest(acc, civil.Date{Year: 2023, Month: time.March, Day: 1}).String())
}

func TestMonthlyInterest_RuleStartingMidMonth(t *testing.T) {
	f := newFixture()
	f.post(t, "20230201", "AC001", "D", "3650")
	f.rule(t, "20230315", "R1", "1")
	acc, _ := f.accounts.Get("AC001")

	periods := f.statements.Periods(acc, civil.Date{Year: 2023, Month: time.March, Day: 1})
	require.Len(t, periods, 1)
	assert.Equal(t, civil.Date{Year: 2023, Month: time.March, Day: 15}, periods[0].From)
	assert.Equal(t, 17, periods[0].Days())

	// 3650 * 1% * 17/365 = 1.70
	assert.Equal(t, "1.70", f.statements.MonthlyInterest(acc, civil.Date{Year: 2023, Month: time.March, Day: 1}).String())
}

func TestMonthlyInterest_RuleOnFirstOfMonth(t *testing.T) {
	f := newFixture()
	f.rule(t, "20230101", "LOW", "1")
	f.rule(t, "20230401", "HIGH", "5")
	f.post(t, "20230101", "AC001", "D", "3650")
	acc, _ := f.accounts.Get("AC001")

	periods := f.statements.Periods(acc, civil.Date{Year: 2023, Month: time.April, Day: 1})
	require.Len(t, periods, 1)
	assert.Equal(t, "HIGH", periods[0].Rule.ID)
	// 3650 * 5% * 30/365 = 15.00
	assert.Equal(t, "15.00", f.statements.MonthlyInterest(acc, civil.Date{Year: 2023, Month: time.April, Day: 1}).String())
}

func TestMonthlyInterest_LeapFebruaryUses365DayYear(t *testing.T) {
	f := newFixture()
	f.rule(t, "20240101", "R1", "1")
	f.post(t, "20240101", "AC001", "D", "36500")
	acc, _ := f.accounts.Get("AC001")

	// 36500 * 1% * 29/365 = 29.00
	assert.Equal(t, "29.00", f.statements.MonthlyInterest(acc, civil.Date{Year: 2024, Month: time.February, Day: 1}).String())
}

func TestMonthlyInterest_ZeroBalanceEarnsNothing(t *testing.T) {
	f := newFixture()
	f.rule(t, "20230101", "R1", "5")
	f.post(t, "20230601", "AC001", "D", "10")
	f.post(t, "20230601", "AC001", "W", "10")
	acc, _ := f.accounts.Get("AC001")

	assert.True(t, f.statements.MonthlyInterest(acc, june(1)).IsZero())
	assert.Len(t, f.statements.Generate("AC001", "202306"), 2)
}
