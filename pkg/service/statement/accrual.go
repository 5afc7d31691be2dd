package statement

import (
	"slices"

	"cloud.google.com/go/civil"
	"github.com/amirasaad/ledger/pkg/calendar"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/rule"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/shopspring/decimal"
)

// DaysInYear is the fixed day count used for every accrual, leap years included.
const DaysInYear = 365

var accrualDivisor = decimal.NewFromInt(100 * DaysInYear)

// Period is a run of days [From, To) over which both the balance and the
// interest rule stay constant.
type Period struct {
	From    civil.Date
	To      civil.Date
	Balance money.Money
	Rule    rule.InterestRule
}

// Days returns the number of days in the period.
func (p Period) Days() int {
	return p.To.DaysSince(p.From)
}

// Interest returns the unrounded simple interest earned over the period:
// balance * rate/100 * days/365.
func (p Period) Interest() decimal.Decimal {
	return p.Balance.Decimal().
		Mul(p.Rule.Rate).
		Mul(decimal.NewFromInt(int64(p.Days()))).
		Div(accrualDivisor)
}

// MonthlyInterest returns the interest acc earns in the month starting at
// start, rounded half-up to cents.
func (s *Service) MonthlyInterest(acc *account.Account, start civil.Date) money.Money {
	total := decimal.Zero
	for _, p := range s.Periods(acc, start) {
		total = total.Add(p.Interest())
	}
	return money.Round(total)
}

// Periods splits the month containing start into accrual periods. The month
// is cut at every in-month transaction date and rule effective date.
// Days with no rule in force produce no period.
func (s *Service) Periods(acc *account.Account, start civil.Date) []Period {
	start = calendar.StartOfMonth(start)
	end := calendar.EndOfMonth(start)
	stop := end.AddDays(1)

	inMonth := transactionsWithin(acc.Transactions(), start, end)
	dates := eventDates(start, stop, inMonth, s.rules.Between(start, end))

	balance := acc.BalanceBefore(start)
	current := start
	currentRule, inForce := s.rules.Floor(start.AddDays(-1))

	var periods []Period
	for _, next := range dates {
		// The month start equals current on the first pass. It accrues
		// nothing but must not be skipped, or day-one transactions and
		// rules would be missed.
		if next.Before(current) {
			continue
		}
		if inForce && !current.After(end) {
			until := next
			if until.After(stop) {
				until = stop
			}
			if until.After(current) {
				periods = append(periods, Period{From: current, To: until, Balance: balance, Rule: currentRule})
			}
		}

		current = next
		for _, tx := range inMonth {
			if tx.Date == current {
				balance = balance.Add(tx.Effect())
			}
		}
		if r, ok := s.rules.On(current); ok {
			currentRule, inForce = r, true
		} else {
			currentRule, inForce = s.rules.Floor(current)
		}
	}
	return periods
}

// eventDates returns the sorted, de-duplicated dates at which the balance
// or the rate may change, bounded by start and the exclusive stop date.
func eventDates(start, stop civil.Date, txs []account.Transaction, rules []rule.InterestRule) []civil.Date {
	dates := make([]civil.Date, 0, len(txs)+len(rules)+2)
	dates = append(dates, start, stop)
	for _, tx := range txs {
		dates = append(dates, tx.Date)
	}
	for _, r := range rules {
		dates = append(dates, r.Date)
	}
	slices.SortFunc(dates, calendar.Compare)
	return slices.Compact(dates)
}
