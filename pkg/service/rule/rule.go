// Package rule provides the interest rule registry: validated rule input,
// ordered listing and the floor lookup that decides which rate applies on
// a given day.
package rule

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/amirasaad/ledger/pkg/calendar"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/rule"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/shopspring/decimal"
)

var maxRate = decimal.NewFromInt(100)

// Service validates and stores interest rules.
type Service struct {
	rules repository.RuleRepository
}

// New creates a rule service backed by rules.
func New(rules repository.RuleRepository) *Service {
	return &Service{rules: rules}
}

// AddRule stores a rule effective from dateText. The rate must lie strictly
// between 0 and 100. A rule already on the same date is replaced; replaced
// reports whether that happened. Nothing changes when an error is returned.
func (s *Service) AddRule(dateText, ruleID string, rate decimal.Decimal) (r rule.InterestRule, replaced bool, err error) {
	if !rate.IsPositive() || !rate.LessThan(maxRate) {
		return rule.InterestRule{}, false, fmt.Errorf("%w: %s", domain.ErrRateOutOfRange, rate)
	}
	date, err := calendar.ParseDate(dateText)
	if err != nil {
		return rule.InterestRule{}, false, fmt.Errorf("%w: %w", domain.ErrInvalidDate, err)
	}
	r = rule.New(date, ruleID, rate)
	replaced = s.rules.Upsert(r)
	return r, replaced, nil
}

// ListRules returns all rules in ascending date order.
func (s *Service) ListRules() []rule.InterestRule {
	return s.rules.List()
}

// ApplicableRule returns the latest rule effective on or before date, or
// false when every rule starts after date.
func (s *Service) ApplicableRule(date civil.Date) (rule.InterestRule, bool) {
	return s.rules.Floor(date)
}
