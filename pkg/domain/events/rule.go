package events

import (
	"github.com/amirasaad/ledger/pkg/domain/rule"
)

// InterestRuleAdded is emitted after an interest rule has been stored.
// Replaced is set when the rule took the place of one on the same date.
type InterestRuleAdded struct {
	Meta
	Rule     rule.InterestRule
	Replaced bool
}

// NewInterestRuleAdded builds the event.
func NewInterestRuleAdded(r rule.InterestRule, replaced bool) *InterestRuleAdded {
	return &InterestRuleAdded{Meta: newMeta(), Rule: r, Replaced: replaced}
}

func (e InterestRuleAdded) Type() string { return EventTypeInterestRuleAdded.String() }
