package repository

import (
	"cloud.google.com/go/civil"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/rule"
)

// AccountRepository is the account ledger: it owns accounts and is the
// only place their balances change.
type AccountRepository interface {
	// Get returns the account with id, or false. It never creates one.
	Get(id string) (*account.Account, bool)
	// Create stores a fresh account, replacing any account with the same id.
	Create(id string) *account.Account
	// List returns every account.
	List() []*account.Account
	// Post appends tx to acc and updates its balance. It does not validate.
	Post(acc *account.Account, tx account.Transaction)
}

// RuleRepository stores interest rules keyed by effective date, at most
// one per date.
type RuleRepository interface {
	// Upsert stores r, replacing the rule on the same date. It reports
	// whether a rule was replaced.
	Upsert(r rule.InterestRule) bool
	// List returns all rules ordered by date.
	List() []rule.InterestRule
	// Floor returns the rule with the greatest date <= d.
	Floor(d civil.Date) (rule.InterestRule, bool)
	// On returns the rule dated exactly d.
	On(d civil.Date) (rule.InterestRule, bool)
	// Between returns the rules dated within [from, to], ordered by date.
	Between(from, to civil.Date) []rule.InterestRule
}
