package memory

import (
	"cloud.google.com/go/civil"
	"github.com/amirasaad/ledger/pkg/domain/rule"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/btree"
)

const ruleTreeDegree = 8

// RuleRepository keeps interest rules in a B-tree ordered by date, which
// gives same-date replacement and floor lookups without scanning.
type RuleRepository struct {
	tree *btree.BTreeG[rule.InterestRule]
}

// NewRuleRepository creates an empty rule repository.
func NewRuleRepository() *RuleRepository {
	return &RuleRepository{
		tree: btree.NewG[rule.InterestRule](ruleTreeDegree, func(a, b rule.InterestRule) bool {
			return a.Date.Before(b.Date)
		}),
	}
}

func (r *RuleRepository) Upsert(ir rule.InterestRule) bool {
	_, replaced := r.tree.ReplaceOrInsert(ir)
	return replaced
}

func (r *RuleRepository) List() []rule.InterestRule {
	out := make([]rule.InterestRule, 0, r.tree.Len())
	r.tree.Ascend(func(ir rule.InterestRule) bool {
		out = append(out, ir)
		return true
	})
	return out
}

func (r *RuleRepository) Floor(d civil.Date) (rule.InterestRule, bool) {
	var (
		found rule.InterestRule
		ok    bool
	)
	r.tree.DescendLessOrEqual(rule.InterestRule{Date: d}, func(ir rule.InterestRule) bool {
		found, ok = ir, true
		return false
	})
	return found, ok
}

func (r *RuleRepository) On(d civil.Date) (rule.InterestRule, bool) {
	return r.tree.Get(rule.InterestRule{Date: d})
}

func (r *RuleRepository) Between(from, to civil.Date) []rule.InterestRule {
	var out []rule.InterestRule
	r.tree.AscendRange(rule.InterestRule{Date: from}, rule.InterestRule{Date: to.AddDays(1)}, func(ir rule.InterestRule) bool {
		out = append(out, ir)
		return true
	})
	return out
}

var _ repository.RuleRepository = (*RuleRepository)(nil)
