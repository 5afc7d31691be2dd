// Package memory provides in-process implementations of the repository
// interfaces. Nothing is persisted across restarts.
package memory

import (
	"slices"
	"strings"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/repository"
)

// AccountRepository keeps accounts in a map keyed by account id.
type AccountRepository struct {
	accounts map[string]*account.Account
}

// NewAccountRepository creates an empty account repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*account.Account)}
}

func (r *AccountRepository) Get(id string) (*account.Account, bool) {
	acc, ok := r.accounts[id]
	return acc, ok
}

func (r *AccountRepository) Create(id string) *account.Account {
	acc := account.New(id)
	r.accounts[id] = acc
	return acc
}

// List returns accounts ordered by id.
func (r *AccountRepository) List() []*account.Account {
	out := make([]*account.Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		out = append(out, acc)
	}
	slices.SortFunc(out, func(a, b *account.Account) int { return strings.Compare(a.ID, b.ID) })
	return out
}

func (r *AccountRepository) Post(acc *account.Account, tx account.Transaction) {
	acc.Post(tx)
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
