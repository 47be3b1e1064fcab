package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ruimonteiro/playerdesk/internal/domain/account"
)

type AccountRepository struct {
	mu         sync.RWMutex
	accounts   map[string]account.Account
	depositors map[string][]string
}

func NewAccountRepository(accounts []account.Account) *AccountRepository {
	byNumber := make(map[string]account.Account, len(accounts))
	depositors := make(map[string][]string, len(accounts))
	for _, a := range accounts {
		byNumber[a.Number] = a
		depositors[a.Number] = append([]string(nil), a.Depositors...)
	}

	return &AccountRepository{
		accounts:   byNumber,
		depositors: depositors,
	}
}

func (r *AccountRepository) List(_ context.Context) ([]account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]account.Account, 0, len(r.accounts))
	for number, a := range r.accounts {
		a.Depositors = append([]string(nil), r.depositors[number]...)
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })

	return out, nil
}

func (r *AccountRepository) Delete(_ context.Context, number string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[number]; !ok {
		return 0, nil
	}

	delete(r.depositors, number)
	delete(r.accounts, number)

	return 1, nil
}

// Depositors exposes the join rows for a number. Test helper.
func (r *AccountRepository) Depositors(number string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.depositors[number]...)
}
