package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/novabank/core-ledger/internal/domain"
)

type AccountRepository struct {
	store *Store
}

func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, taken := r.store.accountByNumberLocked(account.AccountNumber); taken {
		return domain.Account{}, domain.Conflictf("account number is already assigned")
	}

	account.ID = uuid.NewString()
	account.CreatedAt = r.store.now()
	account.UpdatedAt = account.CreatedAt
	r.store.accounts[account.ID] = account

	return account, nil
}

func (r *AccountRepository) Update(_ context.Context, account domain.Account) (domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.accounts[account.ID]
	if !ok {
		return domain.Account{}, domain.NotFoundf("account not found")
	}

	// Only account_type and active are mutable through this path.
	existing.AccountType = account.AccountType
	existing.Active = account.Active
	existing.UpdatedAt = r.store.now()
	r.store.accounts[existing.ID] = existing

	return existing, nil
}

func (r *AccountRepository) Delete(_ context.Context, accountID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.accounts[accountID]; !ok {
		return domain.NotFoundf("account not found")
	}
	delete(r.store.accounts, accountID)

	return nil
}

func (r *AccountRepository) GetByID(_ context.Context, accountID string) (domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.accounts[accountID]
	if !ok {
		return domain.Account{}, domain.NotFoundf("account not found")
	}

	return account, nil
}

func (r *AccountRepository) GetByAccountNumber(_ context.Context, accountNumber string) (domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.accountByNumberLocked(accountNumber)
	if !ok {
		return domain.Account{}, domain.NotFoundf("account not found")
	}

	return account, nil
}

func (r *AccountRepository) List(_ context.Context) ([]domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(r.store.accounts))
	for _, account := range r.store.accounts {
		accounts = append(accounts, account)
	}
	sortAccountsByNumber(accounts)

	return accounts, nil
}

func (r *AccountRepository) ListByClient(_ context.Context, clientID string) ([]domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	accounts := make([]domain.Account, 0)
	for _, account := range r.store.accounts {
		if account.ClientID == clientID {
			accounts = append(accounts, account)
		}
	}
	sortAccountsByNumber(accounts)

	return accounts, nil
}

func (r *AccountRepository) ExistsByAccountNumber(_ context.Context, accountNumber string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.accountByNumberLocked(accountNumber)
	return ok, nil
}
