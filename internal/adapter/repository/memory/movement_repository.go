package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/novabank/core-ledger/internal/domain"
)

type MovementRepository struct {
	store *Store
}

func NewMovementRepository(store *Store) *MovementRepository {
	return &MovementRepository{store: store}
}

// Post holds the store write lock across the whole read-check-write sequence,
// so no concurrent posting can apply against a stale balance.
func (r *MovementRepository) Post(_ context.Context, accountNumber string, kind domain.MovementKind, amount decimal.Decimal) (domain.Movement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	account, ok := r.store.accountByNumberLocked(accountNumber)
	if !ok {
		return domain.Movement{}, domain.NotFoundf("account not found")
	}

	if !account.Active {
		return domain.Movement{}, domain.Invalidf("account is inactive")
	}

	delta, newBalance, err := domain.ApplyMovement(account.CurrentBalance, kind, amount)
	if err != nil {
		return domain.Movement{}, err
	}

	movement := domain.Movement{
		ID:               uuid.NewString(),
		AccountID:        account.ID,
		Kind:             kind,
		Amount:           delta,
		ResultingBalance: newBalance,
		CreatedAt:        r.store.now(),
	}

	r.store.movements = append(r.store.movements, movement)
	account.CurrentBalance = newBalance
	account.UpdatedAt = movement.CreatedAt
	r.store.accounts[account.ID] = account

	return movement, nil
}

func (r *MovementRepository) ListByAccount(_ context.Context, accountID string) ([]domain.Movement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	movements := make([]domain.Movement, 0)
	for _, movement := range r.store.movements {
		if movement.AccountID == accountID {
			movements = append(movements, movement)
		}
	}

	return movements, nil
}

func (r *MovementRepository) ListByAccountBetween(_ context.Context, accountID string, from, to time.Time) ([]domain.Movement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	movements := make([]domain.Movement, 0)
	for _, movement := range r.store.movements {
		if movement.AccountID == accountID && inRange(movement.CreatedAt, from, to) {
			movements = append(movements, movement)
		}
	}

	return movements, nil
}

func (r *MovementRepository) ListByClientBetween(_ context.Context, clientID string, from, to time.Time) ([]domain.ClientMovement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entries := make([]domain.ClientMovement, 0)
	for _, movement := range r.store.movements {
		account, ok := r.store.accounts[movement.AccountID]
		if !ok || account.ClientID != clientID || !inRange(movement.CreatedAt, from, to) {
			continue
		}

		var clientName string
		if client, ok := r.store.clients[account.ClientID]; ok {
			clientName = client.Name
		}

		entries = append(entries, domain.ClientMovement{
			Timestamp:        movement.CreatedAt,
			ClientName:       clientName,
			AccountNumber:    account.AccountNumber,
			AccountType:      account.AccountType,
			OpeningBalance:   account.OpeningBalance,
			Active:           account.Active,
			Amount:           movement.Amount,
			ResultingBalance: movement.ResultingBalance,
		})
	}

	return entries, nil
}

func inRange(ts, from, to time.Time) bool {
	return !ts.Before(from) && !ts.After(to)
}
