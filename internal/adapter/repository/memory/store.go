// Package memory holds in-process repository implementations backed by one
// shared store. They serve the service tests and the MEMORY_STORE=true server
// mode; semantics mirror the postgres adapters.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/novabank/core-ledger/internal/domain"
)

type Store struct {
	// One write lock covers every mutation, so the read-check-write sequence
	// of a posting is serialized per account (and, trivially, across them).
	mu        sync.RWMutex
	clients   map[string]domain.Client
	accounts  map[string]domain.Account
	movements []domain.Movement

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		clients:  make(map[string]domain.Client),
		accounts: make(map[string]domain.Account),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) accountByNumberLocked(accountNumber string) (domain.Account, bool) {
	for _, account := range s.accounts {
		if account.AccountNumber == accountNumber {
			return account, true
		}
	}
	return domain.Account{}, false
}

func sortAccountsByNumber(accounts []domain.Account) {
	sort.SliceStable(accounts, func(i, j int) bool {
		a, b := accounts[i].AccountNumber, accounts[j].AccountNumber
		if (a == "") != (b == "") {
			return b == ""
		}
		return a < b
	})
}
