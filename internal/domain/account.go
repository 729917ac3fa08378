package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Account is the ledger-side record of one client account. AccountNumber is
// issued by the registry, never taken from the caller, and CurrentBalance is
// mutated only through movement posting.
type Account struct {
	ID             string
	ClientID       string
	AccountNumber  string
	AccountType    string
	OpeningBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type AccountRepository interface {
	Create(ctx context.Context, account Account) (Account, error)
	// Update persists account_type and active only; balances and the account
	// number are immutable through this path.
	Update(ctx context.Context, account Account) (Account, error)
	Delete(ctx context.Context, accountID string) error
	GetByID(ctx context.Context, accountID string) (Account, error)
	GetByAccountNumber(ctx context.Context, accountNumber string) (Account, error)
	List(ctx context.Context) ([]Account, error)
	// ListByClient returns the client's accounts ordered by account number
	// ascending, accounts without a number last.
	ListByClient(ctx context.Context, clientID string) ([]Account, error)
	ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error)
}
