package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novabank/core-ledger/internal/adapter/http/models"
	"github.com/novabank/core-ledger/internal/adapter/repository/memory"
	"github.com/novabank/core-ledger/internal/domain"
	"github.com/novabank/core-ledger/internal/usecase/services"
)

type fixture struct {
	store     *memory.Store
	clients   *memory.ClientRepository
	accounts  *memory.AccountRepository
	movements *memory.MovementRepository
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		store:     store,
		clients:   memory.NewClientRepository(store),
		accounts:  memory.NewAccountRepository(store),
		movements: memory.NewMovementRepository(store),
	}
}

func (f *fixture) account(t *testing.T, openingBalance string) domain.Account {
	t.Helper()

	client, err := f.clients.Create(context.Background(), domain.Client{
		Name:           "Jose Lema",
		Identification: "1712345678",
		PasswordHash:   "x",
		Active:         true,
	})
	require.NoError(t, err)

	opening := decimal.RequireFromString(openingBalance)
	account, err := f.accounts.Create(context.Background(), domain.Account{
		ClientID:       client.ID,
		AccountNumber:  "225487123",
		AccountType:    "Savings",
		OpeningBalance: opening,
		CurrentBalance: opening,
		Active:         true,
	})
	require.NoError(t, err)

	return account
}

func amountPtr(raw string) *decimal.Decimal {
	amount := decimal.RequireFromString(raw)
	return &amount
}

func TestMovementServicePostCredit(t *testing.T) {
	f := newFixture()
	account := f.account(t, "100.00")
	svc := services.NewMovementService(f.movements, f.accounts)

	resp, err := svc.Post(context.Background(), models.PostMovementRequest{
		AccountNumber: account.AccountNumber,
		Kind:          "Credito",
		Amount:        amountPtr("50.00"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Credit", resp.Data.Kind)
	assert.True(t, resp.Data.Amount.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, resp.Data.ResultingBalance.Equal(decimal.RequireFromString("150.00")))
}

func TestMovementServicePostDebitAfterCredit(t *testing.T) {
	f := newFixture()
	account := f.account(t, "100.00")
	svc := services.NewMovementService(f.movements, f.accounts)

	_, err := svc.Post(context.Background(), models.PostMovementRequest{
		AccountNumber: account.AccountNumber,
		Kind:          "Credit",
		Amount:        amountPtr("50.00"),
	})
	require.NoError(t, err)

	resp, err := svc.Post(context.Background(), models.PostMovementRequest{
		AccountNumber: account.AccountNumber,
		Kind:          "Debito",
		Amount:        amountPtr("40.00"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.True(t, resp.Data.Amount.Equal(decimal.RequireFromString("-40.00")))
	assert.True(t, resp.Data.ResultingBalance.Equal(decimal.RequireFromString("60.00")))
}

func TestMovementServiceInsufficientFunds(t *testing.T) {
	f := newFixture()
	account := f.account(t, "100.00")
	svc := services.NewMovementService(f.movements, f.accounts)

	resp, err := svc.Post(context.Background(), models.PostMovementRequest{
		AccountNumber: account.AccountNumber,
		Kind:          "Debit",
		Amount:        amountPtr("150.00"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
	assert.Equal(t, "insufficient funds", resp.Message)
	assert.False(t, resp.Success)

	// Neither the balance nor the movement log changed.
	reloaded, err := f.accounts.GetByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.CurrentBalance.Equal(decimal.RequireFromString("100.00")))

	listed, err := svc.ListByAccount(context.Background(), account.AccountNumber)
	require.NoError(t, err)
	require.NotNil(t, listed.Data)
	assert.Empty(t, *listed.Data)
}

func TestMovementServiceUnknownKind(t *testing.T) {
	f := newFixture()
	account := f.account(t, "100.00")
	svc := services.NewMovementService(f.movements, f.accounts)

	_, err := svc.Post(context.Background(), models.PostMovementRequest{
		AccountNumber: account.AccountNumber,
		Kind:          "TRANSFER",
		Amount:        amountPtr("10.00"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))

	listed, err := svc.ListByAccount(context.Background(), account.AccountNumber)
	require.NoError(t, err)
	assert.Empty(t, *listed.Data)
}

func TestMovementServiceBlankAccountNumber(t *testing.T) {
	svc := services.NewMovementService(nil, nil)

	_, err := svc.Post(context.Background(), models.PostMovementRequest{
		AccountNumber: "   ",
		Kind:          "Credit",
		Amount:        amountPtr("10.00"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
}

func TestMovementServiceMissingAmount(t *testing.T) {
	svc := services.NewMovementService(nil, nil)

	_, err := svc.Post(context.Background(), models.PostMovementRequest{
		AccountNumber: "225487123",
		Kind:          "Credit",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
}

func TestMovementServiceUnknownAccount(t *testing.T) {
	f := newFixture()
	svc := services.NewMovementService(f.movements, f.accounts)

	_, err := svc.Post(context.Background(), models.PostMovementRequest{
		AccountNumber: "999999999",
		Kind:          "Credit",
		Amount:        amountPtr("10.00"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRecordNotFound))
}
