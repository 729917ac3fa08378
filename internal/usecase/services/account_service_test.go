package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novabank/core-ledger/internal/adapter/http/models"
	"github.com/novabank/core-ledger/internal/domain"
	"github.com/novabank/core-ledger/internal/usecase/services"
)

type numberGeneratorStub struct {
	numbers []string
	calls   int
}

func (g *numberGeneratorStub) Generate(int) (string, error) {
	number := g.numbers[g.calls%len(g.numbers)]
	g.calls++
	return number, nil
}

func createClient(t *testing.T, f *fixture) domain.Client {
	t.Helper()

	client, err := f.clients.Create(context.Background(), domain.Client{
		Name:           "Marianela Montalvo",
		Identification: "0998765432",
		PasswordHash:   "x",
		Active:         true,
	})
	require.NoError(t, err)
	return client
}

func TestAccountServiceCreateAccount(t *testing.T) {
	f := newFixture()
	client := createClient(t, f)
	svc := services.NewAccountService(f.accounts, f.clients, services.NewCryptoNumberGenerator())

	opening := decimal.RequireFromString("100.00")
	resp, err := svc.CreateAccount(context.Background(), client.ID, models.CreateAccountRequest{
		AccountType:    "Savings",
		OpeningBalance: &opening,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Data)

	assert.Len(t, resp.Data.AccountNumber, 9)
	for _, ch := range resp.Data.AccountNumber {
		assert.True(t, ch >= '0' && ch <= '9')
	}
	assert.True(t, resp.Data.CurrentBalance.Equal(opening))
	assert.True(t, resp.Data.OpeningBalance.Equal(opening))
	assert.True(t, resp.Data.Active)
}

func TestAccountServiceCreateAccountDefaultsToZeroBalance(t *testing.T) {
	f := newFixture()
	client := createClient(t, f)
	svc := services.NewAccountService(f.accounts, f.clients, services.NewCryptoNumberGenerator())

	resp, err := svc.CreateAccount(context.Background(), client.ID, models.CreateAccountRequest{
		AccountType: "Checking",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.True(t, resp.Data.OpeningBalance.IsZero())
	assert.True(t, resp.Data.CurrentBalance.IsZero())
}

func TestAccountServiceCreateAccountValidation(t *testing.T) {
	svc := services.NewAccountService(nil, nil, nil)

	_, err := svc.CreateAccount(context.Background(), "some-client", models.CreateAccountRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))

	negative := decimal.RequireFromString("-1.00")
	_, err = svc.CreateAccount(context.Background(), "some-client", models.CreateAccountRequest{
		AccountType:    "Savings",
		OpeningBalance: &negative,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
}

func TestAccountServiceCreateAccountUnknownClient(t *testing.T) {
	f := newFixture()
	svc := services.NewAccountService(f.accounts, f.clients, services.NewCryptoNumberGenerator())

	_, err := svc.CreateAccount(context.Background(), "missing-client", models.CreateAccountRequest{
		AccountType: "Savings",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRecordNotFound))
}

// With every candidate colliding, issuance must stop after its attempt bound
// and surface a conflict instead of looping.
func TestAccountServiceNumberSpaceExhausted(t *testing.T) {
	f := newFixture()
	client := createClient(t, f)
	generator := &numberGeneratorStub{numbers: []string{"111111111"}}
	svc := services.NewAccountService(f.accounts, f.clients, generator)

	first, err := svc.CreateAccount(context.Background(), client.ID, models.CreateAccountRequest{
		AccountType: "Savings",
	})
	require.NoError(t, err)
	assert.Equal(t, "111111111", first.Data.AccountNumber)

	generator.calls = 0
	_, err = svc.CreateAccount(context.Background(), client.ID, models.CreateAccountRequest{
		AccountType: "Checking",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Equal(t, 10, generator.calls)
}

func TestAccountServiceUpdateOnlyTypeAndActive(t *testing.T) {
	f := newFixture()
	client := createClient(t, f)
	svc := services.NewAccountService(f.accounts, f.clients, services.NewCryptoNumberGenerator())

	opening := decimal.RequireFromString("250.00")
	created, err := svc.CreateAccount(context.Background(), client.ID, models.CreateAccountRequest{
		AccountType:    "Savings",
		OpeningBalance: &opening,
	})
	require.NoError(t, err)

	newType := "Checking"
	inactive := false
	updated, err := svc.UpdateAccount(context.Background(), created.Data.ID, models.UpdateAccountRequest{
		AccountType: &newType,
		Active:      &inactive,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Data)

	assert.Equal(t, "Checking", updated.Data.AccountType)
	assert.False(t, updated.Data.Active)
	// Number and balances are immutable through this path.
	assert.Equal(t, created.Data.AccountNumber, updated.Data.AccountNumber)
	assert.True(t, updated.Data.OpeningBalance.Equal(opening))
	assert.True(t, updated.Data.CurrentBalance.Equal(opening))
}

func TestAccountServiceUpdateUnknownAccount(t *testing.T) {
	f := newFixture()
	svc := services.NewAccountService(f.accounts, f.clients, services.NewCryptoNumberGenerator())

	newType := "Checking"
	_, err := svc.UpdateAccount(context.Background(), "missing", models.UpdateAccountRequest{AccountType: &newType})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRecordNotFound))
}

func TestAccountServiceDeleteUnknownAccount(t *testing.T) {
	f := newFixture()
	svc := services.NewAccountService(f.accounts, f.clients, services.NewCryptoNumberGenerator())

	_, err := svc.DeleteAccount(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRecordNotFound))
}

func TestAccountServiceListByClientOrdersByNumber(t *testing.T) {
	f := newFixture()
	client := createClient(t, f)
	generator := &numberGeneratorStub{numbers: []string{"900000000", "100000000", "500000000"}}
	svc := services.NewAccountService(f.accounts, f.clients, generator)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateAccount(context.Background(), client.ID, models.CreateAccountRequest{AccountType: "Savings"})
		require.NoError(t, err)
	}

	resp, err := svc.ListByClient(context.Background(), client.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	require.Len(t, *resp.Data, 3)

	numbers := make([]string, 0, 3)
	for _, account := range *resp.Data {
		numbers = append(numbers, account.AccountNumber)
	}
	assert.Equal(t, []string{"100000000", "500000000", "900000000"}, numbers)
}
