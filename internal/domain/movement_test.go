package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novabank/core-ledger/internal/domain"
)

func TestParseMovementKind(t *testing.T) {
	cases := []struct {
		raw  string
		want domain.MovementKind
	}{
		{"Credit", domain.MovementCredit},
		{"credito", domain.MovementCredit},
		{"  CREDITO  ", domain.MovementCredit},
		{"Debit", domain.MovementDebit},
		{"DEBITO", domain.MovementDebit},
		{" debit ", domain.MovementDebit},
	}

	for _, tc := range cases {
		kind, err := domain.ParseMovementKind(tc.raw)
		require.NoError(t, err, "kind %q", tc.raw)
		assert.Equal(t, tc.want, kind, "kind %q", tc.raw)
	}
}

func TestParseMovementKindRejectsUnknownLabels(t *testing.T) {
	for _, raw := range []string{"TRANSFER", "", "  ", "creditos"} {
		_, err := domain.ParseMovementKind(raw)
		require.Error(t, err, "kind %q", raw)
		assert.True(t, errors.Is(err, domain.ErrInvalidRequest), "kind %q", raw)
	}
}

func TestApplyMovementSignLaw(t *testing.T) {
	balance := decimal.RequireFromString("100.00")

	delta, newBalance, err := domain.ApplyMovement(balance, domain.MovementCredit, decimal.RequireFromString("50.00"))
	require.NoError(t, err)
	assert.True(t, delta.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, newBalance.Equal(decimal.RequireFromString("150.00")))

	delta, newBalance, err = domain.ApplyMovement(newBalance, domain.MovementDebit, decimal.RequireFromString("40.00"))
	require.NoError(t, err)
	assert.True(t, delta.Equal(decimal.RequireFromString("-40.00")))
	assert.True(t, newBalance.Equal(decimal.RequireFromString("110.00")))
}

func TestApplyMovementRejectsOverdraft(t *testing.T) {
	balance := decimal.RequireFromString("100.00")

	_, _, err := domain.ApplyMovement(balance, domain.MovementDebit, decimal.RequireFromString("150.00"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
	assert.EqualError(t, err, "insufficient funds")
}

func TestApplyMovementAllowsDebitToExactlyZero(t *testing.T) {
	balance := decimal.RequireFromString("100.00")

	delta, newBalance, err := domain.ApplyMovement(balance, domain.MovementDebit, decimal.RequireFromString("100.00"))
	require.NoError(t, err)
	assert.True(t, delta.Equal(decimal.RequireFromString("-100.00")))
	assert.True(t, newBalance.IsZero())
}

func TestApplyMovementRejectsNonPositiveAmounts(t *testing.T) {
	balance := decimal.RequireFromString("10.00")

	for _, raw := range []string{"0", "-5.00"} {
		_, _, err := domain.ApplyMovement(balance, domain.MovementCredit, decimal.RequireFromString(raw))
		require.Error(t, err, "amount %s", raw)
		assert.True(t, errors.Is(err, domain.ErrInvalidRequest), "amount %s", raw)
	}
}
