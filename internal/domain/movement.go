package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type MovementKind string

const (
	MovementCredit MovementKind = "Credit"
	MovementDebit  MovementKind = "Debit"
)

// Movement is one immutable credit or debit event. Amount is signed: positive
// for credits, negative for debits. ResultingBalance snapshots the account
// balance right after the movement applied and is never recomputed.
type Movement struct {
	ID               string
	AccountID        string
	Kind             MovementKind
	Amount           decimal.Decimal
	ResultingBalance decimal.Decimal
	CreatedAt        time.Time
}

// ClientMovement is a movement joined with its account and client metadata,
// as produced by the per-client report query.
type ClientMovement struct {
	Timestamp        time.Time
	ClientName       string
	AccountNumber    string
	AccountType      string
	OpeningBalance   decimal.Decimal
	Active           bool
	Amount           decimal.Decimal
	ResultingBalance decimal.Decimal
}

// ParseMovementKind normalizes a caller-supplied kind label. Both the English
// and Spanish labels are accepted, case-insensitively and trimmed.
func ParseMovementKind(raw string) (MovementKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "credit", "credito":
		return MovementCredit, nil
	case "debit", "debito":
		return MovementDebit, nil
	default:
		return "", Invalidf("movement kind must be 'Credit' or 'Debit'")
	}
}

// ApplyMovement derives the signed delta for one posting and the balance it
// produces. The magnitude must be strictly positive; the sign comes from the
// kind alone. A debit that would drive the balance negative is rejected.
func ApplyMovement(current decimal.Decimal, kind MovementKind, amount decimal.Decimal) (delta decimal.Decimal, newBalance decimal.Decimal, err error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero, Invalidf("amount must be greater than zero")
	}

	switch kind {
	case MovementCredit:
		delta = amount
	case MovementDebit:
		delta = amount.Neg()
		if current.Add(delta).IsNegative() {
			return decimal.Zero, decimal.Zero, Invalidf("insufficient funds")
		}
	default:
		return decimal.Zero, decimal.Zero, Invalidf("movement kind must be 'Credit' or 'Debit'")
	}

	return delta, current.Add(delta), nil
}

type MovementRepository interface {
	// Post applies one signed movement to the account identified by number.
	// The read-check-write sequence is atomic per account: implementations
	// hold a per-account critical section (row lock or mutex) from the
	// balance read through the balance write, on every exit path.
	Post(ctx context.Context, accountNumber string, kind MovementKind, amount decimal.Decimal) (Movement, error)
	ListByAccount(ctx context.Context, accountID string) ([]Movement, error)
	// ListByAccountBetween returns movements in [from, to] ordered by
	// timestamp ascending, ties in insertion order.
	ListByAccountBetween(ctx context.Context, accountID string, from, to time.Time) ([]Movement, error)
	ListByClientBetween(ctx context.Context, clientID string, from, to time.Time) ([]ClientMovement, error)
}
