package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type PostMovementRequest struct {
	AccountNumber string `json:"accountNumber"`
	// Kind accepts Credit/Debit and the Spanish Credito/Debito, any casing.
	Kind   string           `json:"kind"`
	Amount *decimal.Decimal `json:"amount"`
}

func (r PostMovementRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}
	if strings.TrimSpace(r.Kind) == "" {
		errs = append(errs, "kind is required")
	}
	if r.Amount == nil {
		errs = append(errs, "amount is required")
	} else if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type MovementResponse struct {
	ID               string          `json:"id"`
	AccountID        string          `json:"accountId"`
	Kind             string          `json:"kind"`
	Amount           decimal.Decimal `json:"amount"`
	ResultingBalance decimal.Decimal `json:"resultingBalance"`
	Timestamp        string          `json:"timestamp"`
}
