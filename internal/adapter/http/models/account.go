package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	AccountType string `json:"accountType"`
	// OpeningBalance defaults to zero when omitted.
	OpeningBalance *decimal.Decimal `json:"openingBalance,omitempty"`
	Active         *bool            `json:"active,omitempty"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountType) == "" {
		errs = append(errs, "accountType is required")
	}
	if r.OpeningBalance != nil && r.OpeningBalance.LessThan(decimal.Zero) {
		errs = append(errs, "openingBalance cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type UpdateAccountRequest struct {
	AccountType *string `json:"accountType,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

func (r UpdateAccountRequest) Validate() error {
	if r.AccountType != nil && strings.TrimSpace(*r.AccountType) == "" {
		return errors.New("accountType cannot be empty")
	}

	return nil
}

type AccountResponse struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"clientId"`
	AccountNumber  string          `json:"accountNumber"`
	AccountType    string          `json:"accountType"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Active         bool            `json:"active"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
}
