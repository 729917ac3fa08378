package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type StatementMovementItem struct {
	Timestamp        time.Time       `json:"timestamp"`
	Kind             string          `json:"kind"`
	Amount           decimal.Decimal `json:"amount"`
	ResultingBalance decimal.Decimal `json:"resultingBalance"`
}

// StatementResponse reports the live current balance; the date range scopes
// only the movement list.
type StatementResponse struct {
	AccountNumber  string                  `json:"accountNumber"`
	ClientName     string                  `json:"clientName"`
	CurrentBalance decimal.Decimal         `json:"currentBalance"`
	Movements      []StatementMovementItem `json:"movements"`
	PDFBase64      string                  `json:"pdfBase64,omitempty"`
}

type ClientMovementItem struct {
	Timestamp        time.Time       `json:"timestamp"`
	ClientName       string          `json:"clientName"`
	AccountNumber    string          `json:"accountNumber"`
	AccountType      string          `json:"accountType"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`
	Active           bool            `json:"active"`
	Amount           decimal.Decimal `json:"amount"`
	ResultingBalance decimal.Decimal `json:"resultingBalance"`
}

type ClientMovementsPDFResponse struct {
	PDFBase64 string `json:"pdfBase64"`
}
