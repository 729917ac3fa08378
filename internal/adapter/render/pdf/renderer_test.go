package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novabank/core-ledger/internal/adapter/http/models"
)

func TestRenderStatementProducesPDF(t *testing.T) {
	renderer := NewRenderer()

	statement := models.StatementResponse{
		AccountNumber:  "478758001",
		ClientName:     "Jose Lema",
		CurrentBalance: decimal.RequireFromString("1425.00"),
		Movements: []models.StatementMovementItem{
			{
				Timestamp:        time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC),
				Kind:             "Debit",
				Amount:           decimal.RequireFromString("-575.00"),
				ResultingBalance: decimal.RequireFromString("1425.00"),
			},
		},
	}

	out, err := renderer.RenderStatement(statement, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderClientMovementsProducesPDF(t *testing.T) {
	renderer := NewRenderer()

	items := []models.ClientMovementItem{
		{
			Timestamp:        time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC),
			ClientName:       "Marianela Montalvo",
			AccountNumber:    "225487001",
			AccountType:      "Checking",
			OpeningBalance:   decimal.RequireFromString("100.00"),
			Active:           true,
			Amount:           decimal.RequireFromString("600.00"),
			ResultingBalance: decimal.RequireFromString("700.00"),
		},
	}

	out, err := renderer.RenderClientMovements(items, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
