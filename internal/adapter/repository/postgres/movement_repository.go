package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/novabank/core-ledger/internal/domain"
	"github.com/novabank/core-ledger/internal/logger"
)

type MovementRepository struct {
	db *sql.DB
}

func NewMovementRepository(db *sql.DB) *MovementRepository {
	return &MovementRepository{db: db}
}

// Post runs the full read-check-write sequence inside one transaction. The
// SELECT ... FOR UPDATE row lock serializes postings per account, so each
// posting reads the latest committed balance; postings against different
// accounts do not contend.
func (r *MovementRepository) Post(ctx context.Context, accountNumber string, kind domain.MovementKind, amount decimal.Decimal) (domain.Movement, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Movement{}, fmt.Errorf("begin posting transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const lockQuery = `
SELECT id, current_balance, active
FROM accounts
WHERE account_number = $1
FOR UPDATE`

	var accountID string
	var balance decimal.Decimal
	var active bool
	if scanErr := tx.QueryRowContext(ctx, lockQuery, accountNumber).Scan(&accountID, &balance, &active); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			err = domain.NotFoundf("account not found")
			return domain.Movement{}, err
		}
		err = fmt.Errorf("lock account for posting: %w", scanErr)
		return domain.Movement{}, err
	}

	if !active {
		err = domain.Invalidf("account is inactive")
		return domain.Movement{}, err
	}

	delta, newBalance, applyErr := domain.ApplyMovement(balance, kind, amount)
	if applyErr != nil {
		err = applyErr
		return domain.Movement{}, err
	}

	movement := domain.Movement{
		ID:               uuid.NewString(),
		AccountID:        accountID,
		Kind:             kind,
		Amount:           delta,
		ResultingBalance: newBalance,
		CreatedAt:        time.Now().UTC(),
	}

	const insertQuery = `
INSERT INTO movements (id, account_id, kind, amount, resulting_balance, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	if _, execErr := tx.ExecContext(
		ctx,
		insertQuery,
		movement.ID,
		movement.AccountID,
		movement.Kind,
		movement.Amount,
		movement.ResultingBalance,
		movement.CreatedAt,
	); execErr != nil {
		err = fmt.Errorf("insert movement: %w", execErr)
		return domain.Movement{}, err
	}

	const updateQuery = `
UPDATE accounts
SET current_balance = $2,
    updated_at = NOW()
WHERE id = $1`

	if _, execErr := tx.ExecContext(ctx, updateQuery, accountID, newBalance); execErr != nil {
		err = fmt.Errorf("update account balance: %w", execErr)
		return domain.Movement{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.Movement{}, fmt.Errorf("commit posting transaction: %w", err)
	}

	logger.Info("movement repository posting committed", logger.Fields{
		"accountNumber":    accountNumber,
		"movementId":       movement.ID,
		"kind":             movement.Kind,
		"amount":           movement.Amount,
		"resultingBalance": movement.ResultingBalance,
	})

	return movement, nil
}

const movementColumns = `id, account_id, kind, amount, resulting_balance, created_at`

func (r *MovementRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE account_id = $1 ORDER BY created_at ASC, seq ASC`

	return r.queryMovements(ctx, query, accountID)
}

func (r *MovementRepository) ListByAccountBetween(ctx context.Context, accountID string, from, to time.Time) ([]domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements
WHERE account_id = $1 AND created_at BETWEEN $2 AND $3
ORDER BY created_at ASC, seq ASC`

	return r.queryMovements(ctx, query, accountID, from, to)
}

func (r *MovementRepository) ListByClientBetween(ctx context.Context, clientID string, from, to time.Time) ([]domain.ClientMovement, error) {
	const query = `
SELECT m.created_at, c.name, a.account_number, a.account_type, a.opening_balance, a.active, m.amount, m.resulting_balance
FROM movements m
JOIN accounts a ON a.id = m.account_id
JOIN clients c ON c.id = a.client_id
WHERE a.client_id = $1
  AND m.created_at BETWEEN $2 AND $3
ORDER BY m.created_at ASC, m.seq ASC`

	rows, err := r.db.QueryContext(ctx, query, clientID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list client movements: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.ClientMovement, 0)
	for rows.Next() {
		var entry domain.ClientMovement
		if err := rows.Scan(
			&entry.Timestamp,
			&entry.ClientName,
			&entry.AccountNumber,
			&entry.AccountType,
			&entry.OpeningBalance,
			&entry.Active,
			&entry.Amount,
			&entry.ResultingBalance,
		); err != nil {
			return nil, fmt.Errorf("scan client movement: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list client movements rows: %w", err)
	}

	return entries, nil
}

func (r *MovementRepository) queryMovements(ctx context.Context, query string, args ...any) ([]domain.Movement, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query movements: %w", err)
	}
	defer rows.Close()

	movements := make([]domain.Movement, 0)
	for rows.Next() {
		var movement domain.Movement
		if err := rows.Scan(
			&movement.ID,
			&movement.AccountID,
			&movement.Kind,
			&movement.Amount,
			&movement.ResultingBalance,
			&movement.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, movement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query movements rows: %w", err)
	}

	return movements, nil
}
