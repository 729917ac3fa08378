package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/novabank/core-ledger/internal/domain"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `id, client_id, account_number, account_type, opening_balance, current_balance, active, created_at, updated_at`

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	const query = `
INSERT INTO accounts (
	id,
	client_id,
	account_number,
	account_type,
	opening_balance,
	current_balance,
	active
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at, updated_at`

	account.ID = uuid.NewString()
	if err := r.db.QueryRowContext(
		ctx,
		query,
		account.ID,
		account.ClientID,
		account.AccountNumber,
		account.AccountType,
		account.OpeningBalance,
		account.CurrentBalance,
		account.Active,
	).Scan(&account.CreatedAt, &account.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.Account{}, domain.Conflictf("account number is already assigned")
		}
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) Update(ctx context.Context, account domain.Account) (domain.Account, error) {
	const query = `
UPDATE accounts
SET account_type = $2,
    active = $3,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + accountColumns

	updated, err := scanAccount(r.db.QueryRowContext(ctx, query, account.ID, account.AccountType, account.Active))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.NotFoundf("account not found")
		}
		return domain.Account{}, fmt.Errorf("update account: %w", err)
	}

	return updated, nil
}

func (r *AccountRepository) Delete(ctx context.Context, accountID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, accountID)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete account rows affected: %w", err)
	}
	if rows == 0 {
		return domain.NotFoundf("account not found")
	}

	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, accountID string) (domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.NotFoundf("account not found")
		}
		return domain.Account{}, fmt.Errorf("get account by id: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.NotFoundf("account not found")
		}
		return domain.Account{}, fmt.Errorf("get account by number: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY NULLIF(account_number, '') ASC NULLS LAST`

	return r.queryAccounts(ctx, query)
}

func (r *AccountRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE client_id = $1 ORDER BY NULLIF(account_number, '') ASC NULLS LAST`

	return r.queryAccounts(ctx, query, clientID)
}

func (r *AccountRepository) ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE account_number = $1)`, accountNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("check account number exists: %w", err)
	}

	return exists, nil
}

func (r *AccountRepository) queryAccounts(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query accounts rows: %w", err)
	}

	return accounts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID,
		&account.ClientID,
		&account.AccountNumber,
		&account.AccountType,
		&account.OpeningBalance,
		&account.CurrentBalance,
		&account.Active,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	return account, err
}
