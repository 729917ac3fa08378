package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/novabank/core-ledger/internal/domain"
)

type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `id, name, gender, age, identification, address, phone, password_hash, active, created_at, updated_at`

func (r *ClientRepository) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	const query = `
INSERT INTO clients (
	id,
	name,
	gender,
	age,
	identification,
	address,
	phone,
	password_hash,
	active
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING created_at, updated_at`

	client.ID = uuid.NewString()
	if err := r.db.QueryRowContext(
		ctx,
		query,
		client.ID,
		client.Name,
		client.Gender,
		client.Age,
		client.Identification,
		client.Address,
		client.Phone,
		client.PasswordHash,
		client.Active,
	).Scan(&client.CreatedAt, &client.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.Client{}, domain.Conflictf("identification is already registered")
		}
		return domain.Client{}, fmt.Errorf("create client: %w", err)
	}

	return client, nil
}

func (r *ClientRepository) Update(ctx context.Context, client domain.Client) (domain.Client, error) {
	const query = `
UPDATE clients
SET name = $2,
    gender = $3,
    age = $4,
    identification = $5,
    address = $6,
    phone = $7,
    password_hash = $8,
    active = $9,
    updated_at = NOW()
WHERE id = $1
RETURNING created_at, updated_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		client.ID,
		client.Name,
		client.Gender,
		client.Age,
		client.Identification,
		client.Address,
		client.Phone,
		client.PasswordHash,
		client.Active,
	).Scan(&client.CreatedAt, &client.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Client{}, domain.NotFoundf("client not found")
		}
		if isUniqueViolation(err) {
			return domain.Client{}, domain.Conflictf("identification is already registered")
		}
		return domain.Client{}, fmt.Errorf("update client: %w", err)
	}

	return client, nil
}

func (r *ClientRepository) Delete(ctx context.Context, clientID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, clientID)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete client rows affected: %w", err)
	}
	if rows == 0 {
		return domain.NotFoundf("client not found")
	}

	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, clientID string) (domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	var client domain.Client
	if err := r.db.QueryRowContext(ctx, query, clientID).Scan(
		&client.ID,
		&client.Name,
		&client.Gender,
		&client.Age,
		&client.Identification,
		&client.Address,
		&client.Phone,
		&client.PasswordHash,
		&client.Active,
		&client.CreatedAt,
		&client.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Client{}, domain.NotFoundf("client not found")
		}
		return domain.Client{}, fmt.Errorf("get client by id: %w", err)
	}

	return client, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Gender,
			&client.Age,
			&client.Identification,
			&client.Address,
			&client.Phone,
			&client.PasswordHash,
			&client.Active,
			&client.CreatedAt,
			&client.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clients rows: %w", err)
	}

	return clients, nil
}

func (r *ClientRepository) ExistsByID(ctx context.Context, clientID string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`, clientID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check client exists: %w", err)
	}

	return exists, nil
}

func (r *ClientRepository) ExistsByIdentification(ctx context.Context, identification string, excludeClientID string) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1
	FROM clients
	WHERE LOWER(identification) = LOWER($1)
	  AND ($2 = '' OR id <> $2::uuid)
)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, identification, excludeClientID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check identification exists: %w", err)
	}

	return exists, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
