package domain

import (
	"context"
	"time"
)

type Client struct {
	ID             string
	Name           string
	Gender         string
	Age            int
	Identification string
	Address        string
	Phone          string
	PasswordHash   string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ClientRepository interface {
	Create(ctx context.Context, client Client) (Client, error)
	Update(ctx context.Context, client Client) (Client, error)
	Delete(ctx context.Context, clientID string) error
	GetByID(ctx context.Context, clientID string) (Client, error)
	List(ctx context.Context) ([]Client, error)
	ExistsByID(ctx context.Context, clientID string) (bool, error)
	// ExistsByIdentification reports whether another client already holds the
	// identification; excludeClientID skips the client itself on updates.
	ExistsByIdentification(ctx context.Context, identification string, excludeClientID string) (bool, error)
}
