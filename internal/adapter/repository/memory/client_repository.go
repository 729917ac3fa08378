package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/novabank/core-ledger/internal/domain"
)

type ClientRepository struct {
	store *Store
}

func NewClientRepository(store *Store) *ClientRepository {
	return &ClientRepository{store: store}
}

func (r *ClientRepository) Create(_ context.Context, client domain.Client) (domain.Client, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.clients {
		if strings.EqualFold(existing.Identification, client.Identification) {
			return domain.Client{}, domain.Conflictf("identification is already registered")
		}
	}

	client.ID = uuid.NewString()
	client.CreatedAt = r.store.now()
	client.UpdatedAt = client.CreatedAt
	r.store.clients[client.ID] = client

	return client, nil
}

func (r *ClientRepository) Update(_ context.Context, client domain.Client) (domain.Client, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.clients[client.ID]
	if !ok {
		return domain.Client{}, domain.NotFoundf("client not found")
	}

	for id, other := range r.store.clients {
		if id != client.ID && strings.EqualFold(other.Identification, client.Identification) {
			return domain.Client{}, domain.Conflictf("identification is already registered")
		}
	}

	client.CreatedAt = existing.CreatedAt
	client.UpdatedAt = r.store.now()
	r.store.clients[client.ID] = client

	return client, nil
}

func (r *ClientRepository) Delete(_ context.Context, clientID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.clients[clientID]; !ok {
		return domain.NotFoundf("client not found")
	}
	delete(r.store.clients, clientID)

	return nil
}

func (r *ClientRepository) GetByID(_ context.Context, clientID string) (domain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	client, ok := r.store.clients[clientID]
	if !ok {
		return domain.Client{}, domain.NotFoundf("client not found")
	}

	return client, nil
}

func (r *ClientRepository) List(_ context.Context) ([]domain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	clients := make([]domain.Client, 0, len(r.store.clients))
	for _, client := range r.store.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })

	return clients, nil
}

func (r *ClientRepository) ExistsByID(_ context.Context, clientID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.clients[clientID]
	return ok, nil
}

func (r *ClientRepository) ExistsByIdentification(_ context.Context, identification string, excludeClientID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for id, client := range r.store.clients {
		if excludeClientID != "" && id == excludeClientID {
			continue
		}
		if strings.EqualFold(client.Identification, identification) {
			return true, nil
		}
	}

	return false, nil
}
