package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/novabank/core-ledger/internal/adapter/http/models"
	"github.com/novabank/core-ledger/internal/domain"
	"github.com/novabank/core-ledger/internal/usecase/services"
)

func TestClientServiceCreateClient(t *testing.T) {
	f := newFixture()
	svc := services.NewClientService(f.clients)

	resp, err := svc.CreateClient(context.Background(), models.CreateClientRequest{
		Name:           "Marianela Montalvo",
		Gender:         "F",
		Age:            32,
		Identification: "0945632177",
		Address:        "Amazonas y NNUU",
		Phone:          "097548965",
		Password:       "5678",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Data)

	assert.NotEmpty(t, resp.Data.ID)
	assert.Equal(t, "Marianela Montalvo", resp.Data.Name)
	assert.True(t, resp.Data.Active)

	stored, err := f.clients.GetByID(context.Background(), resp.Data.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("5678")))
	assert.NotEqual(t, "5678", stored.PasswordHash)
}

func TestClientServiceCreateClientValidation(t *testing.T) {
	svc := services.NewClientService(newFixture().clients)

	resp, err := svc.CreateClient(context.Background(), models.CreateClientRequest{
		Identification: "0945632177",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors[0], "name is required")
	assert.Contains(t, resp.Errors[0], "password is required")
}

func TestClientServiceCreateClientDuplicateIdentification(t *testing.T) {
	f := newFixture()
	svc := services.NewClientService(f.clients)

	req := models.CreateClientRequest{
		Name:           "Marianela Montalvo",
		Identification: "0945632177",
		Password:       "5678",
	}
	_, err := svc.CreateClient(context.Background(), req)
	require.NoError(t, err)

	req.Name = "Otra Persona"
	resp, err := svc.CreateClient(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Equal(t, "identification is already registered", resp.Message)
}

func TestClientServiceUpdateClientKeepsPasswordWhenBlank(t *testing.T) {
	f := newFixture()
	svc := services.NewClientService(f.clients)

	created, err := svc.CreateClient(context.Background(), models.CreateClientRequest{
		Name:           "Juan Osorio",
		Identification: "1712345678",
		Password:       "1234",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Data)

	before, err := f.clients.GetByID(context.Background(), created.Data.ID)
	require.NoError(t, err)

	resp, err := svc.UpdateClient(context.Background(), created.Data.ID, models.UpdateClientRequest{
		Name:           "Juan Osorio",
		Identification: "1712345678",
		Address:        "13 junio y Equinoccial",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "13 junio y Equinoccial", resp.Data.Address)

	after, err := f.clients.GetByID(context.Background(), created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
}

func TestClientServiceUpdateClientRehashesNewPassword(t *testing.T) {
	f := newFixture()
	svc := services.NewClientService(f.clients)

	created, err := svc.CreateClient(context.Background(), models.CreateClientRequest{
		Name:           "Juan Osorio",
		Identification: "1712345678",
		Password:       "1234",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Data)

	_, err = svc.UpdateClient(context.Background(), created.Data.ID, models.UpdateClientRequest{
		Name:           "Juan Osorio",
		Identification: "1712345678",
		Password:       "nuevo-secreto",
	})
	require.NoError(t, err)

	stored, err := f.clients.GetByID(context.Background(), created.Data.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nuevo-secreto")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("1234")))
}

func TestClientServiceUpdateClientIdentificationConflict(t *testing.T) {
	f := newFixture()
	svc := services.NewClientService(f.clients)

	first, err := svc.CreateClient(context.Background(), models.CreateClientRequest{
		Name:           "Jose Lema",
		Identification: "1712345678",
		Password:       "1234",
	})
	require.NoError(t, err)

	second, err := svc.CreateClient(context.Background(), models.CreateClientRequest{
		Name:           "Marianela Montalvo",
		Identification: "0945632177",
		Password:       "5678",
	})
	require.NoError(t, err)

	// Taking the other client's identification is a conflict.
	_, err = svc.UpdateClient(context.Background(), second.Data.ID, models.UpdateClientRequest{
		Name:           "Marianela Montalvo",
		Identification: "1712345678",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	// Keeping your own is not.
	_, err = svc.UpdateClient(context.Background(), first.Data.ID, models.UpdateClientRequest{
		Name:           "Jose Lema",
		Identification: "1712345678",
	})
	require.NoError(t, err)
}

func TestClientServiceUpdateUnknownClient(t *testing.T) {
	svc := services.NewClientService(newFixture().clients)

	_, err := svc.UpdateClient(context.Background(), "missing", models.UpdateClientRequest{
		Name:           "Nadie",
		Identification: "0000000000",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRecordNotFound))
}

func TestClientServiceDeleteClient(t *testing.T) {
	f := newFixture()
	svc := services.NewClientService(f.clients)

	created, err := svc.CreateClient(context.Background(), models.CreateClientRequest{
		Name:           "Juan Osorio",
		Identification: "1712345678",
		Password:       "1234",
	})
	require.NoError(t, err)

	resp, err := svc.DeleteClient(context.Background(), created.Data.ID)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data)

	_, err = svc.GetClient(context.Background(), created.Data.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRecordNotFound))
}

func TestClientServiceDeleteUnknownClient(t *testing.T) {
	svc := services.NewClientService(newFixture().clients)

	_, err := svc.DeleteClient(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRecordNotFound))
}

func TestClientServiceListClients(t *testing.T) {
	f := newFixture()
	svc := services.NewClientService(f.clients)

	for _, c := range []models.CreateClientRequest{
		{Name: "Jose Lema", Identification: "1712345678", Password: "1234"},
		{Name: "Marianela Montalvo", Identification: "0945632177", Password: "5678"},
	} {
		_, err := svc.CreateClient(context.Background(), c)
		require.NoError(t, err)
	}

	resp, err := svc.ListClients(context.Background())
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.Len(t, *resp.Data, 2)
}
