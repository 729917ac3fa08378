package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/novabank/core-ledger/internal/adapter/http/models"
	"github.com/novabank/core-ledger/internal/commons"
	"github.com/novabank/core-ledger/internal/domain"
	"github.com/novabank/core-ledger/internal/logger"
)

type ClientService struct {
	clientRepo domain.ClientRepository
}

func NewClientService(clientRepo domain.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

func (s *ClientService) CreateClient(ctx context.Context, req models.CreateClientRequest) (commons.Response[models.ClientResponse], error) {
	logger.Info("client service create client request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("client service create client validation failed", err, nil)
		return commons.ErrorResponse[models.ClientResponse]("validation failed", err.Error()), domain.Invalidf("%s", err.Error())
	}

	identification := strings.TrimSpace(req.Identification)
	taken, err := s.clientRepo.ExistsByIdentification(ctx, identification, "")
	if err != nil {
		logger.Error("client service create client identification check failed", err, nil)
		return commons.ErrorResponse[models.ClientResponse]("failed to create client", "Unable to create client right now"), err
	}
	if taken {
		err := domain.Conflictf("identification is already registered")
		return commons.ErrorResponse[models.ClientResponse](err.Error()), err
	}

	passwordHash, err := hashPassword(strings.TrimSpace(req.Password))
	if err != nil {
		logger.Error("client service create client hash password failed", err, nil)
		return commons.ErrorResponse[models.ClientResponse]("failed to create client", "failed to hash password"), err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	client := domain.Client{
		Name:           strings.TrimSpace(req.Name),
		Gender:         strings.TrimSpace(req.Gender),
		Age:            req.Age,
		Identification: identification,
		Address:        strings.TrimSpace(req.Address),
		Phone:          strings.TrimSpace(req.Phone),
		PasswordHash:   passwordHash,
		Active:         active,
	}

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			return commons.ErrorResponse[models.ClientResponse](domainErr.Message), err
		}

		logger.Error("client service create client repository failed", err, nil)
		return commons.ErrorResponse[models.ClientResponse]("failed to create client", "Unable to create client right now"), err
	}

	logger.Info("client service create client success", logger.Fields{"clientId": created.ID})

	return commons.SuccessResponse("client created successfully", toClientResponse(created)), nil
}

func (s *ClientService) UpdateClient(ctx context.Context, clientID string, req models.UpdateClientRequest) (commons.Response[models.ClientResponse], error) {
	logger.Info("client service update client request", logger.Fields{
		"clientId": clientID,
		"payload":  logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.ClientResponse]("validation failed", err.Error()), domain.Invalidf("%s", err.Error())
	}

	existing, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return s.clientLookupError(err, clientID)
	}

	identification := strings.TrimSpace(req.Identification)
	if !strings.EqualFold(existing.Identification, identification) {
		taken, err := s.clientRepo.ExistsByIdentification(ctx, identification, clientID)
		if err != nil {
			logger.Error("client service update client identification check failed", err, logger.Fields{"clientId": clientID})
			return commons.ErrorResponse[models.ClientResponse]("failed to update client", "Unable to update client right now"), err
		}
		if taken {
			err := domain.Conflictf("identification is already registered")
			return commons.ErrorResponse[models.ClientResponse](err.Error()), err
		}
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.Gender = strings.TrimSpace(req.Gender)
	existing.Age = req.Age
	existing.Identification = identification
	existing.Address = strings.TrimSpace(req.Address)
	existing.Phone = strings.TrimSpace(req.Phone)
	if req.Active != nil {
		existing.Active = *req.Active
	}

	// An empty password keeps the stored hash.
	if password := strings.TrimSpace(req.Password); password != "" {
		hash, err := hashPassword(password)
		if err != nil {
			logger.Error("client service update client hash password failed", err, logger.Fields{"clientId": clientID})
			return commons.ErrorResponse[models.ClientResponse]("failed to update client", "failed to hash password"), err
		}
		existing.PasswordHash = hash
	}

	updated, err := s.clientRepo.Update(ctx, existing)
	if err != nil {
		return s.clientLookupError(err, clientID)
	}

	return commons.SuccessResponse("client updated successfully", toClientResponse(updated)), nil
}

func (s *ClientService) DeleteClient(ctx context.Context, clientID string) (commons.Response[models.ClientResponse], error) {
	logger.Info("client service delete client request", logger.Fields{"clientId": clientID})

	if err := s.clientRepo.Delete(ctx, clientID); err != nil {
		return s.clientLookupError(err, clientID)
	}

	return commons.EmptyResponse[models.ClientResponse]("client deleted successfully"), nil
}

func (s *ClientService) GetClient(ctx context.Context, clientID string) (commons.Response[models.ClientResponse], error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return s.clientLookupError(err, clientID)
	}

	return commons.SuccessResponse("client fetched successfully", toClientResponse(client)), nil
}

func (s *ClientService) ListClients(ctx context.Context) (commons.Response[[]models.ClientResponse], error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		logger.Error("client service list clients failed", err, nil)
		return commons.ErrorResponse[[]models.ClientResponse]("failed to list clients", "Unable to list clients right now"), err
	}

	out := make([]models.ClientResponse, 0, len(clients))
	for _, client := range clients {
		out = append(out, toClientResponse(client))
	}

	return commons.SuccessResponse("clients fetched successfully", out), nil
}

func (s *ClientService) clientLookupError(err error, clientID string) (commons.Response[models.ClientResponse], error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return commons.ErrorResponse[models.ClientResponse](domainErr.Message), err
	}

	logger.Error("client service repository failed", err, logger.Fields{"clientId": clientID})
	return commons.ErrorResponse[models.ClientResponse]("failed to process client", "Unable to process client right now"), err
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func toClientResponse(client domain.Client) models.ClientResponse {
	return models.ClientResponse{
		ID:             client.ID,
		Name:           client.Name,
		Gender:         client.Gender,
		Age:            client.Age,
		Identification: client.Identification,
		Address:        client.Address,
		Phone:          client.Phone,
		Active:         client.Active,
		CreatedAt:      client.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      client.UpdatedAt.Format(time.RFC3339),
	}
}
