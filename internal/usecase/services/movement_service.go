package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/novabank/core-ledger/internal/adapter/http/models"
	"github.com/novabank/core-ledger/internal/commons"
	"github.com/novabank/core-ledger/internal/domain"
	"github.com/novabank/core-ledger/internal/logger"
)

// MovementService posts signed movements. It is the only writer of account
// balances and movement records in the system.
type MovementService struct {
	movementRepo domain.MovementRepository
	accountRepo  domain.AccountRepository
}

func NewMovementService(movementRepo domain.MovementRepository, accountRepo domain.AccountRepository) *MovementService {
	return &MovementService{
		movementRepo: movementRepo,
		accountRepo:  accountRepo,
	}
}

// Post validates the request, normalizes the movement kind and hands the
// read-check-write sequence to the repository, which runs it atomically per
// account. Validation failures never reach the store.
func (s *MovementService) Post(ctx context.Context, req models.PostMovementRequest) (commons.Response[models.MovementResponse], error) {
	logger.Info("movement service post request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("movement service post validation failed", err, nil)
		return commons.ErrorResponse[models.MovementResponse]("validation failed", err.Error()), domain.Invalidf("%s", err.Error())
	}

	kind, err := domain.ParseMovementKind(req.Kind)
	if err != nil {
		return commons.ErrorResponse[models.MovementResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	movement, err := s.movementRepo.Post(ctx, accountNumber, kind, *req.Amount)
	if err != nil {
		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			return commons.ErrorResponse[models.MovementResponse](domainErr.Message), err
		}

		logger.Error("movement service post repository failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.MovementResponse]("failed to post movement", "Unable to post movement right now"), err
	}

	logger.Info("movement service post success", logger.Fields{
		"movementId":       movement.ID,
		"accountNumber":    accountNumber,
		"kind":             movement.Kind,
		"resultingBalance": movement.ResultingBalance,
	})

	return commons.SuccessResponse("movement posted successfully", toMovementResponse(movement)), nil
}

func (s *MovementService) ListByAccount(ctx context.Context, accountNumber string) (commons.Response[[]models.MovementResponse], error) {
	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		err := domain.Invalidf("accountNumber is required")
		return commons.ErrorResponse[[]models.MovementResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			return commons.ErrorResponse[[]models.MovementResponse](domainErr.Message), err
		}

		logger.Error("movement service list account lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[[]models.MovementResponse]("failed to list movements", "Unable to list movements right now"), err
	}

	movements, err := s.movementRepo.ListByAccount(ctx, account.ID)
	if err != nil {
		logger.Error("movement service list movements failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[[]models.MovementResponse]("failed to list movements", "Unable to list movements right now"), err
	}

	out := make([]models.MovementResponse, 0, len(movements))
	for _, movement := range movements {
		out = append(out, toMovementResponse(movement))
	}

	return commons.SuccessResponse("movements fetched successfully", out), nil
}

func toMovementResponse(movement domain.Movement) models.MovementResponse {
	return models.MovementResponse{
		ID:               movement.ID,
		AccountID:        movement.AccountID,
		Kind:             string(movement.Kind),
		Amount:           movement.Amount,
		ResultingBalance: movement.ResultingBalance,
		Timestamp:        movement.CreatedAt.Format(time.RFC3339Nano),
	}
}
