package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/novabank/core-ledger/internal/adapter/http/models"
	"github.com/novabank/core-ledger/internal/commons"
	"github.com/novabank/core-ledger/internal/domain"
	"github.com/novabank/core-ledger/internal/logger"
)

const accountNumberDigits = 9
const accountNumberAttempts = 10

// AccountService owns account lifecycle and unique account-number issuance.
type AccountService struct {
	accountRepo domain.AccountRepository
	clientRepo  domain.ClientRepository
	numbers     NumberGenerator
}

func NewAccountService(accountRepo domain.AccountRepository, clientRepo domain.ClientRepository, numbers NumberGenerator) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		clientRepo:  clientRepo,
		numbers:     numbers,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, clientID string, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"clientId": clientID,
		"payload":  logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), domain.Invalidf("%s", err.Error())
	}

	exists, err := s.clientRepo.ExistsByID(ctx, clientID)
	if err != nil {
		logger.Error("account service create account client lookup failed", err, logger.Fields{"clientId": clientID})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}
	if !exists {
		err := domain.NotFoundf("client not found")
		return commons.ErrorResponse[models.AccountResponse](err.Error()), err
	}

	openingBalance := decimal.Zero
	if req.OpeningBalance != nil {
		openingBalance = req.OpeningBalance.Round(2)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	number, err := s.issueAccountNumber(ctx)
	if err != nil {
		logger.Error("account service issue account number failed", err, logger.Fields{"clientId": clientID})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", err.Error()), err
	}

	account := domain.Account{
		ClientID:       clientID,
		AccountNumber:  number,
		AccountType:    strings.TrimSpace(req.AccountType),
		OpeningBalance: openingBalance,
		CurrentBalance: openingBalance,
		Active:         active,
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("account service create account repository failed", err, logger.Fields{"clientId": clientID})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	logger.Info("account service create account success", logger.Fields{
		"accountId":     created.ID,
		"accountNumber": created.AccountNumber,
		"clientId":      created.ClientID,
	})

	return commons.SuccessResponse("account created successfully", toAccountResponse(created)), nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, accountID string, req models.UpdateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service update account request", logger.Fields{
		"accountId": accountID,
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), domain.Invalidf("%s", err.Error())
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return s.accountLookupError(err, accountID)
	}

	if req.AccountType != nil {
		account.AccountType = strings.TrimSpace(*req.AccountType)
	}
	if req.Active != nil {
		account.Active = *req.Active
	}

	updated, err := s.accountRepo.Update(ctx, account)
	if err != nil {
		return s.accountLookupError(err, accountID)
	}

	return commons.SuccessResponse("account updated successfully", toAccountResponse(updated)), nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service delete account request", logger.Fields{"accountId": accountID})

	if err := s.accountRepo.Delete(ctx, accountID); err != nil {
		return s.accountLookupError(err, accountID)
	}

	return commons.EmptyResponse[models.AccountResponse]("account deleted successfully"), nil
}

func (s *AccountService) GetByNumber(ctx context.Context, accountNumber string) (commons.Response[models.AccountResponse], error) {
	account, err := s.accountRepo.GetByAccountNumber(ctx, strings.TrimSpace(accountNumber))
	if err != nil {
		return s.accountLookupError(err, accountNumber)
	}

	return commons.SuccessResponse("account fetched successfully", toAccountResponse(account)), nil
}

func (s *AccountService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		logger.Error("account service list accounts failed", err, nil)
		return commons.ErrorResponse[[]models.AccountResponse]("failed to list accounts", "Unable to list accounts right now"), err
	}

	return commons.SuccessResponse("accounts fetched successfully", toAccountResponses(accounts)), nil
}

func (s *AccountService) ListByClient(ctx context.Context, clientID string) (commons.Response[[]models.AccountResponse], error) {
	accounts, err := s.accountRepo.ListByClient(ctx, clientID)
	if err != nil {
		logger.Error("account service list accounts by client failed", err, logger.Fields{"clientId": clientID})
		return commons.ErrorResponse[[]models.AccountResponse]("failed to list accounts", "Unable to list accounts right now"), err
	}

	return commons.SuccessResponse("accounts fetched successfully", toAccountResponses(accounts)), nil
}

// issueAccountNumber draws candidates until one is free, with a hard attempt
// bound so generation always terminates even on a crowded number space.
func (s *AccountService) issueAccountNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < accountNumberAttempts; attempt++ {
		candidate, err := s.numbers.Generate(accountNumberDigits)
		if err != nil {
			return "", err
		}

		taken, err := s.accountRepo.ExistsByAccountNumber(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", domain.Conflictf("could not issue a unique account number, try again")
}

func (s *AccountService) accountLookupError(err error, ref string) (commons.Response[models.AccountResponse], error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return commons.ErrorResponse[models.AccountResponse](domainErr.Message), err
	}

	logger.Error("account service repository failed", err, logger.Fields{"account": ref})
	return commons.ErrorResponse[models.AccountResponse]("failed to process account", "Unable to process account right now"), err
}

func toAccountResponse(account domain.Account) models.AccountResponse {
	return models.AccountResponse{
		ID:             account.ID,
		ClientID:       account.ClientID,
		AccountNumber:  account.AccountNumber,
		AccountType:    account.AccountType,
		OpeningBalance: account.OpeningBalance,
		CurrentBalance: account.CurrentBalance,
		Active:         account.Active,
		CreatedAt:      account.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      account.UpdatedAt.Format(time.RFC3339),
	}
}

func toAccountResponses(accounts []domain.Account) []models.AccountResponse {
	out := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, toAccountResponse(account))
	}
	return out
}
