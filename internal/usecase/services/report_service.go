package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/novabank/core-ledger/internal/adapter/http/models"
	"github.com/novabank/core-ledger/internal/commons"
	"github.com/novabank/core-ledger/internal/domain"
	"github.com/novabank/core-ledger/internal/logger"
)

// Renderer turns a finished report model into a document. Implementations are
// stateless; a failure surfaces to the caller as an internal error.
type Renderer interface {
	RenderStatement(statement models.StatementResponse, start, end time.Time) ([]byte, error)
	RenderClientMovements(items []models.ClientMovementItem, start, end time.Time) ([]byte, error)
}

// ReportService reconstructs movement history over a date range. It only ever
// reads; balances shown are the live ones, the range scopes the movement list.
type ReportService struct {
	accountRepo  domain.AccountRepository
	movementRepo domain.MovementRepository
	clientRepo   domain.ClientRepository
	renderer     Renderer
}

func NewReportService(accountRepo domain.AccountRepository, movementRepo domain.MovementRepository, clientRepo domain.ClientRepository, renderer Renderer) *ReportService {
	return &ReportService{
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
		clientRepo:   clientRepo,
		renderer:     renderer,
	}
}

// reportRange widens calendar dates to instants: start day at 00:00:00 through
// the last representable instant of the end day.
func reportRange(start, end time.Time) (time.Time, time.Time) {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, 1).Add(-time.Nanosecond)
	return from, to
}

func (s *ReportService) Statement(ctx context.Context, accountNumber string, start, end time.Time, includePDF bool) (commons.Response[models.StatementResponse], error) {
	logger.Info("report service statement request", logger.Fields{
		"accountNumber": accountNumber,
		"startDate":     start.Format("2006-01-02"),
		"endDate":       end.Format("2006-01-02"),
		"includePdf":    includePDF,
	})

	account, err := s.accountRepo.GetByAccountNumber(ctx, strings.TrimSpace(accountNumber))
	if err != nil {
		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			return commons.ErrorResponse[models.StatementResponse](domainErr.Message), err
		}

		logger.Error("report service statement account lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.StatementResponse]("failed to build statement", "Unable to build statement right now"), err
	}

	statement, err := s.buildStatement(ctx, account, start, end, includePDF)
	if err != nil {
		return commons.ErrorResponse[models.StatementResponse]("failed to build statement", "Unable to build statement right now"), err
	}

	return commons.SuccessResponse("statement built successfully", statement), nil
}

func (s *ReportService) StatementsByClient(ctx context.Context, clientID string, start, end time.Time, includePDF bool) (commons.Response[[]models.StatementResponse], error) {
	logger.Info("report service statements by client request", logger.Fields{
		"clientId":  clientID,
		"startDate": start.Format("2006-01-02"),
		"endDate":   end.Format("2006-01-02"),
	})

	accounts, err := s.accountRepo.ListByClient(ctx, clientID)
	if err != nil {
		logger.Error("report service statements by client accounts lookup failed", err, logger.Fields{"clientId": clientID})
		return commons.ErrorResponse[[]models.StatementResponse]("failed to build statements", "Unable to build statements right now"), err
	}

	// A client with no accounts is an empty report, not an error.
	statements := make([]models.StatementResponse, len(accounts))
	g, gctx := errgroup.WithContext(ctx)
	for i, account := range accounts {
		g.Go(func() error {
			statement, err := s.buildStatement(gctx, account, start, end, includePDF)
			if err != nil {
				return err
			}
			statements[i] = statement
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("report service statements by client build failed", err, logger.Fields{"clientId": clientID})
		return commons.ErrorResponse[[]models.StatementResponse]("failed to build statements", "Unable to build statements right now"), err
	}

	return commons.SuccessResponse("statements built successfully", statements), nil
}

func (s *ReportService) AccountNumbersByClient(ctx context.Context, clientID string) (commons.Response[[]string], error) {
	accounts, err := s.accountRepo.ListByClient(ctx, clientID)
	if err != nil {
		logger.Error("report service account numbers by client failed", err, logger.Fields{"clientId": clientID})
		return commons.ErrorResponse[[]string]("failed to list account numbers", "Unable to list account numbers right now"), err
	}

	numbers := make([]string, 0, len(accounts))
	for _, account := range accounts {
		numbers = append(numbers, account.AccountNumber)
	}

	return commons.SuccessResponse("account numbers fetched successfully", numbers), nil
}

func (s *ReportService) MovementsByClient(ctx context.Context, clientID string, start, end time.Time) (commons.Response[[]models.ClientMovementItem], error) {
	items, err := s.clientMovementItems(ctx, clientID, start, end)
	if err != nil {
		return commons.ErrorResponse[[]models.ClientMovementItem]("failed to list movements", "Unable to list movements right now"), err
	}

	return commons.SuccessResponse("movements fetched successfully", items), nil
}

// MovementsByClientPDF renders the flattened per-client movement report. An
// empty range yields an empty response (no document), which handlers map to
// 204 instead of an error.
func (s *ReportService) MovementsByClientPDF(ctx context.Context, clientID string, start, end time.Time) (commons.Response[models.ClientMovementsPDFResponse], error) {
	items, err := s.clientMovementItems(ctx, clientID, start, end)
	if err != nil {
		return commons.ErrorResponse[models.ClientMovementsPDFResponse]("failed to render report", "Unable to render report right now"), err
	}

	if len(items) == 0 {
		return commons.EmptyResponse[models.ClientMovementsPDFResponse]("no movements in range"), nil
	}

	pdfBytes, err := s.renderer.RenderClientMovements(items, start, end)
	if err != nil {
		logger.Error("report service render client movements failed", err, logger.Fields{"clientId": clientID})
		internal := domain.Internalf("could not render report document")
		return commons.ErrorResponse[models.ClientMovementsPDFResponse](internal.Error()), internal
	}

	response := models.ClientMovementsPDFResponse{
		PDFBase64: base64.StdEncoding.EncodeToString(pdfBytes),
	}

	return commons.SuccessResponse("report rendered successfully", response), nil
}

func (s *ReportService) buildStatement(ctx context.Context, account domain.Account, start, end time.Time, includePDF bool) (models.StatementResponse, error) {
	client, err := s.clientRepo.GetByID(ctx, account.ClientID)
	if err != nil {
		return models.StatementResponse{}, err
	}

	from, to := reportRange(start, end)
	movements, err := s.movementRepo.ListByAccountBetween(ctx, account.ID, from, to)
	if err != nil {
		return models.StatementResponse{}, err
	}

	items := make([]models.StatementMovementItem, 0, len(movements))
	for _, movement := range movements {
		items = append(items, models.StatementMovementItem{
			Timestamp:        movement.CreatedAt,
			Kind:             string(movement.Kind),
			Amount:           movement.Amount,
			ResultingBalance: movement.ResultingBalance,
		})
	}

	statement := models.StatementResponse{
		AccountNumber:  account.AccountNumber,
		ClientName:     client.Name,
		CurrentBalance: account.CurrentBalance,
		Movements:      items,
	}

	// No movements means no document to render, by contract.
	if includePDF && len(items) > 0 {
		pdfBytes, err := s.renderer.RenderStatement(statement, start, end)
		if err != nil {
			logger.Error("report service render statement failed", err, logger.Fields{
				"accountNumber": account.AccountNumber,
			})
			return models.StatementResponse{}, domain.Internalf("could not render statement document")
		}
		statement.PDFBase64 = base64.StdEncoding.EncodeToString(pdfBytes)
	}

	return statement, nil
}

func (s *ReportService) clientMovementItems(ctx context.Context, clientID string, start, end time.Time) ([]models.ClientMovementItem, error) {
	from, to := reportRange(start, end)
	entries, err := s.movementRepo.ListByClientBetween(ctx, clientID, from, to)
	if err != nil {
		logger.Error("report service client movements lookup failed", err, logger.Fields{"clientId": clientID})
		return nil, err
	}

	items := make([]models.ClientMovementItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, models.ClientMovementItem{
			Timestamp:        entry.Timestamp,
			ClientName:       entry.ClientName,
			AccountNumber:    entry.AccountNumber,
			AccountType:      entry.AccountType,
			OpeningBalance:   entry.OpeningBalance,
			Active:           entry.Active,
			Amount:           entry.Amount,
			ResultingBalance: entry.ResultingBalance,
		})
	}

	return items, nil
}
