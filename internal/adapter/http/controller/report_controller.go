package controller

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/novabank/core-ledger/internal/adapter/http/models"
	"github.com/novabank/core-ledger/internal/commons"
)

type ReportService interface {
	Statement(ctx context.Context, accountNumber string, start, end time.Time, includePDF bool) (commons.Response[models.StatementResponse], error)
	StatementsByClient(ctx context.Context, clientID string, start, end time.Time, includePDF bool) (commons.Response[[]models.StatementResponse], error)
	AccountNumbersByClient(ctx context.Context, clientID string) (commons.Response[[]string], error)
	MovementsByClient(ctx context.Context, clientID string, start, end time.Time) (commons.Response[[]models.ClientMovementItem], error)
	MovementsByClientPDF(ctx context.Context, clientID string, start, end time.Time) (commons.Response[models.ClientMovementsPDFResponse], error)
}

type ReportController struct {
	service ReportService
}

func NewReportController(service ReportService) *ReportController {
	return &ReportController{service: service}
}

func (c *ReportController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("GET /reports/statement", wrap(c.statement))
	mux.Handle("GET /reports/statements-by-client", wrap(c.statementsByClient))
	mux.Handle("GET /reports/accounts-by-client", wrap(c.accountNumbersByClient))
	mux.Handle("GET /reports/movements-by-client", wrap(c.movementsByClient))
	mux.Handle("GET /reports/movements-by-client/pdf", wrap(c.movementsByClientPDF))
}

func (c *ReportController) statement(w http.ResponseWriter, r *http.Request) {
	logRequest(r, nil)

	accountNumber := strings.TrimSpace(r.URL.Query().Get("accountNumber"))
	if accountNumber == "" {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.StatementResponse]("validation failed", "accountNumber is required"))
		return
	}

	start, end, ok := c.dateRange(w, r)
	if !ok {
		return
	}

	includePDF, _ := strconv.ParseBool(r.URL.Query().Get("includePdf"))

	response, err := c.service.Statement(r.Context(), accountNumber, start, end, includePDF)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *ReportController) statementsByClient(w http.ResponseWriter, r *http.Request) {
	logRequest(r, nil)

	clientID, ok := c.clientID(w, r)
	if !ok {
		return
	}
	start, end, ok := c.dateRange(w, r)
	if !ok {
		return
	}

	includePDF, _ := strconv.ParseBool(r.URL.Query().Get("includePdf"))

	response, err := c.service.StatementsByClient(r.Context(), clientID, start, end, includePDF)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *ReportController) accountNumbersByClient(w http.ResponseWriter, r *http.Request) {
	clientID, ok := c.clientID(w, r)
	if !ok {
		return
	}

	response, err := c.service.AccountNumbersByClient(r.Context(), clientID)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *ReportController) movementsByClient(w http.ResponseWriter, r *http.Request) {
	logRequest(r, nil)

	clientID, ok := c.clientID(w, r)
	if !ok {
		return
	}
	start, end, ok := c.dateRange(w, r)
	if !ok {
		return
	}

	response, err := c.service.MovementsByClient(r.Context(), clientID, start, end)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *ReportController) movementsByClientPDF(w http.ResponseWriter, r *http.Request) {
	logRequest(r, nil)

	clientID, ok := c.clientID(w, r)
	if !ok {
		return
	}
	start, end, ok := c.dateRange(w, r)
	if !ok {
		return
	}

	response, err := c.service.MovementsByClientPDF(r.Context(), clientID, start, end)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	// No movements in range: an empty result, not an error.
	if response.Data == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *ReportController) clientID(w http.ResponseWriter, r *http.Request) (string, bool) {
	clientID := strings.TrimSpace(r.URL.Query().Get("clientId"))
	if clientID == "" {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.StatementResponse]("validation failed", "clientId is required"))
		return "", false
	}
	return clientID, true
}

// dateRange parses the startDate/endDate query parameters as calendar dates.
func (c *ReportController) dateRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	const layout = "2006-01-02"

	start, err := time.Parse(layout, strings.TrimSpace(r.URL.Query().Get("startDate")))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.StatementResponse]("validation failed", "startDate must be in YYYY-MM-DD format"))
		return time.Time{}, time.Time{}, false
	}

	end, err := time.Parse(layout, strings.TrimSpace(r.URL.Query().Get("endDate")))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.StatementResponse]("validation failed", "endDate must be in YYYY-MM-DD format"))
		return time.Time{}, time.Time{}, false
	}

	if end.Before(start) {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.StatementResponse]("validation failed", "endDate cannot be before startDate"))
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}
