package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/novabank/core-ledger/internal/adapter/http/models"
	"github.com/novabank/core-ledger/internal/commons"
)

type AccountService interface {
	CreateAccount(ctx context.Context, clientID string, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error)
	UpdateAccount(ctx context.Context, accountID string, req models.UpdateAccountRequest) (commons.Response[models.AccountResponse], error)
	DeleteAccount(ctx context.Context, accountID string) (commons.Response[models.AccountResponse], error)
	GetByNumber(ctx context.Context, accountNumber string) (commons.Response[models.AccountResponse], error)
	ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error)
	ListByClient(ctx context.Context, clientID string) (commons.Response[[]models.AccountResponse], error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("GET /accounts", wrap(c.list))
	mux.Handle("GET /accounts/number/{accountNumber}", wrap(c.getByNumber))
	mux.Handle("POST /accounts/client/{clientId}", wrap(c.create))
	mux.Handle("GET /accounts/client/{clientId}", wrap(c.listByClient))
	mux.Handle("PUT /accounts/{accountId}", wrap(c.update))
	mux.Handle("DELETE /accounts/{accountId}", wrap(c.delete))
}

func (c *AccountController) create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateAccount(r.Context(), r.PathValue("clientId"), req)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (c *AccountController) update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.UpdateAccount(r.Context(), r.PathValue("accountId"), req)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) delete(w http.ResponseWriter, r *http.Request) {
	logRequest(r, nil)

	response, err := c.service.DeleteAccount(r.Context(), r.PathValue("accountId"))
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) getByNumber(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.GetByNumber(r.Context(), r.PathValue("accountNumber"))
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) list(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.ListAccounts(r.Context())
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) listByClient(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.ListByClient(r.Context(), r.PathValue("clientId"))
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
