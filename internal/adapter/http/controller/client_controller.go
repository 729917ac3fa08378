package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/novabank/core-ledger/internal/adapter/http/models"
	"github.com/novabank/core-ledger/internal/commons"
)

type ClientService interface {
	CreateClient(ctx context.Context, req models.CreateClientRequest) (commons.Response[models.ClientResponse], error)
	UpdateClient(ctx context.Context, clientID string, req models.UpdateClientRequest) (commons.Response[models.ClientResponse], error)
	DeleteClient(ctx context.Context, clientID string) (commons.Response[models.ClientResponse], error)
	GetClient(ctx context.Context, clientID string) (commons.Response[models.ClientResponse], error)
	ListClients(ctx context.Context) (commons.Response[[]models.ClientResponse], error)
}

type ClientController struct {
	service ClientService
}

func NewClientController(service ClientService) *ClientController {
	return &ClientController{service: service}
}

func (c *ClientController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("POST /clients", wrap(c.create))
	mux.Handle("GET /clients", wrap(c.list))
	mux.Handle("GET /clients/{clientId}", wrap(c.get))
	mux.Handle("PUT /clients/{clientId}", wrap(c.update))
	mux.Handle("DELETE /clients/{clientId}", wrap(c.delete))
}

func (c *ClientController) create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.ClientResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateClient(r.Context(), req)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (c *ClientController) update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.ClientResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.UpdateClient(r.Context(), r.PathValue("clientId"), req)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *ClientController) delete(w http.ResponseWriter, r *http.Request) {
	logRequest(r, nil)

	response, err := c.service.DeleteClient(r.Context(), r.PathValue("clientId"))
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *ClientController) get(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.GetClient(r.Context(), r.PathValue("clientId"))
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *ClientController) list(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.ListClients(r.Context())
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
