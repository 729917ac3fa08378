package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/novabank/core-ledger/internal/adapter/http/models"
	"github.com/novabank/core-ledger/internal/commons"
)

type MovementService interface {
	Post(ctx context.Context, req models.PostMovementRequest) (commons.Response[models.MovementResponse], error)
	ListByAccount(ctx context.Context, accountNumber string) (commons.Response[[]models.MovementResponse], error)
}

type MovementController struct {
	service MovementService
}

func NewMovementController(service MovementService) *MovementController {
	return &MovementController{service: service}
}

func (c *MovementController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("POST /movements", wrap(c.post))
	mux.Handle("GET /movements/account/{accountNumber}", wrap(c.listByAccount))
}

func (c *MovementController) post(w http.ResponseWriter, r *http.Request) {
	var req models.PostMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.MovementResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.Post(r.Context(), req)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (c *MovementController) listByAccount(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.ListByAccount(r.Context(), r.PathValue("accountNumber"))
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, statusForError(err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
