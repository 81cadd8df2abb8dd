package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sprintify/sprintify-server/internal/logger"
	"github.com/sprintify/sprintify-server/internal/models"
	"github.com/sprintify/sprintify-server/internal/services"
)

// StrategyCreator defines the interface for creating a strategy document.
type StrategyCreator interface {
	CreateStrategy(ctx context.Context, productName, author string) (*models.StrategyDB, error)
}

// CreateStrategyRequest represents the JSON body for strategy creation
// swagger:model CreateStrategyRequest
type CreateStrategyRequest struct {
	// Product name
	// required: true
	// default: Sprintify
	ProductName string `json:"product_name"`

	// Author
	// required: true
	// default: John Doe
	Author string `json:"author"`
}

// StrategyErrorResponse represents an error response for strategy creation
// swagger:model StrategyErrorResponse
type StrategyErrorResponse struct {
	// Error message
	// default: no signed-in user
	Error string `json:"error"`
}

// NewCreateStrategyHandler returns an HTTP handler creating a strategy document.
// @Summary Create a strategy document
// @Description Inserts a strategy document for the signed-in user. No existence check is made; repeated calls create duplicate documents.
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createStrategyRequest body handlers.CreateStrategyRequest true "Strategy document"
// @Success 201 {object} models.StrategyDB "Created strategy"
// @Failure 401 {object} handlers.StrategyErrorResponse "No signed-in user"
// @Router /strategies [post]
func NewCreateStrategyHandler(svc StrategyCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateStrategyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(StrategyErrorResponse{Error: "invalid request body"})
			return
		}

		strategy, err := svc.CreateStrategy(r.Context(), req.ProductName, req.Author)
		if err != nil {
			if errors.Is(err, services.ErrOwnerUnresolved) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(StrategyErrorResponse{Error: "no signed-in user"})
				return
			}
			logger.Log.Errorw("create strategy failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(StrategyErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(strategy)
	}
}
