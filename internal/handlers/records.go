package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sprintify/sprintify-server/internal/logger"
	"github.com/sprintify/sprintify-server/internal/repositories"
	"github.com/sprintify/sprintify-server/internal/services"
)

// RecordInserter defines the interface for inserting a section record.
type RecordInserter interface {
	Insert(ctx context.Context, table string, values map[string]any) (map[string]any, error)
}

// RecordUpdater defines the interface for updating a section record.
type RecordUpdater interface {
	Update(ctx context.Context, table string, id int64, values map[string]any) (map[string]any, error)
}

// RecordDeleter defines the interface for deleting a section record.
type RecordDeleter interface {
	Delete(ctx context.Context, table string, id int64) error
}

// RecordErrorResponse represents an error response for record operations
// swagger:model RecordErrorResponse
type RecordErrorResponse struct {
	// Error message
	// default: unknown record table
	Error string `json:"error"`
}

// writeRecordError maps record-layer errors to HTTP statuses shared by the
// insert, update and delete handlers.
func writeRecordError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repositories.ErrUnknownTable):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(RecordErrorResponse{Error: "unknown record table"})
	case errors.Is(err, repositories.ErrUnknownColumn):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(RecordErrorResponse{Error: "unknown record column"})
	case errors.Is(err, services.ErrOwnerUnresolved):
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(RecordErrorResponse{Error: "no signed-in user"})
	case errors.Is(err, services.ErrMissingParent):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(RecordErrorResponse{Error: "no strategy document loaded"})
	case errors.Is(err, sql.ErrNoRows):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(RecordErrorResponse{Error: "record not found"})
	default:
		logger.Log.Errorw("record operation failed", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(RecordErrorResponse{Error: "Internal server error"})
	}
}

// NewInsertRecordHandler returns an HTTP handler inserting a section record.
// @Summary Insert a section record
// @Description Inserts a row into the named section table, stamped with the owner and the loaded strategy document.
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param table path string true "Section table name"
// @Param values body object true "Column values"
// @Success 201 {object} object "Stored row"
// @Failure 400 {object} handlers.RecordErrorResponse "Unknown table / invalid body"
// @Failure 409 {object} handlers.RecordErrorResponse "No strategy document loaded"
// @Router /records/{table} [post]
func NewInsertRecordHandler(svc RecordInserter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var values map[string]any
		if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RecordErrorResponse{Error: "invalid request body"})
			return
		}

		row, err := svc.Insert(r.Context(), chi.URLParam(r, "table"), values)
		if err != nil {
			writeRecordError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(row)
	}
}

// NewUpdateRecordHandler returns an HTTP handler updating a section record.
// @Summary Update a section record
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param table path string true "Section table name"
// @Param id path int true "Record ID"
// @Param values body object true "Column values"
// @Success 200 {object} object "Updated row"
// @Failure 404 {object} handlers.RecordErrorResponse "Record not found"
// @Router /records/{table}/{id} [put]
func NewUpdateRecordHandler(svc RecordUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RecordErrorResponse{Error: "invalid record id"})
			return
		}

		var values map[string]any
		if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RecordErrorResponse{Error: "invalid request body"})
			return
		}

		row, err := svc.Update(r.Context(), chi.URLParam(r, "table"), id, values)
		if err != nil {
			writeRecordError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(row)
	}
}

// NewDeleteRecordHandler returns an HTTP handler deleting a section record.
// @Summary Delete a section record
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param table path string true "Section table name"
// @Param id path int true "Record ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.RecordErrorResponse "Record not found"
// @Router /records/{table}/{id} [delete]
func NewDeleteRecordHandler(svc RecordDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RecordErrorResponse{Error: "invalid record id"})
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "table"), id); err != nil {
			writeRecordError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
