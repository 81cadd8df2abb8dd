package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sprintify/sprintify-server/internal/logger"
	"github.com/sprintify/sprintify-server/internal/middlewares"
	"github.com/sprintify/sprintify-server/internal/models"
	"github.com/sprintify/sprintify-server/internal/services"
)

// FeedLoader defines the interface for loading the notification feed.
type FeedLoader interface {
	Load(ctx context.Context, ownerID int64) ([]models.NotificationDB, error)
}

// FeedMarker defines the interface for marking an owner's notification read.
type FeedMarker interface {
	MarkRead(ctx context.Context, id, ownerID int64) error
}

// FeedDeleter defines the interface for deleting an owner's notification.
type FeedDeleter interface {
	Delete(ctx context.Context, id, ownerID int64) error
}

// NotificationsResponse represents the notification feed
// swagger:model NotificationsResponse
type NotificationsResponse struct {
	// Notifications, oldest first
	Notifications []models.NotificationDB `json:"notifications"`
}

// NotificationErrorResponse represents an error response for notification operations
// swagger:model NotificationErrorResponse
type NotificationErrorResponse struct {
	// Error message
	// default: Failed to update notification
	Error string `json:"error"`
}

// NewListNotificationsHandler returns an HTTP handler serving the owner's feed.
// @Summary List notifications
// @Description Returns the authenticated user's notifications ordered by creation time, oldest first. A backend failure serves an empty feed.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.NotificationsResponse "Notification feed"
// @Failure 401 "Missing or invalid token"
// @Router /notifications [get]
func NewListNotificationsHandler(svc FeedLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		feed, err := svc.Load(r.Context(), ownerID)
		if err != nil {
			// Non-fatal: the feed is decoration, not a blocker. Serve what
			// we have (the empty feed) and keep the failure in the logs.
			logger.Log.Errorw("notification feed unavailable", "owner_id", ownerID, "err", err)
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(NotificationsResponse{
			Notifications: feed,
		})
	}
}

// NewMarkNotificationReadHandler returns an HTTP handler marking one notification read.
// @Summary Mark notification read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 204 "Marked read"
// @Failure 400 {object} handlers.NotificationErrorResponse "Invalid id"
// @Failure 401 "Missing or invalid token"
// @Failure 502 {object} handlers.NotificationErrorResponse "Backend failure"
// @Router /notifications/{id}/read [post]
func NewMarkNotificationReadHandler(svc FeedMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(NotificationErrorResponse{
				Error: "invalid notification id",
			})
			return
		}

		if err := svc.MarkRead(r.Context(), id, ownerID); err != nil {
			if errors.Is(err, services.ErrFeedUpdate) {
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(NotificationErrorResponse{
					Error: "Failed to update notification",
				})
				return
			}
			logger.Log.Errorw("mark read failed", "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewDeleteNotificationHandler returns an HTTP handler deleting one notification.
// @Summary Delete notification
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 204 "Deleted"
// @Failure 400 {object} handlers.NotificationErrorResponse "Invalid id"
// @Failure 401 "Missing or invalid token"
// @Failure 502 {object} handlers.NotificationErrorResponse "Backend failure"
// @Router /notifications/{id} [delete]
func NewDeleteNotificationHandler(svc FeedDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(NotificationErrorResponse{
				Error: "invalid notification id",
			})
			return
		}

		if err := svc.Delete(r.Context(), id, ownerID); err != nil {
			if errors.Is(err, services.ErrFeedDelete) {
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(NotificationErrorResponse{
					Error: "Failed to delete notification",
				})
				return
			}
			logger.Log.Errorw("delete notification failed", "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
