package handlers

import (
	"context"
	"net/http"

	"github.com/sprintify/sprintify-server/internal/logger"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context) error
}

// NewLogoutHandler returns an HTTP handler that clears the session identity.
// @Summary User logout
// @Description Clears the stored session identity.
// @Tags auth
// @Success 204 "Session cleared"
// @Failure 500 "Failed to clear session"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context()); err != nil {
			logger.Log.Errorw("logout failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
