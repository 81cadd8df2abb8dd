package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sprintify/sprintify-server/internal/logger"
	"github.com/sprintify/sprintify-server/internal/models"
)

type NotificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// ListByUserID returns all notifications for the owner, oldest first.
func (r *NotificationRepository) ListByUserID(ctx context.Context, userID int64) ([]models.NotificationDB, error) {
	const query = `
		SELECT id, user_id, message, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	var notifications []models.NotificationDB
	err := r.db.SelectContext(ctx, &notifications, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(notifications),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkRead sets is_read on the owner's notification and returns the updated
// row. A row that is missing or belongs to someone else surfaces as
// sql.ErrNoRows.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) (*models.NotificationDB, error) {
	const query = `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, message, is_read, created_at
	`

	var notification models.NotificationDB
	err := r.db.GetContext(ctx, &notification, query, id, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"result", notification,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &notification, nil
}

// Delete removes the owner's notification. A row that is missing or belongs
// to someone else surfaces as sql.ErrNoRows.
func (r *NotificationRepository) Delete(ctx context.Context, id, userID int64) error {
	const query = `
		DELETE FROM notifications
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
