package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNotificationRepository_ListByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	columns := []string{"id", "user_id", "message", "is_read", "created_at"}
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("returns rows oldest first", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(1), int64(1), "Welcome to Sprintify", false, base).
				AddRow(int64(2), int64(1), "Your quiz is graded", false, base.Add(time.Hour)).
				AddRow(int64(3), int64(1), "Certificate ready", true, base.Add(2*time.Hour)))

		notifications, err := repo.ListByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, notifications, 3)
		for i := 1; i < len(notifications); i++ {
			assert.False(t, notifications[i].CreatedAt.Before(notifications[i-1].CreatedAt))
		}
	})

	t.Run("query error propagates", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC")).
			WithArgs(int64(2)).
			WillReturnError(errors.New("connection reset"))

		notifications, err := repo.ListByUserID(context.Background(), 2)
		assert.Error(t, err)
		assert.Nil(t, notifications)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	columns := []string{"id", "user_id", "message", "is_read", "created_at"}

	t.Run("returns updated row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SET is_read = TRUE")).
			WithArgs(int64(2), int64(1)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(2), int64(1), "Your quiz is graded", true, time.Now()))

		notification, err := repo.MarkRead(context.Background(), 2, 1)
		assert.NoError(t, err)
		assert.NotNil(t, notification)
		assert.True(t, notification.IsRead)
	})

	t.Run("missing row yields sql.ErrNoRows", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SET is_read = TRUE")).
			WithArgs(int64(404), int64(1)).
			WillReturnRows(sqlmock.NewRows(columns))

		notification, err := repo.MarkRead(context.Background(), 404, 1)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, notification)
	})

	t.Run("someone else's row yields sql.ErrNoRows", func(t *testing.T) {
		// The WHERE clause carries both id and owner, so a foreign row
		// matches nothing.
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND user_id = $2")).
			WithArgs(int64(2), int64(99)).
			WillReturnRows(sqlmock.NewRows(columns))

		notification, err := repo.MarkRead(context.Background(), 2, 99)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, notification)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	t.Run("deletes owned row", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notifications")).
			WithArgs(int64(2), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 2, 1))
	})

	t.Run("missing row yields sql.ErrNoRows", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notifications")).
			WithArgs(int64(404), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 404, 1), sql.ErrNoRows)
	})

	t.Run("someone else's row yields sql.ErrNoRows", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND user_id = $2")).
			WithArgs(int64(2), int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 2, 99), sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
