package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStrategyRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStrategyRepository(db)

	columns := []string{"id", "user_id", "product_name", "author", "created_at"}

	t.Run("inserts and returns row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO strategies")).
			WithArgs(int64(1), "Sprintify", "Alice").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(5), int64(1), "Sprintify", "Alice", time.Now()))

		strategy, err := repo.Save(context.Background(), 1, "Sprintify", "Alice")
		assert.NoError(t, err)
		assert.NotNil(t, strategy)
		assert.Equal(t, int64(5), strategy.StrategyID)
		assert.Equal(t, "Sprintify", strategy.ProductName)
	})

	t.Run("repeated save inserts another row", func(t *testing.T) {
		// No existence check is made: a second call creates a duplicate.
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO strategies")).
			WithArgs(int64(1), "Sprintify", "Alice").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(6), int64(1), "Sprintify", "Alice", time.Now()))

		strategy, err := repo.Save(context.Background(), 1, "Sprintify", "Alice")
		assert.NoError(t, err)
		assert.Equal(t, int64(6), strategy.StrategyID)
	})

	t.Run("insert error propagates", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO strategies")).
			WithArgs(int64(2), "X", "Y").
			WillReturnError(errors.New("connection reset"))

		strategy, err := repo.Save(context.Background(), 2, "X", "Y")
		assert.Error(t, err)
		assert.Nil(t, strategy)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStrategyRepository_GetByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStrategyRepository(db)

	columns := []string{"id", "user_id", "product_name", "author", "created_at"}

	t.Run("existing strategy", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, product_name, author, created_at")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(5), int64(1), "Sprintify", "Alice", time.Now()))

		strategy, err := repo.GetByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.NotNil(t, strategy)
		assert.Equal(t, int64(5), strategy.StrategyID)
	})

	t.Run("no strategy returns nil without error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, product_name, author, created_at")).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(columns))

		strategy, err := repo.GetByUserID(context.Background(), 2)
		assert.NoError(t, err)
		assert.Nil(t, strategy)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
