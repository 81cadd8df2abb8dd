package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sprintify/sprintify-server/internal/logger"
	"github.com/sprintify/sprintify-server/internal/models"
)

type StrategyRepository struct {
	db *sqlx.DB
}

func NewStrategyRepository(db *sqlx.DB) *StrategyRepository {
	return &StrategyRepository{db: db}
}

// Save inserts a strategy document row for the given owner and returns it.
// No existence check is made: calling Save twice creates two rows.
func (r *StrategyRepository) Save(ctx context.Context, userID int64, productName, author string) (*models.StrategyDB, error) {
	const query = `
		INSERT INTO strategies (user_id, product_name, author, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, user_id, product_name, author, created_at
	`
	args := []any{userID, productName, author}

	var strategy models.StrategyDB
	err := r.db.GetContext(ctx, &strategy, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", strategy,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &strategy, nil
}

// GetByUserID returns the owner's strategy document, or nil when none
// exists. The product flow keeps one document per user; the oldest row wins
// if duplicates were ever created.
func (r *StrategyRepository) GetByUserID(ctx context.Context, userID int64) (*models.StrategyDB, error) {
	const query = `
		SELECT id, user_id, product_name, author, created_at
		FROM strategies
		WHERE user_id = $1
		ORDER BY id
		LIMIT 1
	`

	var strategy models.StrategyDB
	err := r.db.GetContext(ctx, &strategy, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", strategy,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &strategy, nil
}
