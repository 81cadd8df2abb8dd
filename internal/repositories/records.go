package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/sprintify/sprintify-server/internal/logger"
)

// Error variables
var (
	// ErrUnknownTable is returned for table names outside the section whitelist.
	ErrUnknownTable = errors.New("unknown record table")
	// ErrUnknownColumn is returned for value keys outside the table's column whitelist.
	ErrUnknownColumn = errors.New("unknown record column")
)

// allowedTables whitelists the section tables the generic layer may touch,
// each with its writable columns. Table and column names are interpolated
// into SQL, so anything outside this set is rejected before a query is
// built. id and created_at are server-assigned and deliberately absent.
var allowedTables = map[string]map[string]struct{}{
	"strategy_features": {
		"user_id":     {},
		"strategy_id": {},
		"name":        {},
		"description": {},
	},
	"strategy_metrics": {
		"user_id":     {},
		"strategy_id": {},
		"name":        {},
		"description": {},
	},
}

// validateColumns checks every key in values against the table's column
// whitelist.
func validateColumns(columns map[string]struct{}, values map[string]any) error {
	for key := range values {
		if _, ok := columns[key]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, key)
		}
	}
	return nil
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// RecordRepository implements table-parameterized CRUD for section tables.
// Every row carries user_id; update and delete constrain on it so callers
// can only reach their own rows.
type RecordRepository struct {
	db *sqlx.DB
}

func NewRecordRepository(db *sqlx.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Insert writes a new row into table and returns the stored row.
func (r *RecordRepository) Insert(ctx context.Context, table string, values map[string]any) (map[string]any, error) {
	columns, ok := allowedTables[table]
	if !ok {
		return nil, ErrUnknownTable
	}
	if err := validateColumns(columns, values); err != nil {
		return nil, err
	}

	query, args, err := psql.Insert(table).SetMap(values).Suffix("RETURNING *").ToSql()
	if err != nil {
		return nil, err
	}

	row := map[string]any{}
	err = r.queryRow(ctx, query, args, row)

	logger.Log.Infow(
		"query", query,
		"args", args,
		"result", row,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return row, nil
}

// Update mutates the row with the given id, scoped to ownerID, and returns
// the updated row. A missing row surfaces as sql.ErrNoRows.
func (r *RecordRepository) Update(ctx context.Context, table string, id, ownerID int64, values map[string]any) (map[string]any, error) {
	columns, ok := allowedTables[table]
	if !ok {
		return nil, ErrUnknownTable
	}
	if err := validateColumns(columns, values); err != nil {
		return nil, err
	}

	query, args, err := psql.Update(table).
		SetMap(values).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, err
	}

	row := map[string]any{}
	err = r.queryRow(ctx, query, args, row)

	logger.Log.Infow(
		"query", query,
		"args", args,
		"result", row,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return row, nil
}

// Delete removes the row with the given id, scoped to ownerID. Deleting a
// row that does not exist surfaces as sql.ErrNoRows.
func (r *RecordRepository) Delete(ctx context.Context, table string, id, ownerID int64) error {
	if _, ok := allowedTables[table]; !ok {
		return ErrUnknownTable
	}

	query, args, err := psql.Delete(table).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", args,
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

// queryRow runs a single-row query and scans the result into dest.
func (r *RecordRepository) queryRow(ctx context.Context, query string, args []any, dest map[string]any) error {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return sql.ErrNoRows
	}
	if err := rows.MapScan(dest); err != nil {
		return err
	}

	return rows.Err()
}
