package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sprintify/sprintify-server/migrations"
)

func setupPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()

	if os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("set INTEGRATION_TESTS to run container-backed tests")
	}

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	t.Cleanup(func() { container.Terminate(context.Background()) })

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.NoError(t, migrations.Migrate(db.DB))

	return db
}

func TestRepositories_Postgres(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	userReader := NewUserReadRepository(db)
	userWriter := NewUserWriteRepository(db)
	strategies := NewStrategyRepository(db)
	records := NewRecordRepository(db)
	notifications := NewNotificationRepository(db)

	user, err := userWriter.Save(ctx, "alice@example.com", "digest")
	assert.NoError(t, err)
	assert.NotZero(t, user.UserID)

	t.Run("user lookup round trip", func(t *testing.T) {
		got, err := userReader.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, user.UserID, got.UserID)

		missing, err := userReader.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	strategy, err := strategies.Save(ctx, user.UserID, "Sprintify", "Alice")
	assert.NoError(t, err)

	t.Run("strategy lookup returns oldest row", func(t *testing.T) {
		dup, err := strategies.Save(ctx, user.UserID, "Sprintify", "Alice")
		assert.NoError(t, err)
		assert.NotEqual(t, strategy.StrategyID, dup.StrategyID)

		got, err := strategies.GetByUserID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Equal(t, strategy.StrategyID, got.StrategyID)
	})

	t.Run("record CRUD is owner scoped", func(t *testing.T) {
		row, err := records.Insert(ctx, "strategy_features", map[string]any{
			"user_id":     user.UserID,
			"strategy_id": strategy.StrategyID,
			"name":        "Onboarding",
			"description": "First-run experience",
		})
		assert.NoError(t, err)
		id, ok := row["id"].(int64)
		assert.True(t, ok)

		updated, err := records.Update(ctx, "strategy_features", id, user.UserID, map[string]any{"name": "Renamed"})
		assert.NoError(t, err)
		assert.Equal(t, "Renamed", updated["name"])

		// Another owner cannot touch the row.
		_, err = records.Update(ctx, "strategy_features", id, user.UserID+1, map[string]any{"name": "Stolen"})
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.ErrorIs(t, records.Delete(ctx, "strategy_features", id, user.UserID+1), sql.ErrNoRows)

		assert.NoError(t, records.Delete(ctx, "strategy_features", id, user.UserID))
		assert.ErrorIs(t, records.Delete(ctx, "strategy_features", id, user.UserID), sql.ErrNoRows)
	})

	t.Run("notifications ordered and mutable", func(t *testing.T) {
		for i, msg := range []string{"first", "second", "third"} {
			_, err := db.ExecContext(ctx,
				`INSERT INTO notifications (user_id, message, created_at) VALUES ($1, $2, NOW() + $3 * INTERVAL '1 second')`,
				user.UserID, msg, i)
			assert.NoError(t, err)
		}

		feed, err := notifications.ListByUserID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Len(t, feed, 3)
		assert.Equal(t, "first", feed[0].Message)
		for i := 1; i < len(feed); i++ {
			assert.False(t, feed[i].CreatedAt.Before(feed[i-1].CreatedAt))
		}

		// Another user's id must not reach this feed.
		_, err = notifications.MarkRead(ctx, feed[1].NotificationID, user.UserID+1)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.ErrorIs(t, notifications.Delete(ctx, feed[0].NotificationID, user.UserID+1), sql.ErrNoRows)

		updated, err := notifications.MarkRead(ctx, feed[1].NotificationID, user.UserID)
		assert.NoError(t, err)
		assert.True(t, updated.IsRead)

		assert.NoError(t, notifications.Delete(ctx, feed[0].NotificationID, user.UserID))
		assert.ErrorIs(t, notifications.Delete(ctx, feed[0].NotificationID, user.UserID), sql.ErrNoRows)
	})
}
