package services

import (
	"context"
	"errors"
	"sync"

	"github.com/sprintify/sprintify-server/internal/logger"
	"github.com/sprintify/sprintify-server/internal/models"
)

// Error variables
var (
	ErrOwnerUnresolved = errors.New("session identity not resolved to a user")
	ErrMissingParent   = errors.New("no strategy document loaded")
)

// SessionReader reads the stored session identity.
type SessionReader interface {
	Get(ctx context.Context) (string, error)
}

// RecordStore defines table-parameterized row operations.
type RecordStore interface {
	Insert(ctx context.Context, table string, values map[string]any) (map[string]any, error)
	Update(ctx context.Context, table string, id, ownerID int64, values map[string]any) (map[string]any, error)
	Delete(ctx context.Context, table string, id, ownerID int64) error
}

// StrategyStore defines strategy document row operations.
type StrategyStore interface {
	Save(ctx context.Context, userID int64, productName, author string) (*models.StrategyDB, error)
	GetByUserID(ctx context.Context, userID int64) (*models.StrategyDB, error)
}

// RecordService scopes generic section CRUD to the owner resolved from the
// session identity and stamps rows with the loaded strategy document.
type RecordService struct {
	sessions SessionReader
	users    UserReader
	records  RecordStore
	strategies StrategyStore

	mu         sync.Mutex
	ownerEmail string
	ownerID    int64
	strategy   *models.StrategyDB
}

// NewRecordService creates a new RecordService instance.
func NewRecordService(sessions SessionReader, users UserReader, records RecordStore, strategies StrategyStore) *RecordService {
	return &RecordService{
		sessions:   sessions,
		users:      users,
		records:    records,
		strategies: strategies,
	}
}

// ResolveOwner resolves the current session identity to a numeric user id.
// The session is read on every call; the id lookup is memoized per identity,
// so a logout followed by a login as someone else re-resolves and drops the
// cached strategy along with it.
func (svc *RecordService) ResolveOwner(ctx context.Context) (int64, error) {
	email, err := svc.sessions.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read session identity", "err", err)
		return 0, ErrOwnerUnresolved
	}

	svc.mu.Lock()
	if svc.ownerEmail == email && svc.ownerID != 0 {
		id := svc.ownerID
		svc.mu.Unlock()
		return id, nil
	}
	svc.mu.Unlock()

	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to resolve owner", "email", email, "err", err)
		return 0, err
	}
	if user == nil {
		logger.Log.Errorw("session identity has no user row", "email", email)
		return 0, ErrOwnerUnresolved
	}

	svc.mu.Lock()
	svc.ownerEmail = email
	svc.ownerID = user.UserID
	// The cached strategy belongs to the previous identity.
	svc.strategy = nil
	svc.mu.Unlock()

	return user.UserID, nil
}

// LoadStrategy fetches and caches the owner's strategy document. Returns nil
// without error when the owner has none yet.
func (svc *RecordService) LoadStrategy(ctx context.Context) (*models.StrategyDB, error) {
	ownerID, err := svc.ResolveOwner(ctx)
	if err != nil {
		return nil, err
	}

	strategy, err := svc.strategies.GetByUserID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to load strategy", "owner_id", ownerID, "err", err)
		return nil, err
	}

	svc.mu.Lock()
	svc.strategy = strategy
	svc.mu.Unlock()

	return strategy, nil
}

// CreateStrategy inserts a strategy document for the owner and replaces the
// cached copy. There is deliberately no existence check first: repeated
// calls create duplicate rows. Idempotence semantics are an open product
// question; do not add a guard here without an owner decision.
func (svc *RecordService) CreateStrategy(ctx context.Context, productName, author string) (*models.StrategyDB, error) {
	ownerID, err := svc.ResolveOwner(ctx)
	if err != nil {
		return nil, err
	}

	strategy, err := svc.strategies.Save(ctx, ownerID, productName, author)
	if err != nil {
		logger.Log.Errorw("failed to create strategy", "owner_id", ownerID, "err", err)
		return nil, err
	}

	svc.mu.Lock()
	svc.strategy = strategy
	svc.mu.Unlock()

	return strategy, nil
}

// Insert stamps user_id and strategy_id onto values and writes the row.
// Fails with ErrMissingParent when no strategy document exists for the
// owner.
func (svc *RecordService) Insert(ctx context.Context, table string, values map[string]any) (map[string]any, error) {
	ownerID, err := svc.ResolveOwner(ctx)
	if err != nil {
		return nil, err
	}

	svc.mu.Lock()
	strategy := svc.strategy
	svc.mu.Unlock()

	if strategy == nil {
		if strategy, err = svc.LoadStrategy(ctx); err != nil {
			return nil, err
		}
		if strategy == nil {
			return nil, ErrMissingParent
		}
	}

	stamped := make(map[string]any, len(values)+2)
	for k, v := range values {
		stamped[k] = v
	}
	stamped["user_id"] = ownerID
	stamped["strategy_id"] = strategy.StrategyID

	return svc.records.Insert(ctx, table, stamped)
}

// Update mutates an owned row. Remote errors propagate to the caller.
func (svc *RecordService) Update(ctx context.Context, table string, id int64, values map[string]any) (map[string]any, error) {
	ownerID, err := svc.ResolveOwner(ctx)
	if err != nil {
		return nil, err
	}

	return svc.records.Update(ctx, table, id, ownerID, values)
}

// Delete removes an owned row. Remote errors propagate to the caller.
func (svc *RecordService) Delete(ctx context.Context, table string, id int64) error {
	ownerID, err := svc.ResolveOwner(ctx)
	if err != nil {
		return err
	}

	return svc.records.Delete(ctx, table, id, ownerID)
}
