package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sprintify/sprintify-server/internal/logger"
	"github.com/sprintify/sprintify-server/internal/models"
)

// Error variables. Feed errors are non-fatal by intent: callers decide
// whether to display or just log them.
var (
	ErrFeedLoad   = errors.New("failed to load notifications")
	ErrFeedUpdate = errors.New("failed to mark notification read")
	ErrFeedDelete = errors.New("failed to delete notification")
)

// NotificationStore defines owner-scoped row operations for notifications.
type NotificationStore interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.NotificationDB, error)
	MarkRead(ctx context.Context, id, userID int64) (*models.NotificationDB, error)
	Delete(ctx context.Context, id, userID int64) error
}

// NotificationFeed caches the owner's notification feed in memory. The cache
// always reflects created_at ascending order as loaded; mutations replace or
// remove entries in place and never reorder.
type NotificationFeed struct {
	store NotificationStore

	mu   sync.Mutex
	feed []models.NotificationDB
}

// NewNotificationFeed creates a new NotificationFeed instance.
func NewNotificationFeed(store NotificationStore) *NotificationFeed {
	return &NotificationFeed{store: store}
}

// Load fetches the owner's notifications, oldest first. On a remote error
// the cache is emptied and the empty feed is returned together with a typed
// ErrFeedLoad so the caller can choose how loudly to fail.
func (svc *NotificationFeed) Load(ctx context.Context, ownerID int64) ([]models.NotificationDB, error) {
	rows, err := svc.store.ListByUserID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to load notification feed", "owner_id", ownerID, "err", err)

		svc.mu.Lock()
		svc.feed = nil
		svc.mu.Unlock()

		return []models.NotificationDB{}, fmt.Errorf("%w: %v", ErrFeedLoad, err)
	}

	svc.mu.Lock()
	svc.feed = rows
	svc.mu.Unlock()

	return svc.Feed(), nil
}

// MarkRead flips is_read on the owner's notification. On success the cached
// entry is replaced in place; on failure the cache is left untouched.
func (svc *NotificationFeed) MarkRead(ctx context.Context, id, ownerID int64) error {
	updated, err := svc.store.MarkRead(ctx, id, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to mark notification read", "id", id, "owner_id", ownerID, "err", err)
		return fmt.Errorf("%w: %v", ErrFeedUpdate, err)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	for i := range svc.feed {
		if svc.feed[i].NotificationID == updated.NotificationID {
			svc.feed[i] = *updated
			break
		}
	}

	return nil
}

// Delete removes the owner's notification. On success the cached entry is
// removed, preserving the order of the rest; on failure the cache is left
// untouched.
func (svc *NotificationFeed) Delete(ctx context.Context, id, ownerID int64) error {
	if err := svc.store.Delete(ctx, id, ownerID); err != nil {
		logger.Log.Errorw("failed to delete notification", "id", id, "owner_id", ownerID, "err", err)
		return fmt.Errorf("%w: %v", ErrFeedDelete, err)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	for i := range svc.feed {
		if svc.feed[i].NotificationID == id {
			svc.feed = append(svc.feed[:i], svc.feed[i+1:]...)
			break
		}
	}

	return nil
}

// Feed returns a copy of the cached feed.
func (svc *NotificationFeed) Feed() []models.NotificationDB {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	out := make([]models.NotificationDB, len(svc.feed))
	copy(out, svc.feed)
	return out
}
