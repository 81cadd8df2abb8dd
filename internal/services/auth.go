package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sprintify/sprintify-server/internal/digest"
	"github.com/sprintify/sprintify-server/internal/logger"
	"github.com/sprintify/sprintify-server/internal/models"
)

// Error variables
var (
	ErrMissingFields      = errors.New("email and password are required")
	ErrFetchUser          = errors.New("failed to fetch user")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserAlreadyExists  = errors.New("email already registered")
	ErrLoginFailed        = errors.New("login failed")
)

// DefaultRedirectDelay is how long after a successful login the redirect
// task fires.
const DefaultRedirectDelay = 3 * time.Second

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordDigest string) (*models.UserDB, error)
}

// SessionStore defines the session identity slot.
type SessionStore interface {
	Set(ctx context.Context, identity string) error
	Clear(ctx context.Context) error
}

// TokenIssuer defines an interface for generating JWT tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RedirectSink receives the identity when a scheduled redirect fires.
type RedirectSink func(identity string)

// authEvent is published to Kafka for auth activity.
type authEvent struct {
	EventID   string `json:"event_id"`
	Kind      string `json:"kind"`
	Identity  string `json:"identity"`
	Timestamp int64  `json:"timestamp"`
}

// AuthService handles credential verification, session state and the
// post-login redirect schedule.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionStore
	tokens   TokenIssuer
	events   EventWriter
	redirect RedirectSink

	// RedirectDelay is exported so callers can shorten the schedule; it
	// defaults to DefaultRedirectDelay.
	RedirectDelay time.Duration

	mu      sync.Mutex
	pending map[int64]*time.Timer
	nextID  int64
	closed  bool
}

// NewAuthService creates a new AuthService instance. redirect may be nil, in
// which case a redirect_due event is published when the timer fires.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionStore, tokens TokenIssuer, events EventWriter, redirect RedirectSink) *AuthService {
	return &AuthService{
		reader:        reader,
		writer:        writer,
		sessions:      sessions,
		tokens:        tokens,
		events:        events,
		redirect:      redirect,
		RedirectDelay: DefaultRedirectDelay,
		pending:       make(map[int64]*time.Timer),
	}
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Submit runs one login attempt: validate, fetch, verify, then the success
// side effects in order (session write, token, event, redirect schedule).
// Submissions are not serialized against each other; each call schedules its
// own redirect.
func (svc *AuthService) Submit(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingFields
	}

	normalized := NormalizeEmail(email)

	user, err := svc.reader.GetByEmail(ctx, normalized)
	if err != nil {
		logger.Log.Errorw("failed to fetch user", "email", normalized, "err", err)
		return "", fmt.Errorf("%w: %v", ErrFetchUser, err)
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", normalized)
		return "", ErrUserNotFound
	}

	if digest.Sum(password) != user.PasswordDigest {
		logger.Log.Errorw("invalid credentials", "email", normalized)
		return "", ErrInvalidCredentials
	}

	if err := svc.sessions.Set(ctx, normalized); err != nil {
		logger.Log.Errorw("failed to write session", "email", normalized, "err", err)
		return "", fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	token, err := svc.tokens.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "email", normalized, "err", err)
		return "", fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	svc.publishAuthEvent(ctx, "login_succeeded", normalized)
	svc.scheduleRedirect(normalized)

	return token, nil
}

// Register creates a new user with the digested password.
func (svc *AuthService) Register(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrMissingFields
	}

	normalized := NormalizeEmail(email)

	user, err := svc.reader.GetByEmail(ctx, normalized)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "email", normalized, "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "email", normalized)
		return ErrUserAlreadyExists
	}

	if _, err := svc.writer.Save(ctx, normalized, digest.Sum(password)); err != nil {
		logger.Log.Errorw("failed to save user", "email", normalized, "err", err)
		return err
	}

	return nil
}

// Logout clears the session identity slot.
func (svc *AuthService) Logout(ctx context.Context) error {
	return svc.sessions.Clear(ctx)
}

// Close cancels all pending redirect tasks. Further submits still verify
// credentials but schedule nothing.
func (svc *AuthService) Close() {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.closed = true
	for id, timer := range svc.pending {
		timer.Stop()
		delete(svc.pending, id)
	}
}

// scheduleRedirect arms exactly one redirect task for this submission.
func (svc *AuthService) scheduleRedirect(identity string) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.closed {
		return
	}

	svc.nextID++
	id := svc.nextID
	svc.pending[id] = time.AfterFunc(svc.RedirectDelay, func() {
		svc.mu.Lock()
		delete(svc.pending, id)
		svc.mu.Unlock()

		if svc.redirect != nil {
			svc.redirect(identity)
			return
		}
		svc.publishAuthEvent(context.Background(), "redirect_due", identity)
	})
}

// publishAuthEvent publishes an auth event to Kafka. Failures are logged,
// never surfaced: eventing must not break a login.
func (svc *AuthService) publishAuthEvent(ctx context.Context, kind, identity string) {
	if svc.events == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "kind", kind)
		return
	}

	event := authEvent{
		EventID:   uuid.NewString(),
		Kind:      kind,
		Identity:  identity,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal auth event for Kafka", "kind", kind, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.events.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish auth event to Kafka", "kind", kind, "error", err)
	} else {
		logger.Log.Infow("Auth event published to Kafka", "kind", kind, "identity", identity)
	}
}
