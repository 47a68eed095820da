package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/eternaldle/eternaldle-go/internal/dependencies/clock"
	"github.com/eternaldle/eternaldle-go/internal/model"
	"github.com/eternaldle/eternaldle-go/internal/storage"
)

// Service manages anonymous game sessions. There are no accounts: a session
// is an opaque uuid token held in the client's cookie mapping to a
// GameSession blob in storage.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new session Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Create mints a fresh session with a new token
func (s *Service) Create(ctx context.Context) (*model.GameSession, error) {
	now := s.clock.Now()
	session := &model.GameSession{
		Token:     model.SessionToken(uuid.NewString()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("session created", slog.String("session", string(session.Token)))
	return session, nil
}

// Get loads the session for a token
func (s *Service) Get(ctx context.Context, token model.SessionToken) (*model.GameSession, error) {
	return s.storage.GetSession(ctx, token)
}

// GetOrCreate resolves a client-presented token to its session, minting a
// new one when the token is absent, malformed, or expired from storage.
func (s *Service) GetOrCreate(ctx context.Context, token string) (*model.GameSession, error) {
	if !IsValidToken(token) {
		return s.Create(ctx)
	}

	session, err := s.storage.GetSession(ctx, model.SessionToken(token))
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return s.Create(ctx)
		}
		return nil, err
	}
	return session, nil
}

// Save persists session state after a lifecycle transition
func (s *Service) Save(ctx context.Context, session *model.GameSession) error {
	session.UpdatedAt = s.clock.Now()
	return s.storage.SaveSession(ctx, session)
}

// IsValidToken reports whether a client-presented token is a well-formed
// session token (a uuid)
func IsValidToken(token string) bool {
	if token == "" {
		return false
	}
	_, err := uuid.Parse(token)
	return err == nil
}
