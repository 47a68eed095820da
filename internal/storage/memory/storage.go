package memory

import (
	"context"
	"sync"

	"github.com/eternaldle/eternaldle-go/internal/model"
	"github.com/eternaldle/eternaldle-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	characters map[string]*model.Character
	sessions   map[model.SessionToken]*model.GameSession
	dailies    map[string]*dailyEntry
}

// dailyEntry is one calendar date's counter row
type dailyEntry struct {
	count        int64
	solutionName string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		characters: make(map[string]*model.Character),
		sessions:   make(map[model.SessionToken]*model.GameSession),
		dailies:    make(map[string]*dailyEntry),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Character operations

func (s *Storage) SaveCharacter(ctx context.Context, character *model.Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *character
	s.characters[c.Name] = &c
	return nil
}

func (s *Storage) GetCharacter(ctx context.Context, name string) (*model.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	character, ok := s.characters[name]
	if !ok {
		return nil, model.ErrCharacterNotFound
	}
	c := *character
	return &c, nil
}

func (s *Storage) ListCharacters(ctx context.Context) ([]model.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	characters := make([]model.Character, 0, len(s.characters))
	for _, c := range s.characters {
		characters = append(characters, *c)
	}
	return characters, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, token model.SessionToken) (*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, token model.SessionToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Daily counter operations

func (s *Storage) IncrementDailyCount(ctx context.Context, date string, solutionName string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.dailies[date]
	if !ok {
		entry = &dailyEntry{solutionName: solutionName}
		s.dailies[date] = entry
	}
	entry.count++
	return entry.count, nil
}

func (s *Storage) GetDailyCount(ctx context.Context, date string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.dailies[date]
	if !ok {
		return 0, nil
	}
	return entry.count, nil
}
