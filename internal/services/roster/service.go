package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/eternaldle/eternaldle-go/internal/model"
	"github.com/eternaldle/eternaldle-go/internal/storage"
)

// Service serves an immutable in-memory snapshot of the character roster.
// The snapshot is loaded once and only replaced by an explicit Reload; there
// is no background refresh.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	byName map[string]model.Character // lowercased name -> record
	names  []string                   // display names, sorted ascending
	loaded bool
}

// New creates a new roster Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		byName:  make(map[string]model.Character),
	}
}

// LoadFromStorage loads the roster snapshot from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	characters, err := s.storage.ListCharacters(ctx)
	if err != nil {
		return err
	}
	return s.load(characters)
}

// LoadFromFile seeds storage from a JSON roster file and loads the snapshot.
// This is the fresh-deployment path; existing records with the same names
// are overwritten.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var characters []model.Character
	if err := json.Unmarshal(data, &characters); err != nil {
		return fmt.Errorf("parsing roster file %s: %w", path, err)
	}

	for i := range characters {
		if err := s.storage.SaveCharacter(ctx, &characters[i]); err != nil {
			return err
		}
	}

	if err := s.load(characters); err != nil {
		return err
	}

	s.logger.Info("roster seeded from file",
		slog.String("path", path),
		slog.Int("characters", len(characters)),
	)
	return nil
}

// LoadCharacters directly loads a slice of records (useful for testing)
func (s *Service) LoadCharacters(characters []model.Character) error {
	return s.load(characters)
}

// Reload re-reads the roster from storage. Explicit administrative action;
// in-flight requests keep the snapshot they started with.
func (s *Service) Reload(ctx context.Context) error {
	return s.LoadFromStorage(ctx)
}

func (s *Service) load(characters []model.Character) error {
	if len(characters) == 0 {
		return model.ErrEmptyRoster
	}

	byName := make(map[string]model.Character, len(characters))
	names := make([]string, 0, len(characters))
	for _, c := range characters {
		if err := validate(&c); err != nil {
			return err
		}
		key := strings.ToLower(c.Name)
		if _, exists := byName[key]; exists {
			return fmt.Errorf("%w: duplicate name %q", model.ErrInvalidCharacter, c.Name)
		}
		byName[key] = c
		names = append(names, c.Name)
	}
	sort.Strings(names)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byName = byName
	s.names = names
	s.loaded = true
	return nil
}

func validate(c *model.Character) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: empty name", model.ErrInvalidCharacter)
	}
	if len(model.Tags(c.Classes)) == 0 {
		return fmt.Errorf("%w: %q has no class tags", model.ErrInvalidCharacter, c.Name)
	}
	if len(model.Tags(c.Range)) == 0 {
		return fmt.Errorf("%w: %q has no range tags", model.ErrInvalidCharacter, c.Name)
	}
	if _, err := strconv.Atoi(strings.TrimSpace(c.ReleaseYear)); err != nil {
		return fmt.Errorf("%w: %q has non-numeric release year %q", model.ErrInvalidCharacter, c.Name, c.ReleaseYear)
	}
	return nil
}

// Get resolves a guessed name (case-insensitive) to its roster record
func (s *Service) Get(name string) (*model.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	character, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, model.ErrUnknownCharacter
	}
	return &character, nil
}

// Names returns the sorted character names
func (s *Service) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Snapshot returns a copy of all records for the daily selector
func (s *Service) Snapshot() []model.Character {
	s.mu.RLock()
	defer s.mu.RUnlock()

	characters := make([]model.Character, 0, len(s.byName))
	for _, c := range s.byName {
		characters = append(characters, c)
	}
	return characters
}

// IsLoaded returns whether a roster snapshot has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Size returns the number of characters in the snapshot
func (s *Service) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byName)
}
