package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eternaldle/eternaldle-go/internal/model"
	"github.com/eternaldle/eternaldle-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Character operations

func (s *Storage) SaveCharacter(ctx context.Context, character *model.Character) error {
	data, err := json.Marshal(character)
	if err != nil {
		return err
	}

	// Pipeline for atomic record write + roster index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, characterKey(character.Name), data, 0)
	pipe.SAdd(ctx, characterIndexKey(), character.Name)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetCharacter(ctx context.Context, name string) (*model.Character, error) {
	data, err := s.client.Get(ctx, characterKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCharacterNotFound
		}
		return nil, err
	}

	var character model.Character
	if err := json.Unmarshal(data, &character); err != nil {
		return nil, err
	}
	return &character, nil
}

func (s *Storage) ListCharacters(ctx context.Context) ([]model.Character, error) {
	names, err := s.client.SMembers(ctx, characterIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return []model.Character{}, nil
	}

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = characterKey(name)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	characters := make([]model.Character, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index entry without a record; skip rather than fail the load
			continue
		}
		var character model.Character
		if err := json.Unmarshal([]byte(raw), &character); err != nil {
			return nil, err
		}
		characters = append(characters, character)
	}
	return characters, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey(session.Token), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetSession(ctx context.Context, token model.SessionToken) (*model.GameSession, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.GameSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, token model.SessionToken) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

// Daily counter operations

// IncrementDailyCount adds one to the date's counter with a single INCR, so
// concurrent wins from different sessions never lose an update. The date's
// solution name is recorded alongside on first increment.
func (s *Storage) IncrementDailyCount(ctx context.Context, date string, solutionName string) (int64, error) {
	pipe := s.client.Pipeline()
	incr := pipe.Incr(ctx, dailyCountKey(date))
	pipe.SetNX(ctx, dailySolutionKey(date), solutionName, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (s *Storage) GetDailyCount(ctx context.Context, date string) (int64, error) {
	count, err := s.client.Get(ctx, dailyCountKey(date)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}
