package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/eternaldle/eternaldle-go/internal/dependencies/clock"
	"github.com/eternaldle/eternaldle-go/internal/services/game"
	"github.com/eternaldle/eternaldle-go/internal/services/roster"
	"github.com/eternaldle/eternaldle-go/internal/services/session"
	"github.com/eternaldle/eternaldle-go/internal/storage"
	"github.com/eternaldle/eternaldle-go/internal/storage/memory"
	redisstorage "github.com/eternaldle/eternaldle-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	RosterService  *roster.Service
	SessionService *session.Service
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, logger *slog.Logger) *App {
	// Create services
	rosterService := roster.New(store, logger)
	sessionService := session.New(store, clk, logger)
	gameController := game.NewController(store, rosterService, sessionService, clk, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		RosterService:  rosterService,
		SessionService: sessionService,
		GameController: gameController,
	}
}
