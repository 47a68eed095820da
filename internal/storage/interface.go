package storage

import (
	"context"

	"github.com/eternaldle/eternaldle-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Character operations
	SaveCharacter(ctx context.Context, character *model.Character) error
	GetCharacter(ctx context.Context, name string) (*model.Character, error)
	ListCharacters(ctx context.Context) ([]model.Character, error)

	// Session operations
	SaveSession(ctx context.Context, session *model.GameSession) error
	GetSession(ctx context.Context, token model.SessionToken) (*model.GameSession, error)
	DeleteSession(ctx context.Context, token model.SessionToken) error

	// Daily counter operations.
	// IncrementDailyCount performs a single atomic add-and-read; it does not
	// deduplicate by session. The at-most-once-per-session guarantee is the
	// caller's responsibility (the WonDate guard in the game controller).
	IncrementDailyCount(ctx context.Context, date string, solutionName string) (int64, error)
	GetDailyCount(ctx context.Context, date string) (int64, error)
}
