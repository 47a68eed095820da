package redis

import (
	"fmt"

	"github.com/eternaldle/eternaldle-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "eternaldle"

// Key generation functions for each entity type

// characterKey returns the Redis key for a Character record
func characterKey(name string) string {
	return fmt.Sprintf("%s:character:%s", keyPrefix, name)
}

// characterIndexKey returns the Redis key for the SET of roster names
func characterIndexKey() string {
	return fmt.Sprintf("%s:idx:characters", keyPrefix)
}

// sessionKey returns the Redis key for a GameSession
func sessionKey(token model.SessionToken) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}

// dailyCountKey returns the Redis key for a date's correct-guess counter
func dailyCountKey(date string) string {
	return fmt.Sprintf("%s:daily:count:%s", keyPrefix, date)
}

// dailySolutionKey returns the Redis key recording a date's solution name
func dailySolutionKey(date string) string {
	return fmt.Sprintf("%s:daily:solution:%s", keyPrefix, date)
}
