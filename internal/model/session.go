package model

import (
	"strings"
	"time"
)

// SessionToken uniquely identifies a client's game session
type SessionToken string

// GameSession is one client's game state across requests.
// It is read and rewritten as a whole between calls; there is no
// coordination between concurrent requests for the same session.
type GameSession struct {
	Token SessionToken

	// Today's round
	Solution     *Character
	SolutionDate string // DateKey the solution was chosen for

	// Guess history for the active round, insertion order preserved,
	// unique by guess name
	PastGuesses []GuessResult

	// WonDate is the DateKey of the last correct guess, or "" if the
	// session has never won. The counter increment is guarded on it.
	WonDate string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartedFor reports whether the session holds a solution for the given date
func (s *GameSession) StartedFor(date string) bool {
	return s.Solution != nil && s.SolutionDate == date
}

// HasWonOn reports whether the session already recorded a win on the given date
func (s *GameSession) HasWonOn(date string) bool {
	return s.WonDate == date
}

// HasGuessed reports whether a guess with the given name (case-insensitive)
// is already in the history
func (s *GameSession) HasGuessed(name string) bool {
	for _, g := range s.PastGuesses {
		if strings.EqualFold(g.GuessName, name) {
			return true
		}
	}
	return false
}

// ResetRound clears the guess history and win marker ahead of a new round
func (s *GameSession) ResetRound() {
	s.PastGuesses = nil
	s.WonDate = ""
}
