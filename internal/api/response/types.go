package response

import (
	"github.com/eternaldle/eternaldle-go/internal/model"
	"github.com/eternaldle/eternaldle-go/internal/services/game"
)

// StartGameResponse is the session's round state returned by start
type StartGameResponse struct {
	CharacterNames  []string            `json:"characterNames"`
	PreviousGuesses []model.GuessResult `json:"previousGuesses"`
	HasWon          bool                `json:"hasWon"`

	// TodayCorrectCount is omitted when the counter is unavailable
	TodayCorrectCount *int64 `json:"todayCorrectCount,omitempty"`
}

// StartGameResponseFromResult converts a controller StartResult
func StartGameResponseFromResult(r *game.StartResult) StartGameResponse {
	previous := r.PreviousGuesses
	if previous == nil {
		previous = []model.GuessResult{}
	}
	return StartGameResponse{
		CharacterNames:    r.CharacterNames,
		PreviousGuesses:   previous,
		HasWon:            r.HasWon,
		TodayCorrectCount: r.TodayCorrectCount,
	}
}

// GuessResponse is the verdict for one submitted guess
type GuessResponse struct {
	Results   map[string]model.AttributeResult `json:"results"`
	IsCorrect bool                             `json:"isCorrect"`

	// TodayCorrectCount is present on correct guesses when the counter
	// is reachable
	TodayCorrectCount *int64 `json:"todayCorrectCount,omitempty"`
}

// GuessResponseFromOutcome converts a controller GuessOutcome
func GuessResponseFromOutcome(o *game.GuessOutcome) GuessResponse {
	return GuessResponse{
		Results:           o.Result.Results,
		IsCorrect:         o.Result.IsCorrect,
		TodayCorrectCount: o.TodayCorrectCount,
	}
}
