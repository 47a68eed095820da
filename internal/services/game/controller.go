package game

import (
	"context"
	"log/slog"

	"github.com/eternaldle/eternaldle-go/internal/dependencies/clock"
	"github.com/eternaldle/eternaldle-go/internal/model"
	"github.com/eternaldle/eternaldle-go/internal/services/roster"
	"github.com/eternaldle/eternaldle-go/internal/services/session"
	"github.com/eternaldle/eternaldle-go/internal/storage"
)

// Controller runs the daily game lifecycle for a session: assigning the
// day's solution, evaluating guesses, and keeping the daily win counter.
type Controller struct {
	storage  storage.Storage
	roster   *roster.Service
	sessions *session.Service
	clock    clock.Clock
	logger   *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	rosterService *roster.Service,
	sessionService *session.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		roster:   rosterService,
		sessions: sessionService,
		clock:    clock,
		logger:   logger,
	}
}

// StartResult is the session's state at the beginning of a round
type StartResult struct {
	CharacterNames  []string
	PreviousGuesses []model.GuessResult
	HasWon          bool

	// TodayCorrectCount is nil when the counter read failed
	TodayCorrectCount *int64
}

// GuessOutcome is the verdict for a single submitted guess
type GuessOutcome struct {
	Result *model.GuessResult

	// TodayCorrectCount is set on a correct guess, nil when the counter
	// was unavailable
	TodayCorrectCount *int64
}

// StartGame assigns today's solution to the session. If the stored solution
// is from an earlier date the guess history and win marker are cleared
// before the new solution is written.
func (c *Controller) StartGame(ctx context.Context, sess *model.GameSession) (*StartResult, error) {
	now := c.clock.Now()
	today := model.DateKey(now)

	solution, err := model.DailySolution(c.roster.Snapshot(), now)
	if err != nil {
		return nil, err
	}

	if sess.SolutionDate != today {
		sess.ResetRound()
	}
	sess.Solution = solution
	sess.SolutionDate = today

	if err := c.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	c.logger.Info("game started",
		slog.String("session", string(sess.Token)),
		slog.String("date", today),
		slog.String("solution", solution.Name),
	)

	return &StartResult{
		CharacterNames:    c.roster.Names(),
		PreviousGuesses:   sess.PastGuesses,
		HasWon:            sess.HasWonOn(today),
		TodayCorrectCount: c.readDailyCount(ctx, today),
	}, nil
}

// SubmitGuess evaluates a guessed name against the session's solution.
// The session must hold a solution for today; a stale solution means the
// day rolled over and the client must start again.
func (c *Controller) SubmitGuess(ctx context.Context, sess *model.GameSession, guessName string) (*GuessOutcome, error) {
	now := c.clock.Now()
	today := model.DateKey(now)

	if sess == nil || !sess.StartedFor(today) {
		return nil, model.ErrGameNotStarted
	}

	guess, err := c.roster.Get(guessName)
	if err != nil {
		// Unknown name: no comparison, session untouched
		return nil, err
	}

	result := model.Compare(guess, sess.Solution)

	if !sess.HasGuessed(result.GuessName) {
		sess.PastGuesses = append(sess.PastGuesses, *result)
	}

	var count *int64
	if result.IsCorrect {
		if !sess.HasWonOn(today) {
			sess.WonDate = today
			count = c.incrementDailyCount(ctx, today, sess.Solution.Name)
		} else {
			count = c.readDailyCount(ctx, today)
		}
	}

	if err := c.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	c.logger.Info("guess submitted",
		slog.String("session", string(sess.Token)),
		slog.String("guess", result.GuessName),
		slog.Bool("correct", result.IsCorrect),
	)

	return &GuessOutcome{
		Result:            result,
		TodayCorrectCount: count,
	}, nil
}

// incrementDailyCount records one more correct-guess event for the date.
// A storage failure degrades to an unknown count: the guess verdict must
// still reach the client.
func (c *Controller) incrementDailyCount(ctx context.Context, date, solutionName string) *int64 {
	count, err := c.storage.IncrementDailyCount(ctx, date, solutionName)
	if err != nil {
		c.logger.Warn("daily counter increment failed",
			slog.String("date", date),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return &count
}

func (c *Controller) readDailyCount(ctx context.Context, date string) *int64 {
	count, err := c.storage.GetDailyCount(ctx, date)
	if err != nil {
		c.logger.Warn("daily counter read failed",
			slog.String("date", date),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return &count
}
