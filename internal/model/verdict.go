package model

// Status is the per-attribute comparison outcome
type Status string

const (
	StatusCorrect   Status = "correct"
	StatusPartial   Status = "partial"   // set-overlap attributes: some but not all tags match
	StatusHigher    Status = "higher"    // numeric attributes: the answer is higher than the guess
	StatusLower     Status = "lower"     // numeric attributes: the answer is lower than the guess
	StatusIncorrect Status = "incorrect"
)

// AttributeResult carries the guess's value for one attribute and its verdict
type AttributeResult struct {
	Value  any    `json:"value"`
	Status Status `json:"status"`
}

// GuessResult is the full verdict for a single guess
type GuessResult struct {
	GuessName string                     `json:"guessName"`
	Results   map[string]AttributeResult `json:"results"`
	IsCorrect bool                       `json:"isCorrect"`
}
