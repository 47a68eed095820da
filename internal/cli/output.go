package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case StartGameResult:
		o.printStartGameResult(v)
	case GuessResult:
		o.printGuessResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// AttributeVerdict response type (matches API)
type AttributeVerdict struct {
	Value  any    `json:"value"`
	Status string `json:"status"`
}

// PastGuess response type
type PastGuess struct {
	GuessName string                      `json:"guessName"`
	Results   map[string]AttributeVerdict `json:"results"`
	IsCorrect bool                        `json:"isCorrect"`
}

// StartGameResult response type
type StartGameResult struct {
	CharacterNames    []string    `json:"characterNames"`
	PreviousGuesses   []PastGuess `json:"previousGuesses"`
	HasWon            bool        `json:"hasWon"`
	TodayCorrectCount *int64      `json:"todayCorrectCount,omitempty"`
}

// GuessResult response type
type GuessResult struct {
	Results           map[string]AttributeVerdict `json:"results"`
	IsCorrect         bool                        `json:"isCorrect"`
	TodayCorrectCount *int64                      `json:"todayCorrectCount,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// attributeOrder fixes the column order for verdict tables
var attributeOrder = []string{
	"name", "gender", "classes", "range",
	"hairColor", "releaseYear", "weaponCount",
}

func (o *Output) printStartGameResult(r StartGameResult) {
	fmt.Printf("Roster: %d characters\n", len(r.CharacterNames))
	if r.HasWon {
		fmt.Println("Status: solved")
	} else {
		fmt.Println("Status: unsolved")
	}
	if r.TodayCorrectCount != nil {
		fmt.Printf("Solved today by: %d\n", *r.TodayCorrectCount)
	}
	if len(r.PreviousGuesses) > 0 {
		fmt.Printf("Guesses (%d):\n", len(r.PreviousGuesses))
		for _, g := range r.PreviousGuesses {
			fmt.Printf("  - %s\n", formatVerdicts(g.GuessName, g.Results))
		}
	}
}

func (o *Output) printGuessResult(r GuessResult) {
	name := ""
	if v, ok := r.Results["name"]; ok {
		name = fmt.Sprintf("%v", v.Value)
	}
	fmt.Println(formatVerdicts(name, r.Results))
	if r.IsCorrect {
		fmt.Println("Correct! You solved today's character.")
		if r.TodayCorrectCount != nil {
			fmt.Printf("Solved today by: %d\n", *r.TodayCorrectCount)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

// formatVerdicts renders one guess as "Name: attr=value[status] ..."
func formatVerdicts(name string, results map[string]AttributeVerdict) string {
	parts := make([]string, 0, len(attributeOrder))
	for _, attr := range attributeOrder {
		v, ok := results[attr]
		if !ok || attr == "name" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v[%s]", attr, v.Value, v.Status))
	}
	return fmt.Sprintf("%s: %s", name, strings.Join(parts, " "))
}
