package model

import (
	"strconv"
	"strings"
)

// Compare evaluates a guess against the solution and produces a verdict for
// every comparable attribute. Both records must come from the same roster.
//
// IsCorrect is decided by the name match alone, never by unioning the other
// attribute verdicts.
func Compare(guess, solution *Character) *GuessResult {
	results := map[string]AttributeResult{
		AttrName: {
			Value:  guess.Name,
			Status: matchStatus(strings.EqualFold(guess.Name, solution.Name)),
		},
		AttrGender: {
			Value:  guess.Gender,
			Status: matchStatus(strings.EqualFold(guess.Gender, solution.Gender)),
		},
		AttrClasses: {
			Value:  guess.Classes,
			Status: compareTags(guess.Classes, solution.Classes),
		},
		AttrRange: {
			Value:  guess.Range,
			Status: compareTags(guess.Range, solution.Range),
		},
		AttrHairColor: {
			Value:  guess.HairColor,
			Status: matchStatus(strings.EqualFold(guess.HairColor, solution.HairColor)),
		},
		AttrReleaseYear: {
			Value:  guess.ReleaseYear,
			Status: compareNumericStrings(guess.ReleaseYear, solution.ReleaseYear),
		},
		AttrWeaponCount: {
			Value:  guess.WeaponCount,
			Status: compareNumeric(guess.WeaponCount, solution.WeaponCount),
		},
		// Display-only: carried through for the frontend, never compared
		AttrImageURL: {
			Value:  guess.ImageURL,
			Status: StatusCorrect,
		},
	}

	return &GuessResult{
		GuessName: guess.Name,
		Results:   results,
		IsCorrect: strings.EqualFold(guess.Name, solution.Name),
	}
}

func matchStatus(equal bool) Status {
	if equal {
		return StatusCorrect
	}
	return StatusIncorrect
}

// compareTags compares two comma-separated tag lists as sets:
// equal sets are correct, a non-empty intersection is partial.
func compareTags(guess, solution string) Status {
	guessSet := tagSet(guess)
	solutionSet := tagSet(solution)

	overlap := 0
	for tag := range guessSet {
		if _, ok := solutionSet[tag]; ok {
			overlap++
		}
	}

	switch {
	case overlap == len(guessSet) && overlap == len(solutionSet) && overlap > 0:
		return StatusCorrect
	case overlap > 0:
		return StatusPartial
	default:
		return StatusIncorrect
	}
}

func tagSet(list string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tag := range Tags(list) {
		set[tag] = struct{}{}
	}
	return set
}

// compareNumeric tells the player which direction the answer lies:
// "higher" means the answer is bigger than the guess.
func compareNumeric(guess, solution int) Status {
	switch {
	case guess == solution:
		return StatusCorrect
	case guess < solution:
		return StatusHigher
	default:
		return StatusLower
	}
}

func compareNumericStrings(guess, solution string) Status {
	g, err := strconv.Atoi(strings.TrimSpace(guess))
	if err != nil {
		return StatusIncorrect
	}
	s, err := strconv.Atoi(strings.TrimSpace(solution))
	if err != nil {
		return StatusIncorrect
	}
	return compareNumeric(g, s)
}
