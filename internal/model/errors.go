package model

import "errors"

// Common errors used across the application
var (
	// Roster errors
	ErrEmptyRoster       = errors.New("no characters loaded in the roster")
	ErrCharacterNotFound = errors.New("character not found")
	ErrUnknownCharacter  = errors.New("guessed name is not in the roster")
	ErrInvalidCharacter  = errors.New("invalid character record")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrGameNotStarted  = errors.New("no game started for this session")

	// Counter errors
	ErrCounterUnavailable = errors.New("daily counter unavailable")
)
