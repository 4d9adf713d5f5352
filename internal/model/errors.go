package model

import "errors"

// Common errors used across the application
var (
	// Answer errors
	ErrUnknownCategory   = errors.New("unknown category")
	ErrAnswersNotLoaded  = errors.New("answers not loaded")
	ErrAnswerSetNotFound = errors.New("answer set not found")

	// Guess errors
	ErrInvalidLetter        = errors.New("invalid letter")
	ErrLetterAlreadyGuessed = errors.New("letter already guessed")

	// Selector errors
	ErrSearchExhausted = errors.New("letter search exhausted")
)
