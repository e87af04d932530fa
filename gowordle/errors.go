package gowordle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a word or answer string does not have WordLength characters.
	ErrInvalidLength = errors.New("invalid length")
	// ErrInvalidCharacter is returned for a letter outside a-z or an answer symbol outside G, O, B.
	ErrInvalidCharacter = errors.New("invalid character")
)

// What is being parsed, used in error messages
type ParseKind string

const (
	KindWord   ParseKind = "word"
	KindAnswer ParseKind = "answer"
)

// ParseError describes why a word or answer string was rejected.
// Err is ErrInvalidLength or ErrInvalidCharacter.
type ParseError struct {
	Kind     ParseKind
	Input    string
	Err      error
	Expected int  // expected length, set for ErrInvalidLength
	Got      int  // actual rune count, set for ErrInvalidLength
	Position int  // rune position of the offending character
	Char     rune // offending character, set for ErrInvalidCharacter
}

func lengthError(kind ParseKind, input string, got int) *ParseError {
	return &ParseError{
		Kind:     kind,
		Input:    input,
		Err:      ErrInvalidLength,
		Expected: WordLength,
		Got:      got,
	}
}

func characterError(kind ParseKind, input string, position int, char rune) *ParseError {
	return &ParseError{
		Kind:     kind,
		Input:    input,
		Err:      ErrInvalidCharacter,
		Position: position,
		Char:     char,
	}
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrInvalidLength) {
		return fmt.Sprintf("%s %q: %v: expected %d characters, got %d", e.Kind, e.Input, e.Err, e.Expected, e.Got)
	}
	if e.Kind == KindAnswer {
		return fmt.Sprintf("%s %q: %v %q at position %d: expected G, O or B", e.Kind, e.Input, e.Err, e.Char, e.Position)
	}
	return fmt.Sprintf("%s %q: %v %q at position %d: expected a-z", e.Kind, e.Input, e.Err, e.Char, e.Position)
}

// Unwrap returns the underlying sentinel for errors.Is
func (e *ParseError) Unwrap() error {
	return e.Err
}
