package wordle

import (
	"errors"
	"fmt"

	"github.com/powellquiring/entropy-wordle/gowordle"
)

// ErrNotSolved is returned by Simulate when the secret is not found within the allowed guesses.
var ErrNotSolved = errors.New("not solved")

// DefaultMaxTurns is the number of guesses allowed by the game.
const DefaultMaxTurns = 6

// simulate one game given the first words and the solution.
// The initial guesses are played in order, after that the best suggestion is guessed.
// Returns every guess including the final, correct one.
func Simulate(dictionary *Dictionary, solution gowordle.Word, initialGuesses []gowordle.Word, maxTurns int, opts ...Option) ([]gowordle.Word, error) {
	guesser := NewGuesser(dictionary, opts...)
	guesses := []gowordle.Word{}
	for guessCount := range maxTurns {
		var nextGuess gowordle.Word
		if guessCount < len(initialGuesses) {
			nextGuess = initialGuesses[guessCount]
		} else {
			suggestions, err := guesser.Suggest(1)
			if err != nil {
				return guesses, fmt.Errorf("simulate %s: %w", solution, err)
			}
			nextGuess = suggestions[0].Word
		}
		guesses = append(guesses, nextGuess)
		answer := gowordle.WordleAnswer(solution, nextGuess)
		if answer.Solved() {
			return guesses, nil
		}
		if _, _, err := guesser.Observe(nextGuess, answer); err != nil {
			return guesses, fmt.Errorf("simulate %s: %w", solution, err)
		}
	}
	return guesses, fmt.Errorf("simulate %s: %w in %d guesses", solution, ErrNotSolved, maxTurns)
}
