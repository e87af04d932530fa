package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/entropy-wordle/gowordle"
)

func TestSimulate(t *testing.T) {
	d := fullDictionary(t)
	for _, solution := range []string{"karma", "heron", "petal", "cigar"} {
		// each wrong guess removes at least itself, so Len() turns always finish
		guesses, err := Simulate(d, WW(solution), []gowordle.Word{WW("raise")}, d.Len())
		require.NoError(t, err, solution)
		require.NotEmpty(t, guesses)
		assert.Equal(t, "raise", guesses[0].String())
		assert.Equal(t, solution, guesses[len(guesses)-1].String())
		t.Log(solution, gowordle.WordleWordsToStrings(guesses))
	}
}

func TestSimulateFirst20(t *testing.T) {
	wordList := []string{"cigar", "rebut", "sissy", "humph", "awake", "blush", "focal", "evade", "naval", "serve", "heath", "dwarf", "model", "karma", "stink", "grade", "quiet", "bench", "abate", "feign"}
	d := newDictionary(t, wordList...)
	guesses, err := Simulate(d, WW("karma"), []gowordle.Word{WW("cigar")}, DefaultMaxTurns)
	require.NoError(t, err)
	assert.Greater(t, 5, len(guesses))
}

func TestSimulateFirstGuessIsSolution(t *testing.T) {
	d := fullDictionary(t)
	guesses, err := Simulate(d, WW("raise"), []gowordle.Word{WW("raise")}, DefaultMaxTurns)
	require.NoError(t, err)
	assert.Equal(t, []string{"raise"}, gowordle.WordleWordsToStrings(guesses))
}

func TestSimulateSolutionNotInDictionary(t *testing.T) {
	d := fullDictionary(t)
	_, err := Simulate(d, WW("qqqqq"), nil, d.Len()+1)
	assert.ErrorIs(t, err, ErrEmptyPossibilitySet)
}

func TestSimulateNotSolved(t *testing.T) {
	d := fullDictionary(t)
	guesses, err := Simulate(d, WW("karma"), []gowordle.Word{WW("raise")}, 1)
	assert.ErrorIs(t, err, ErrNotSolved)
	assert.Len(t, guesses, 1)
}
