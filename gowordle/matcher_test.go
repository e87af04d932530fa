package gowordle

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWords = []string{
	"cigar", "rebut", "sissy", "humph", "awake", "blush", "focal", "evade", "naval", "serve",
	"heath", "dwarf", "model", "karma", "stink", "grade", "quiet", "bench", "abate", "feign",
	"world", "hello", "speed", "geese", "abbey", "babes", "crane", "eerie", "llama", "allay",
}

func TestWordleAnswer(t *testing.T) {
	tests := []struct {
		secret, guess, answer string
	}{
		// the second l is green, which uses the only l in world
		{"world", "hello", "BBBGO"},
		{"abbey", "babes", "OOGGB"},
		{"crane", "eerie", "BBOBG"},
		{"abazz", "axxaa", "GBBOB"},
		{"speed", "geese", "BOGOB"},
		{"llama", "allay", "OGOOB"},
		{"abcde", "fghij", "BBBBB"},
		{"abcde", "bcdea", "OOOOO"},
		{"cigar", "cigar", "GGGGG"},
	}
	for _, tt := range tests {
		t.Run(tt.secret+"/"+tt.guess, func(t *testing.T) {
			assert.Equal(t, tt.answer, WordleAnswer(WW(tt.secret), WW(tt.guess)).String())
		})
	}
}

func TestWordleAnswerSelf(t *testing.T) {
	for _, s := range testWords {
		w := WW(s)
		answer := WordleAnswer(w, w)
		assert.Len(t, answer, WordLength)
		assert.True(t, answer.Solved(), s)
	}
}

// The number of green and yellow marks for a letter never exceeds how often it occurs in the secret.
func TestWordleAnswerDuplicateCap(t *testing.T) {
	words, err := StringsToWordleWords(testWords)
	require.NoError(t, err)
	for _, secret := range words {
		for _, guess := range words {
			answer := WordleAnswer(secret, guess)
			marked := map[byte]int{}
			for i, mark := range answer {
				letter := guess.Letter(i)
				switch mark {
				case Correct:
					assert.Equal(t, secret.Letter(i), letter)
					marked[letter]++
				case Present:
					assert.NotEqual(t, secret.Letter(i), letter)
					marked[letter]++
				}
			}
			for letter, count := range marked {
				assert.LessOrEqual(t, count, secret.Count(letter), "%s/%s", secret, guess)
			}
			// an absent letter means every copy in the secret was already used
			for i, mark := range answer {
				letter := guess.Letter(i)
				if mark == Absent {
					assert.Equal(t, secret.Count(letter), min(marked[letter], secret.Count(letter)), "%s/%s", secret, guess)
				}
			}
		}
	}
}

func WordSort(ws []Word) []string {
	s := WordleWordsToStrings(ws)
	sort.Strings(s)
	return s
}

func testMatching(t *testing.T, words []string, guess string, answer string, expected []string) {
	wwords, err := StringsToWordleWords(words)
	require.NoError(t, err)
	a, err := ParseAnswer(answer)
	require.NoError(t, err)
	matching := Matching(wwords, WW(guess), a)
	sort.Strings(expected)
	assert.Equal(t, expected, WordSort(matching))
}

func TestMatching1(t *testing.T) {
	testMatching(t,
		[]string{"aaaaa", "abbbb"},
		"aazzz", "GGBBB",
		[]string{"aaaaa"},
	)
	testMatching(t,
		[]string{"aaaaa", "abbbb"},
		"bzzzz", "OBBBB",
		[]string{"abbbb"},
	)
}

func TestMatching3(t *testing.T) {
	testMatching(t,
		[]string{"aaazz", "abbbb", "bcazz"},
		"bxxac", "OBBOB", // answer abbbb
		[]string{"abbbb"},
	)
}

func TestMatching4(t *testing.T) {
	testMatching(t,
		[]string{"aaazz", "abbzz", "abczz", "abazz", "bbazz"},
		"xabxx", "BOOBB", // answer abazz
		[]string{"abczz", "abazz", "bbazz"},
	)
}

func TestGreenYellow(t *testing.T) {
	testMatching(t,
		[]string{"aaazz", "abbzz", "abczz", "abazz", "bbazz", "azzza", "azzzz"},
		"axxxa", "GBBBO", // answer abazz
		[]string{"aaazz", "abazz"},
	)
}

func TestYellowRed(t *testing.T) {
	testMatching(t,
		[]string{"aaazz", "abbzz", "abczz", "abazz", "bbazz", "azzza", "azzzz", "aazzz", "aaazz"},
		"axxaa", "GBBOB", // answer abazz, two a's, but not 3
		[]string{"abazz", "aazzz"},
	)
}

func TestMatchingKeepsOrder(t *testing.T) {
	words, err := StringsToWordleWords([]string{"klmno", "abcde", "fghij"})
	require.NoError(t, err)
	a, err := ParseAnswer("BBBBB")
	require.NoError(t, err)
	matching := Matching(words, WW("abcde"), a)
	assert.Equal(t, []string{"klmno", "fghij"}, WordleWordsToStrings(matching))
}
