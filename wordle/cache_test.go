package wordle

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/entropy-wordle/gowordle"
)

func newAnswerCache(t testing.TB, d *Dictionary) *AnswerCache {
	t.Helper()
	cache, err := NewAnswerCache(d, 4, nil)
	require.NoError(t, err)
	return cache
}

func TestAnswerCache(t *testing.T) {
	d := newDictionary(t, "world", "hello", "abbey", "babes", "llama", "allay", "hello")
	progress := &countingProgress{}
	cache, err := NewAnswerCache(d, 0, progress)
	require.NoError(t, err)
	assert.Equal(t, d.Len(), progress.total)
	assert.Same(t, d, cache.Dictionary())
	for secret := range d.Len() {
		for guess := range d.Len() {
			expected := gowordle.WordleAnswer(d.Word(WordleWord(secret)), d.Word(WordleWord(guess)))
			assert.Equal(t, expected, cache.Answer(WordleWord(secret), WordleWord(guess)), "%s %s", d.String(WordleWord(secret)), d.String(WordleWord(guess)))
			assert.Equal(t, expected.Code(), cache.Code(WordleWord(secret), WordleWord(guess)))
		}
	}
	hello, _ := d.Lookup("hello")
	world, _ := d.Lookup("world")
	assert.Equal(t, "BBBGO", cache.Answer(world, hello).String())
}

func TestSuggestWithAnswerCache(t *testing.T) {
	d := fullDictionary(t)
	cache := newAnswerCache(t, d)
	expected, err := NewGuesser(d).Suggest(d.Len())
	require.NoError(t, err)
	got, err := NewGuesser(d, WithAnswerCache(cache)).Suggest(d.Len())
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestObserveWithAnswerCache(t *testing.T) {
	d := fullDictionary(t)
	cache := newAnswerCache(t, d)
	for _, secret := range []string{"hello", "booby", "karma"} {
		plain := NewGuesser(d)
		cached := NewGuesser(d, WithAnswerCache(cache))
		// zzzzz is not a dictionary word so its answers are computed
		for _, guess := range []string{"raise", "zzzzz", "clout"} {
			a := gowordle.WordleAnswer(WW(secret), WW(guess))
			e1, i1, err := plain.Observe(WW(guess), a)
			require.NoError(t, err)
			e2, i2, err := cached.Observe(WW(guess), a)
			require.NoError(t, err)
			assert.Equal(t, e1, e2, "%s %s", secret, guess)
			assert.Equal(t, i1, i2, "%s %s", secret, guess)
			assert.Equal(t, plain.PossibleStrings(), cached.PossibleStrings())

			x1, err := plain.Entropy(WW("petal"))
			require.NoError(t, err)
			x2, err := cached.Entropy(WW("petal"))
			require.NoError(t, err)
			assert.Equal(t, x1, x2)
		}
	}
}

func TestAnswerCacheOtherDictionaryIgnored(t *testing.T) {
	var buf bytes.Buffer
	other := newDictionary(t, "abcde", "fghij")
	d := newDictionary(t, "abcde", "fghij", "klmno")
	g := NewGuesser(d, WithAnswerCache(newAnswerCache(t, other)), WithLogger(zerolog.New(&buf)))
	assert.Contains(t, buf.String(), "answer cache was built for another dictionary")
	_, _, err := g.Observe(WW("klmno"), answer(t, "BBBBB"))
	require.NoError(t, err)
	assert.Equal(t, []string{"abcde", "fghij"}, g.PossibleStrings())
}

func TestSimulateWithAnswerCache(t *testing.T) {
	d := fullDictionary(t)
	cache := newAnswerCache(t, d)
	for _, solution := range []string{"karma", "heron", "fifth"} {
		expected, err := Simulate(d, WW(solution), []gowordle.Word{WW("raise")}, d.Len())
		require.NoError(t, err)
		got, err := Simulate(d, WW(solution), []gowordle.Word{WW("raise")}, d.Len(), WithAnswerCache(cache))
		require.NoError(t, err)
		assert.Equal(t, expected, got, solution)
	}
}
