package wordle

import (
	"errors"
	"math"
	"runtime"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/powellquiring/entropy-wordle/gowordle"
)

// ErrEmptyPossibilitySet means no dictionary word is consistent with the answers observed so far.
// Either the answers contradict each other or the secret is not in the dictionary.
var ErrEmptyPossibilitySet = errors.New("no possible words remain")

// words ranked per goroutine in Suggest
const rankChunkSize = 32

// candidate sets smaller than this are grouped on the calling goroutine in Observe
const parallelPartitionMin = 4096

// Progress is told how many words have been ranked. *progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(num int) error
}

type Option func(*Guesser)

// WithWorkers sets the number of goroutines used to rank words. n < 1 means runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(g *Guesser) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		g.workers = n
	}
}

// WithProgress reports ranking progress from Suggest.
func WithProgress(progress Progress) Option {
	return func(g *Guesser) {
		g.progress = progress
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(g *Guesser) {
		g.log = log
	}
}

// WithAnswerCache looks answers up in cache instead of computing them. The
// cache must have been built for the guesser's dictionary, otherwise it is ignored.
func WithAnswerCache(cache *AnswerCache) Option {
	return func(g *Guesser) {
		g.cache = cache
	}
}

// WithPossible starts the guesser from a snapshot taken with Guesser.Possible
// instead of the whole dictionary.
func WithPossible(possible *WordList) Option {
	return func(g *Guesser) {
		g.possible = possible.Clone()
	}
}

// Suggestion is a possible word and the expected information of guessing it.
type Suggestion struct {
	Value   WordleWord
	Word    gowordle.Word
	Entropy float64 // bits
}

/*
Guesser holds the words that are still possible given every answer observed.

Suggest only reads the possible words; Observe removes words from them. A
Guesser is not safe for concurrent use, callers serialize Suggest and Observe.
*/
type Guesser struct {
	dictionary *Dictionary
	possible   *WordList
	workers    int
	progress   Progress
	cache      *AnswerCache
	log        zerolog.Logger
}

// NewGuesser starts with every dictionary word possible.
func NewGuesser(dictionary *Dictionary, opts ...Option) *Guesser {
	ret := &Guesser{
		dictionary: dictionary,
		workers:    runtime.GOMAXPROCS(0),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.possible == nil {
		ret.possible = dictionary.WordlistAll()
	}
	if ret.cache != nil && ret.cache.Dictionary() != dictionary {
		ret.log.Warn().Msg("answer cache was built for another dictionary, not using it")
		ret.cache = nil
	}
	return ret
}

func (g *Guesser) Dictionary() *Dictionary {
	return g.dictionary
}

// SetProgress replaces the progress reported by Suggest, nil for none.
func (g *Guesser) SetProgress(progress Progress) {
	g.progress = progress
}

// Remaining is the number of possible words.
func (g *Guesser) Remaining() int {
	return g.possible.Len()
}

// Possible returns a copy of the possible words, usable with WithPossible to roll back.
func (g *Guesser) Possible() *WordList {
	return g.possible.Clone()
}

func (g *Guesser) PossibleStrings() []string {
	return g.dictionary.WordlistStrings(g.possible)
}

// Suggest ranks every possible word by its entropy against the possible words
// and returns at most maxCount of them, highest entropy first. Words with the
// same entropy keep dictionary order.
//
// Each word is ranked by a single goroutine, so the entropies, and the order,
// are the same for any number of workers.
func (g *Guesser) Suggest(maxCount int) ([]Suggestion, error) {
	indices := g.possible.Words()
	if len(indices) == 0 {
		return nil, ErrEmptyPossibilitySet
	}
	start := time.Now()
	candidates := g.dictionary.WordlistWords(g.possible)
	ret := make([]Suggestion, len(indices))

	var eg errgroup.Group
	eg.SetLimit(g.workers)
	for low := 0; low < len(indices); low += rankChunkSize {
		high := min(low+rankChunkSize, len(indices))
		eg.Go(func() error {
			var distribution gowordle.Distribution
			for i := low; i < high; i++ {
				distribution.Reset()
				guess := candidates[i]
				if g.cache != nil {
					for _, secret := range indices {
						distribution.AddCode(g.cache.Code(secret, indices[i]))
					}
				} else {
					for _, candidate := range candidates {
						distribution.Add(gowordle.WordleAnswer(candidate, guess))
					}
				}
				ret[i] = Suggestion{Value: indices[i], Word: guess, Entropy: distribution.Entropy()}
			}
			if g.progress != nil {
				return g.progress.Add(high - low)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Entropy > ret[j].Entropy
	})
	if maxCount < 0 {
		maxCount = 0
	}
	if len(ret) > maxCount {
		ret = ret[:maxCount]
	}
	g.log.Debug().
		Int("possible", len(indices)).
		Int("returned", len(ret)).
		Dur("elapsed", time.Since(start)).
		Msg("suggest")
	return ret, nil
}

// Entropy of guessing word against the possible words.
func (g *Guesser) Entropy(word gowordle.Word) (float64, error) {
	candidates := g.dictionary.WordlistWords(g.possible)
	if len(candidates) == 0 {
		return 0, ErrEmptyPossibilitySet
	}
	if guess, ok := g.cached(word); ok {
		return g.cachedPartition(guess).Entropy(), nil
	}
	return g.partition(word, candidates).Entropy(), nil
}

// cached returns the dictionary index of word when answers for it can be taken from the cache.
func (g *Guesser) cached(word gowordle.Word) (WordleWord, bool) {
	if g.cache == nil {
		return 0, false
	}
	return g.dictionary.Lookup(word.String())
}

func (g *Guesser) cachedPartition(guess WordleWord) *gowordle.Distribution {
	var ret gowordle.Distribution
	for _, secret := range g.possible.Range {
		ret.AddCode(g.cache.Code(secret, guess))
	}
	return &ret
}

// partition groups the candidates, splitting large candidate lists across the workers.
// The partial distributions hold integer counts so merging them gives the same result as one pass.
func (g *Guesser) partition(word gowordle.Word, candidates []gowordle.Word) *gowordle.Distribution {
	if g.workers < 2 || len(candidates) < parallelPartitionMin {
		return gowordle.Partition(word, candidates)
	}
	chunk := (len(candidates) + g.workers - 1) / g.workers
	parts := make([]*gowordle.Distribution, 0, g.workers)
	for low := 0; low < len(candidates); low += chunk {
		parts = append(parts, nil)
	}
	var eg errgroup.Group
	for p := range parts {
		low := p * chunk
		high := min(low+chunk, len(candidates))
		eg.Go(func() error {
			parts[p] = gowordle.Partition(word, candidates[low:high])
			return nil
		})
	}
	_ = eg.Wait() // the workers never fail
	ret := parts[0]
	for _, part := range parts[1:] {
		ret.Merge(part)
	}
	return ret
}

// Observe records that guess received answer. It returns the entropy the guess
// had before the possible words were filtered and the information actually
// gained, -log2(after/before). Only words that would have given the same answer
// to guess stay possible. There is no undo, take a Possible snapshot first if
// one is needed.
func (g *Guesser) Observe(guess gowordle.Word, answer gowordle.Answer) (float64, float64, error) {
	candidates := g.dictionary.WordlistWords(g.possible)
	before := len(candidates)
	if before == 0 {
		return 0, 0, ErrEmptyPossibilitySet
	}
	guessIndex, cached := g.cached(guess)
	var entropy float64
	if cached {
		entropy = g.cachedPartition(guessIndex).Entropy()
	} else {
		entropy = g.partition(guess, candidates).Entropy()
	}

	code := answer.Code()
	for i, word := range g.possible.Words() {
		if cached {
			if g.cache.Code(word, guessIndex) != code {
				g.possible.Remove(word)
			}
		} else if gowordle.WordleAnswer(candidates[i], guess) != answer {
			g.possible.Remove(word)
		}
	}
	after := g.possible.Len()
	// equal to -log2(after/before), but 0 rather than -0 when nothing was removed
	information := math.Log2(float64(before) / float64(after))

	g.log.Debug().
		Str("guess", guess.String()).
		Str("answer", answer.String()).
		Int("before", before).
		Int("after", after).
		Float64("entropy", entropy).
		Float64("information", information).
		Msg("observe")
	return entropy, information, nil
}
