package wordle

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/powellquiring/entropy-wordle/gowordle"
)

// AnswerCache holds the answer for every secret, guess pair of a dictionary,
// one byte per pair holding gowordle.Answer.Code. It is filled once by
// NewAnswerCache and only read after that, so Guessers on different goroutines
// can share it. The table is Len() squared bytes: about 5MB for the 2315 word
// answer list and 170MB for the 13k word guess list.
type AnswerCache struct {
	dictionary *Dictionary
	codes      []uint8
}

// NewAnswerCache computes every answer, one dictionary row of secrets per
// guess, spread over workers goroutines. workers < 1 means runtime.GOMAXPROCS(0).
// progress, if not nil, is told about each finished guess row.
func NewAnswerCache(dictionary *Dictionary, workers int, progress Progress) (*AnswerCache, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := dictionary.Len()
	ret := &AnswerCache{
		dictionary: dictionary,
		codes:      make([]uint8, n*n),
	}
	var eg errgroup.Group
	eg.SetLimit(workers)
	for guess := range n {
		eg.Go(func() error {
			row := ret.codes[guess*n : (guess+1)*n]
			guessWord := dictionary.Word(WordleWord(guess))
			for secret := range n {
				row[secret] = uint8(gowordle.WordleAnswer(dictionary.Word(WordleWord(secret)), guessWord).Code())
			}
			if progress != nil {
				return progress.Add(1)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (c *AnswerCache) Dictionary() *Dictionary {
	return c.dictionary
}

// Code is gowordle.WordleAnswer(secret, guess).Code() from the table.
func (c *AnswerCache) Code(secret, guess WordleWord) int {
	return int(c.codes[int(guess)*c.dictionary.Len()+int(secret)])
}

func (c *AnswerCache) Answer(secret, guess WordleWord) gowordle.Answer {
	return gowordle.AnswerFromCode(c.Code(secret, guess))
}
