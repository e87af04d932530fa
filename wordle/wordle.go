package wordle

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
	mapset "github.com/deckarep/golang-set"
	"github.com/hbollon/go-edlib"

	"github.com/powellquiring/entropy-wordle/gowordle"
)

// WordleWord is an index into the dictionary
type WordleWord uint32

// WordList is a set of dictionary words, one bit per word.
// Ranging over it visits the words in dictionary order.
type WordList bitset.BitSet

// Dictionary is the list of words a session is played with. It is never
// modified after NewDictionary. The same spelling may appear more than once,
// each copy is a separate word.
type Dictionary struct {
	words        []gowordle.Word
	strings      []string
	stringToWord map[string]WordleWord // first index of each spelling
	duplicates   []string
}

// NewDictionary parses every string. All the entries that are not valid words are reported together.
func NewDictionary(strings []string) (*Dictionary, error) {
	words, err := gowordle.StringsToWordleWords(strings)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	ret := &Dictionary{
		words:        words,
		strings:      gowordle.WordleWordsToStrings(words),
		stringToWord: make(map[string]WordleWord, len(words)),
	}
	seen := mapset.NewThreadUnsafeSet()
	duplicates := mapset.NewThreadUnsafeSet()
	for i, word := range ret.strings {
		if !seen.Add(word) {
			duplicates.Add(word)
			continue
		}
		ret.stringToWord[word] = WordleWord(i)
	}
	for _, word := range duplicates.ToSlice() {
		ret.duplicates = append(ret.duplicates, word.(string))
	}
	sort.Strings(ret.duplicates)
	return ret, nil
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Word returns the word for a dictionary index
func (d *Dictionary) Word(word WordleWord) gowordle.Word {
	return d.words[word]
}

func (d *Dictionary) String(word WordleWord) string {
	return d.strings[word]
}

// Strings returns the dictionary in order. The slice must not be modified.
func (d *Dictionary) Strings() []string {
	return d.strings
}

// Lookup returns the index of the first dictionary word spelled s.
func (d *Dictionary) Lookup(s string) (WordleWord, bool) {
	ret, ok := d.stringToWord[s]
	return ret, ok
}

// Duplicates returns the spellings that occur more than once, sorted.
func (d *Dictionary) Duplicates() []string {
	return d.duplicates
}

// Closest returns the dictionary word with the smallest Levenshtein distance to s.
func (d *Dictionary) Closest(s string) (string, bool) {
	if len(d.strings) == 0 {
		return "", false
	}
	ret, err := edlib.FuzzySearch(s, d.strings, edlib.Levenshtein)
	if err != nil || ret == "" {
		return "", false
	}
	return ret, true
}

func (d *Dictionary) WordlistAll() *WordList {
	wordsLen := uint(len(d.words))
	ret := bitset.New(wordsLen)
	for i := range wordsLen {
		ret.Set(i)
	}
	return (*WordList)(ret)
}

func (d *Dictionary) WordlistEmpty() *WordList {
	return (*WordList)(bitset.New(uint(len(d.words))))
}

func (d *Dictionary) WordlistFromStrings(strings []string) (*WordList, error) {
	ret := d.WordlistEmpty()
	for _, s := range strings {
		word, ok := d.Lookup(s)
		if !ok {
			return nil, fmt.Errorf("word not in dictionary: %s", s)
		}
		ret.Insert(word)
	}
	return ret, nil
}

func (d *Dictionary) WordlistStrings(wordlist *WordList) []string {
	ret := make([]string, 0, wordlist.Len())
	for _, word := range wordlist.Range {
		ret = append(ret, d.String(word))
	}
	return ret
}

// WordlistWords returns the words of the list in dictionary order.
func (d *Dictionary) WordlistWords(wordlist *WordList) []gowordle.Word {
	ret := make([]gowordle.Word, 0, wordlist.Len())
	for _, word := range wordlist.Range {
		ret = append(ret, d.Word(word))
	}
	return ret
}

func (wl *WordList) Range(yield func(i int, wordleWord WordleWord) bool) {
	bs := (*bitset.BitSet)(wl)
	i := 0
	for wordleWord, ok := bs.NextSet(0); ok; wordleWord, ok = bs.NextSet(wordleWord + 1) {
		if !yield(i, WordleWord(wordleWord)) {
			return
		}
		i++
	}
}

func (wl *WordList) Words() []WordleWord {
	ret := []WordleWord{}
	for _, wordleWord := range wl.Range {
		ret = append(ret, wordleWord)
	}
	return ret
}

func (wl *WordList) Len() int {
	bs := (*bitset.BitSet)(wl)
	return int(bs.Count())
}

func (wl *WordList) Contains(word WordleWord) bool {
	return (*bitset.BitSet)(wl).Test(uint(word))
}

func (wl *WordList) Insert(word WordleWord) {
	(*bitset.BitSet)(wl).Set(uint(word))
}

func (wl *WordList) Remove(word WordleWord) {
	(*bitset.BitSet)(wl).Clear(uint(word))
}

func (wl *WordList) Clone() *WordList {
	return (*WordList)((*bitset.BitSet)(wl).Clone())
}
