package gowordle

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// WordLength is the number of letters in every word.
const WordLength = 5

const alphabetSize = 26

/*
A Word is the letters of a word and the number of times each letter occurs.

counts['c'-'a'] is the number of c's in the word. It is derived from letters
when the word is made and never changes, so Word is only constructed by
ParseWord or NewWord.
*/
type Word struct {
	letters [WordLength]byte
	counts  [alphabetSize]uint8
}

// NewWord makes a word from lowercase letters a-z.
func NewWord(letters [WordLength]byte) (Word, error) {
	ret := Word{letters: letters}
	for i, letter := range letters {
		if letter < 'a' || letter > 'z' {
			return Word{}, characterError(KindWord, string(letters[:]), i, rune(letter))
		}
		ret.counts[letter-'a']++
	}
	return ret, nil
}

// ParseWord makes a word from a string of WordLength letters. Upper case ASCII letters are lowered.
func ParseWord(s string) (Word, error) {
	if n := utf8.RuneCountInString(s); n != WordLength {
		return Word{}, lengthError(KindWord, s, n)
	}
	var letters [WordLength]byte
	i := 0
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r < 'a' || r > 'z' {
			return Word{}, characterError(KindWord, s, i, r)
		}
		letters[i] = byte(r)
		i++
	}
	return NewWord(letters)
}

// MustParseWord is ParseWord for words known to be valid, like constants in tests.
func MustParseWord(s string) Word {
	ret, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return ret
}

func (w Word) String() string {
	return string(w.letters[:])
}

// Letter returns the letter at position i.
func (w Word) Letter(i int) byte {
	return w.letters[i]
}

// Count returns how many times letter occurs in the word, 0 for anything outside a-z.
func (w Word) Count(letter byte) int {
	if letter < 'a' || letter > 'z' {
		return 0
	}
	return int(w.counts[letter-'a'])
}

// take a slice of strings and make wordle words.
// Every bad entry is reported, each wrapped with its index.
func StringsToWordleWords(words []string) ([]Word, error) {
	ret := make([]Word, 0, len(words))
	var errs []error
	for i, word := range words {
		ww, err := ParseWord(word)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		ret = append(ret, ww)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return ret, nil
}

func WordleWordsToStrings(words []Word) []string {
	ret := make([]string, 0, len(words))
	for _, word := range words {
		ret = append(ret, word.String())
	}
	return ret
}
