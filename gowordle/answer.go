package gowordle

import (
	"unicode/utf8"
)

// Mark is the color of one letter of an answer
type Mark uint8

const (
	Absent  Mark = iota // B, letter not in the secret (or all copies already accounted for)
	Present             // O, letter in the secret at another position
	Correct             // G, letter in the secret at this position
)

// AnswerCount is the number of distinct answers, 3^WordLength.
const AnswerCount = 243

// Answer is the feedback for one guess, one Mark per letter. Answers are
// comparable and can be used as map keys.
type Answer [WordLength]Mark

// AllCorrect is the answer for a guess that is the secret.
var AllCorrect = Answer{Correct, Correct, Correct, Correct, Correct}

func (m Mark) Symbol() byte {
	switch m {
	case Correct:
		return 'G'
	case Present:
		return 'O'
	default:
		return 'B'
	}
}

func (m Mark) String() string {
	switch m {
	case Correct:
		return "correct"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

func markFromSymbol(symbol rune) (Mark, bool) {
	switch symbol {
	case 'G':
		return Correct, true
	case 'O':
		return Present, true
	case 'B':
		return Absent, true
	}
	return Absent, false
}

// ParseAnswer parses the G, O, B encoding of an answer, like "BBOGB".
func ParseAnswer(s string) (Answer, error) {
	var ret Answer
	if n := utf8.RuneCountInString(s); n != WordLength {
		return ret, lengthError(KindAnswer, s, n)
	}
	i := 0
	for _, symbol := range s {
		mark, ok := markFromSymbol(symbol)
		if !ok {
			return Answer{}, characterError(KindAnswer, s, i, symbol)
		}
		ret[i] = mark
		i++
	}
	return ret, nil
}

func (a Answer) String() string {
	var ret [WordLength]byte
	for i, mark := range a {
		ret[i] = mark.Symbol()
	}
	return string(ret[:])
}

// Solved reports whether every letter is Correct.
func (a Answer) Solved() bool {
	return a == AllCorrect
}

// Code packs the answer into a base 3 number in [0, AnswerCount), first letter most significant.
func (a Answer) Code() int {
	ret := 0
	for _, mark := range a {
		ret = ret*3 + int(mark)
	}
	return ret
}

// AnswerFromCode is the inverse of Answer.Code.
func AnswerFromCode(code int) Answer {
	var ret Answer
	for i := WordLength - 1; i >= 0; i-- {
		ret[i] = Mark(code % 3)
		code /= 3
	}
	return ret
}
