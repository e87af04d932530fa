package gowordle

// return the wordle answer for the guess given the secret.
//
// Greens are found first, each one uses up one copy of the letter in the
// secret. Then, left to right, a letter that is not green is yellow only if
// the secret still has an unused copy of it. Guessing hello against world
// gives BBBGO: the second l is green which uses the only l, so the first l
// is gray.
func WordleAnswer(secret, guess Word) Answer {
	var ret Answer // all Absent
	remaining := secret.counts
	for i, guessLetter := range guess.letters {
		if guessLetter == secret.letters[i] {
			ret[i] = Correct
			remaining[guessLetter-'a']--
		}
	}
	// turn the gray to yellow if in the word but not green
	for i, guessLetter := range guess.letters {
		if ret[i] == Correct {
			continue
		}
		if remaining[guessLetter-'a'] > 0 {
			ret[i] = Present
			remaining[guessLetter-'a']--
		}
	}
	return ret
}

// Matches reports whether candidate could be the secret given that guess received answer.
func Matches(candidate, guess Word, answer Answer) bool {
	return WordleAnswer(candidate, guess) == answer
}

// Matching returns the words that could be the secret, in their original order.
func Matching(words []Word, guess Word, answer Answer) []Word {
	ret := make([]Word, 0, len(words))
	for _, word := range words {
		if Matches(word, guess, answer) {
			ret = append(ret, word)
		}
	}
	return ret
}
