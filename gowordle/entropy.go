package gowordle

import (
	"math"
)

// Distribution counts candidates by the answer a guess would receive, indexed by Answer.Code.
// Distributions built over disjoint parts of a candidate list can be merged in any order.
type Distribution [AnswerCount]uint32

// Add counts one candidate that receives answer.
func (d *Distribution) Add(answer Answer) {
	d[answer.Code()]++
}

// AddCode counts one candidate by the Answer.Code of its answer.
func (d *Distribution) AddCode(code int) {
	d[code]++
}

// Merge adds the counts of other into d.
func (d *Distribution) Merge(other *Distribution) {
	for code, count := range other {
		d[code] += count
	}
}

// Reset clears every count so d can be reused.
func (d *Distribution) Reset() {
	*d = Distribution{}
}

// Total is the number of candidates counted.
func (d *Distribution) Total() int {
	total := 0
	for _, count := range d {
		total += int(count)
	}
	return total
}

// Groups returns the count for each answer that occurred at least once.
func (d *Distribution) Groups() map[Answer]int {
	ret := make(map[Answer]int)
	for code, count := range d {
		if count > 0 {
			ret[AnswerFromCode(code)] = int(count)
		}
	}
	return ret
}

// Entropy in bits of the answer distribution, the sum over groups of -p*log2(p).
// Groups are summed in code order so the result does not depend on how the
// distribution was partitioned. An empty distribution has entropy 0.
func (d *Distribution) Entropy() float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	n := float64(total)
	ret := 0.0
	for _, count := range d {
		if count == 0 {
			continue
		}
		p := float64(count) / n
		ret -= p * math.Log2(p)
	}
	return ret
}

// Partition groups the candidates by the answer guess would receive if each candidate were the secret.
func Partition(guess Word, candidates []Word) *Distribution {
	var ret Distribution
	for _, candidate := range candidates {
		ret.Add(WordleAnswer(candidate, guess))
	}
	return &ret
}

// Entropy is the expected information in bits gained by guessing word when the secret is one of candidates.
// It is 0 for a single candidate; callers must not pass an empty list.
func Entropy(word Word, candidates []Word) float64 {
	return Partition(word, candidates).Entropy()
}
