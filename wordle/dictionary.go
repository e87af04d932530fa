package wordle

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

//go:embed words.txt
var embeddedWords string

// SortedWordleDictionary returns the built in word list, sorted. It is a
// 419 word subset of the Wordle answer list, not the full list; use
// LoadWordList for the complete answer or guess lists.
func SortedWordleDictionary() []string {
	ret := strings.Fields(embeddedWords)
	sort.Strings(ret)
	return ret
}

// LoadWordList reads a word list file, see ParseWordList.
func LoadWordList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("word list: %w", err)
	}
	ret, err := ParseWordList(data)
	if err != nil {
		return nil, fmt.Errorf("word list %s: %w", path, err)
	}
	return ret, nil
}

// ParseWordList accepts a JSON array of strings, ["cigar", "rebut"], or
// whitespace separated words. Words are trimmed and lowered, they are not
// validated here; NewDictionary does that.
func ParseWordList(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	var ret []string
	if bytes.HasPrefix(trimmed, []byte("[")) {
		if err := json.Unmarshal(trimmed, &ret); err != nil {
			return nil, fmt.Errorf("not a json array of strings: %w", err)
		}
	} else {
		ret = strings.Fields(string(trimmed))
	}
	for i, word := range ret {
		ret[i] = strings.ToLower(strings.TrimSpace(word))
	}
	return ret, nil
}
