package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/powellquiring/entropy-wordle/wordle"
)

const interactiveHelp = `commands:
  suggest                 print the best next guesses
  update [word answer]    record the answer for a guess, e.g. update raise BBOBG
  remaining               print the words that are still possible
  reset                   start a new game
enter nothing to exit.`

// interactive reads commands until an empty line or end of input.
// Bad input is reported and the loop continues.
func interactive(gc GlobalConfiguration, in io.Reader) error {
	guesser := gc.newGuesser()
	scanner := bufio.NewScanner(in)
	prompt := func(text string) (string, bool) {
		fmt.Fprint(gc.out, text)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}
	report := func(err error) {
		fmt.Fprintln(gc.out, "error:", err)
		if errors.Is(err, wordle.ErrEmptyPossibilitySet) {
			fmt.Fprintln(gc.out, "the answers so far contradict each other or the secret is not in the word list, reset to start over")
		}
	}

loop:
	for {
		line, ok := prompt("Please input command: ")
		if !ok || line == "" {
			break
		}
		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "suggest":
			if err := gc.printSuggestions(guesser, gc.config.Suggestions); err != nil {
				report(err)
			}
		case "update":
			var word, result string
			switch len(fields) {
			case 3:
				word, result = fields[1], fields[2]
			case 1:
				if word, ok = prompt("Please input word: "); !ok {
					break loop
				}
				if result, ok = prompt("Please input result: "); !ok {
					break loop
				}
			default:
				fmt.Fprintln(gc.out, "usage: update [word answer]")
				continue
			}
			if err := gc.observe(guesser, []string{word, result}); err != nil {
				report(err)
			}
		case "remaining":
			fmt.Fprintln(gc.out, guesser.Remaining(), "remaining")
			if guesser.Remaining() <= 20 {
				fmt.Fprintln(gc.out, strings.Join(guesser.PossibleStrings(), " "))
			}
		case "reset":
			guesser = gc.newGuesser()
			fmt.Fprintln(gc.out, guesser.Remaining(), "remaining")
		default:
			fmt.Fprintln(gc.out, interactiveHelp)
		}
	}
	fmt.Fprintln(gc.out, "Exiting...")
	return scanner.Err()
}
