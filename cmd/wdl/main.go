package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/powellquiring/entropy-wordle/config"
	"github.com/powellquiring/entropy-wordle/gowordle"
	"github.com/powellquiring/entropy-wordle/wordle"
)

type GlobalConfiguration struct {
	dictionary *wordle.Dictionary
	config     config.Config
	log        zerolog.Logger
	out        io.Writer
	errOut     io.Writer
}

// globalConfiguration merges the config file, the built in defaults and the flags that were set.
func globalConfiguration(cmd *cli.Command) (GlobalConfiguration, error) {
	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return GlobalConfiguration{}, err
		}
	}
	if cmd.IsSet("words") {
		cfg.Words = cmd.String("words")
	}
	if cmd.IsSet("count") {
		cfg.Count = cmd.Int("count")
	}
	if cmd.IsSet("suggestions") {
		cfg.Suggestions = cmd.Int("suggestions")
	}
	if cmd.IsSet("workers") {
		cfg.Workers = cmd.Int("workers")
	}
	if cmd.IsSet("progress") {
		cfg.Progress = cmd.Bool("progress")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return GlobalConfiguration{}, err
	}
	level, _ := cfg.Level()
	root := cmd.Root()
	log := zerolog.New(zerolog.ConsoleWriter{Out: root.ErrWriter, NoColor: true}).
		Level(level).With().Timestamp().Logger()

	words := wordle.SortedWordleDictionary()
	source := "built in"
	if cfg.Words != "" {
		var err error
		if words, err = wordle.LoadWordList(cfg.Words); err != nil {
			return GlobalConfiguration{}, err
		}
		source = cfg.Words
	}
	if cfg.Count > 0 && cfg.Count < len(words) {
		words = words[:cfg.Count]
	}
	dictionary, err := wordle.NewDictionary(words)
	if err != nil {
		return GlobalConfiguration{}, err
	}
	if duplicates := dictionary.Duplicates(); len(duplicates) > 0 {
		log.Warn().Strs("words", duplicates).Msg("dictionary has duplicate words, each copy is kept")
	}
	log.Debug().Str("source", source).Int("words", dictionary.Len()).Msg("dictionary loaded")
	return GlobalConfiguration{
		dictionary: dictionary,
		config:     cfg,
		log:        log,
		out:        root.Writer,
		errOut:     root.ErrWriter,
	}, nil
}

func (gc GlobalConfiguration) guesserOptions() []wordle.Option {
	return []wordle.Option{
		wordle.WithWorkers(gc.config.Workers),
		wordle.WithLogger(gc.log),
	}
}

func (gc GlobalConfiguration) newGuesser() *wordle.Guesser {
	return wordle.NewGuesser(gc.dictionary, gc.guesserOptions()...)
}

// newProgressBar is progressbar.Default drawn on the command's error writer.
func (gc GlobalConfiguration) newProgressBar(enabled bool, max int, description string) *progressbar.ProgressBar {
	if !enabled {
		return progressbar.DefaultSilent(int64(max), description)
	}
	return progressbar.NewOptions64(int64(max),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(gc.errOut),
		progressbar.OptionSetWidth(10),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(gc.errOut, "\n")
		}),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// parseWord parses a guess, warning when it is not a word of d.
func (gc GlobalConfiguration) parseWord(d *wordle.Dictionary, s string) (gowordle.Word, error) {
	word, err := gowordle.ParseWord(strings.TrimSpace(s))
	if err != nil {
		return word, err
	}
	if _, ok := d.Lookup(word.String()); !ok {
		event := gc.log.Warn().Str("guess", word.String())
		if closest, ok := d.Closest(word.String()); ok {
			event = event.Str("closest", closest)
		}
		event.Msg("guess is not in the dictionary")
	}
	return word, nil
}

// parseAnswer accepts the answer in either case, ggobb or GGOBB.
func parseAnswer(s string) (gowordle.Answer, error) {
	return gowordle.ParseAnswer(strings.ToUpper(strings.TrimSpace(s)))
}

// observe applies guess/answer pairs to the guesser, printing what each one was worth.
func (gc GlobalConfiguration) observe(guesser *wordle.Guesser, pairs []string) error {
	if len(pairs)%2 != 0 {
		return errors.New("must have pairs of guess answer")
	}
	for i := 0; i < len(pairs); i += 2 {
		guess, err := gc.parseWord(guesser.Dictionary(), pairs[i])
		if err != nil {
			return err
		}
		answer, err := parseAnswer(pairs[i+1])
		if err != nil {
			return err
		}
		entropy, actual, err := guesser.Observe(guess, answer)
		if err != nil {
			return err
		}
		fmt.Fprintf(gc.out, "%s %s - Entropy: %.2f, Actual: %.2f, %d remaining\n", guess, answer, entropy, actual, guesser.Remaining())
	}
	return nil
}

func (gc GlobalConfiguration) printSuggestions(guesser *wordle.Guesser, count int) error {
	suggestions, err := gc.rank(guesser, count)
	if err != nil {
		return err
	}
	for _, s := range suggestions {
		fmt.Fprintf(gc.out, "%s - %.2f bits\n", s.Word, s.Entropy)
	}
	return nil
}

// rank is guesser.Suggest with a progress bar over the words still possible.
func (gc GlobalConfiguration) rank(guesser *wordle.Guesser, count int) ([]wordle.Suggestion, error) {
	if gc.config.Progress && guesser.Remaining() > 0 {
		guesser.SetProgress(gc.newProgressBar(true, guesser.Remaining(), "ranking"))
		defer guesser.SetProgress(nil)
	}
	return guesser.Suggest(count)
}

// suggest replays the observations then prints the best guesses
func suggest(gc GlobalConfiguration, pairs []string) error {
	guesser := gc.newGuesser()
	if err := gc.observe(guesser, pairs); err != nil {
		return err
	}
	if err := gc.printSuggestions(guesser, gc.config.Suggestions); err != nil {
		return err
	}
	if remaining := guesser.Remaining(); remaining <= 10 {
		fmt.Fprintln(gc.out, "possible:", strings.Join(guesser.PossibleStrings(), " "))
	}
	return nil
}

// playWordle with guess/answer pairs provided
func playWordle(gc GlobalConfiguration, pairs []string) error {
	guesser := gc.newGuesser()
	for i := 0; i < len(pairs); i += 2 {
		guess, err := gc.parseWord(guesser.Dictionary(), pairs[i])
		if err != nil {
			return err
		}
		answer, err := parseAnswer(pairs[i+1])
		if err != nil {
			return err
		}
		if _, _, err := guesser.Observe(guess, answer); err != nil {
			return err
		}
	}
	suggestions, err := gc.rank(guesser, 1)
	if err != nil {
		return err
	}
	fmt.Fprint(gc.out, suggestions[0].Word, ":")
	for _, word := range guesser.PossibleStrings() {
		fmt.Fprint(gc.out, " ", word)
	}
	fmt.Fprintln(gc.out)
	return nil
}

func printAnswer(gc GlobalConfiguration, secretString, guessString string) error {
	secret, err := gowordle.ParseWord(secretString)
	if err != nil {
		return err
	}
	guess, err := gowordle.ParseWord(guessString)
	if err != nil {
		return err
	}
	fmt.Fprintln(gc.out, gowordle.WordleAnswer(secret, guess))
	return nil
}

type simOptions struct {
	first []string
	each  bool // one round of games per first word instead of playing them in order
	cache bool
}

func simulate(gc GlobalConfiguration, opts simOptions, solutionStrings []string) error {
	d := gc.dictionary
	solutionList := d.WordlistAll()
	if len(solutionStrings) > 0 {
		names := make([]string, 0, len(solutionStrings))
		for _, s := range solutionStrings {
			solution, err := gowordle.ParseWord(s)
			if err != nil {
				return err
			}
			names = append(names, solution.String())
		}
		var err error
		if solutionList, err = d.WordlistFromStrings(names); err != nil {
			return fmt.Errorf("solutions: %w", err)
		}
	}
	firstWords := make([]gowordle.Word, 0, len(opts.first))
	for _, s := range opts.first {
		word, err := gc.parseWord(d, s)
		if err != nil {
			return err
		}
		firstWords = append(firstWords, word)
	}

	// each opening is one round of games, see wordle.Simulate
	openings := [][]gowordle.Word{firstWords}
	if opts.each {
		if len(firstWords) == 0 {
			firstWords = d.WordlistWords(d.WordlistAll())
		}
		openings = openings[:0]
		for _, word := range firstWords {
			openings = append(openings, []gowordle.Word{word})
		}
	}

	guesserOptions := gc.guesserOptions()
	if opts.cache {
		bar := gc.newProgressBar(gc.config.Progress, d.Len(), "answers")
		cache, err := wordle.NewAnswerCache(d, gc.config.Workers, bar)
		if err != nil {
			return err
		}
		_ = bar.Finish()
		guesserOptions = append(guesserOptions, wordle.WithAnswerCache(cache))
	}

	for _, opening := range openings {
		if opts.each {
			fmt.Fprintln(gc.out, "first:", strings.Join(gowordle.WordleWordsToStrings(opening), " "))
		}
		gc.playGames(d.WordlistWords(solutionList), opening, guesserOptions)
	}
	return nil
}

// playGames simulates a game for each solution and prints the games grouped by number of guesses.
func (gc GlobalConfiguration) playGames(solutions []gowordle.Word, opening []gowordle.Word, guesserOptions []wordle.Option) {
	type Game struct {
		Solution gowordle.Word
		Guesses  []gowordle.Word
	}
	bar := gc.newProgressBar(gc.config.Progress, len(solutions), "simulating")
	sortedGames := make(map[int][]Game)
	var failed []string
	for _, solution := range solutions {
		guesses, err := wordle.Simulate(gc.dictionary, solution, opening, gc.config.MaxTurns, guesserOptions...)
		_ = bar.Add(1)
		if err != nil {
			gc.log.Warn().Err(err).Strs("guesses", gowordle.WordleWordsToStrings(guesses)).Msg("game not solved")
			failed = append(failed, solution.String())
			continue
		}
		sortedGames[len(guesses)] = append(sortedGames[len(guesses)], Game{solution, guesses})
	}
	_ = bar.Finish()

	// create slice of number of guesses
	keys := make([]int, 0, len(sortedGames))
	for k := range sortedGames {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	total := 0
	for _, numGuesses := range keys {
		games := sortedGames[numGuesses]
		fmt.Fprintln(gc.out, numGuesses, len(games), "---------------------")
		for _, game := range games {
			total += numGuesses
			fmt.Fprint(gc.out, game.Solution, ":")
			for _, guess := range game.Guesses {
				fmt.Fprint(gc.out, " ", guess)
			}
			fmt.Fprintln(gc.out)
		}
	}
	if solved := len(solutions) - len(failed); solved > 0 {
		fmt.Fprintf(gc.out, "solved %d of %d, average %.3f guesses\n", solved, len(solutions), float64(total)/float64(solved))
	}
	if len(failed) > 0 {
		fmt.Fprintln(gc.out, "not solved:", strings.Join(failed, " "))
	}
}

// first ranks every dictionary word as an opening guess
func first(gc GlobalConfiguration) error {
	guesser := gc.newGuesser()
	return gc.printSuggestions(guesser, gc.dictionary.Len())
}

func cpuProfile() (func(), error) {
	f, err := os.Create("cpu.prof")
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

// withConfiguration wraps a command action with the global configuration and optional profiling.
func withConfiguration(action func(ctx context.Context, cmd *cli.Command, gc GlobalConfiguration) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if cmd.Bool("profile") {
			stop, err := cpuProfile()
			if err != nil {
				return err
			}
			defer stop()
		}
		gc, err := globalConfiguration(cmd)
		if err != nil {
			return err
		}
		return action(ctx, cmd, gc)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "wdl",
		Usage: "wordle solver ranking guesses by expected information",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "TOML file with default settings",
				Sources: cli.EnvVars("WDL_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "words",
				Aliases: []string{"w"},
				Usage:   "word list file, a JSON array or one word per line, default is the built in list",
				Sources: cli.EnvVars("WDL_WORDS"),
			},
			&cli.IntFlag{
				Name:    "count",
				Value:   0,
				Aliases: []string{"c"},
				Usage:   "number of words, 0 is all words",
				Sources: cli.EnvVars("WDL_COUNT"),
			},
			&cli.IntFlag{
				Name:    "suggestions",
				Value:   config.DefaultSuggestions,
				Aliases: []string{"n"},
				Usage:   "number of suggestions to print",
				Sources: cli.EnvVars("WDL_SUGGESTIONS"),
			},
			&cli.IntFlag{
				Name:    "workers",
				Value:   0,
				Usage:   "goroutines used to rank guesses, 0 is one per CPU",
				Sources: cli.EnvVars("WDL_WORKERS"),
			},
			&cli.BoolFlag{
				Name:    "progress",
				Value:   false,
				Aliases: []string{"p"},
				Usage:   "show progress bar",
				Sources: cli.EnvVars("WDL_PROGRESS"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   config.DefaultLogLevel,
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars("WDL_LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:  "profile",
				Value: false,
				Usage: "store profile data to analyze",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "suggest",
				Usage:     "replay [guess answer]... pairs and print the best next guesses",
				ArgsUsage: "[guess answer]...",
				Description: `answers use G for green, O for yellow (other position) and B for gray:
				wdl suggest raise BBOBG`,
				Action: withConfiguration(func(ctx context.Context, cmd *cli.Command, gc GlobalConfiguration) error {
					return suggest(gc, cmd.Args().Slice())
				}),
			},
			{
				Name: "play",
				Usage: `play a game of wordle by entering pairs of [guess answer]...
				https://www.nytimes.com/games/wordle/index.html
				`,
				ArgsUsage: "guess answer [guess answer]...",
				Action: withConfiguration(func(ctx context.Context, cmd *cli.Command, gc GlobalConfiguration) error {
					if cmd.NArg()%2 != 0 {
						return errors.New("must have pairs of guess answer")
					} else if cmd.NArg() < 2 {
						return errors.New("must have at least one guess answer")
					}
					return playWordle(gc, cmd.Args().Slice())
				}),
			},
			{
				Name:  "interactive",
				Usage: "read suggest and update commands from standard input",
				Action: withConfiguration(func(ctx context.Context, cmd *cli.Command, gc GlobalConfiguration) error {
					return interactive(gc, cmd.Root().Reader)
				}),
			},
			{
				Name:      "answer",
				Usage:     "print the answer for a guess given the secret",
				ArgsUsage: "secret guess",
				Action: withConfiguration(func(ctx context.Context, cmd *cli.Command, gc GlobalConfiguration) error {
					if cmd.NArg() != 2 {
						return errors.New("need a secret and a guess")
					}
					return printAnswer(gc, cmd.Args().Get(0), cmd.Args().Get(1))
				}),
			},
			{
				Name: "sim",
				Usage: `sim --first raise [solution]...
				Simulate one game for each solution, all dictionary words if no solutions are given.
				The first words are guessed in order, after that the best suggestion is guessed.
				All words can be cut back by using the -count global flag for testing.
				`,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Usage:   "--first first1 --first first2 ...",
						Name:    "first",
						Aliases: []string{"f"},
					},
					&cli.BoolFlag{
						Name:  "each",
						Usage: "play every solution once per first word, every dictionary word if there are no first words",
					},
					&cli.BoolFlag{
						Name:    "cache",
						Usage:   "compute the answer for every guess and secret once, uses dictionary size squared bytes",
						Sources: cli.EnvVars("WDL_CACHE"),
					},
					&cli.IntFlag{
						Name:  "max-turns",
						Value: config.DefaultMaxTurns,
						Usage: "guesses allowed per game",
					},
				},
				Action: withConfiguration(func(ctx context.Context, cmd *cli.Command, gc GlobalConfiguration) error {
					opts := simOptions{
						first: gc.config.First,
						each:  cmd.Bool("each"),
						cache: cmd.Bool("cache"),
					}
					if cmd.IsSet("first") {
						opts.first = cmd.StringSlice("first")
					}
					if cmd.IsSet("max-turns") {
						gc.config.MaxTurns = cmd.Int("max-turns")
						if err := gc.config.Validate(); err != nil {
							return err
						}
					}
					return simulate(gc, opts, cmd.Args().Slice())
				}),
			},
			{
				Name: "first",
				Usage: `first
				Rank every word as the first guess
				`,
				Action: withConfiguration(func(ctx context.Context, cmd *cli.Command, gc GlobalConfiguration) error {
					return first(gc)
				}),
			},
		},
	}
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("could not load .env")
	}
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("wdl")
	}
}
