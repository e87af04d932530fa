package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

const (
	DefaultSuggestions = 5
	DefaultMaxTurns    = 6
	DefaultLogLevel    = "info"
)

// Config holds defaults for the wdl command. Command line flags and WDL_*
// environment variables override it.
//
//	words = "/usr/share/wordle/answers.json"
//	suggestions = 10
//	workers = 4
//	log_level = "debug"
//	progress = true
//	max_turns = 6
//	first = ["raise"]
type Config struct {
	Words       string   `toml:"words"`       // word list file, empty for the built in list
	Count       int      `toml:"count"`       // use only the first count words, 0 is all words
	Suggestions int      `toml:"suggestions"` // number of suggestions printed
	Workers     int      `toml:"workers"`     // ranking goroutines, 0 is GOMAXPROCS
	LogLevel    string   `toml:"log_level"`
	Progress    bool     `toml:"progress"`
	MaxTurns    int      `toml:"max_turns"` // guesses allowed in sim
	First       []string `toml:"first"`     // opening guesses for sim
}

func Default() Config {
	return Config{
		Suggestions: DefaultSuggestions,
		LogLevel:    DefaultLogLevel,
		MaxTurns:    DefaultMaxTurns,
	}
}

// Load reads a TOML file on top of the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	ret, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return ret, nil
}

func Parse(data []byte) (Config, error) {
	ret := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&ret); err != nil {
		return Config{}, err
	}
	if err := ret.Validate(); err != nil {
		return Config{}, err
	}
	return ret, nil
}

func (c Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative: %d", c.Count)
	}
	if c.Suggestions < 0 {
		return fmt.Errorf("suggestions must not be negative: %d", c.Suggestions)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Workers)
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("max_turns must be at least 1: %d", c.MaxTurns)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel, empty is info.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
