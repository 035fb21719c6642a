package aoc

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment when Run starts.
type Config struct {
	// InputDir is where puzzle inputs live, as <InputDir>/<year>/<day>.input.
	InputDir string `env:"AOC_INPUT_DIR" envDefault:"."`
	// SessionFile holds the adventofcode.com session cookie. It is only
	// read when an input has to be fetched.
	SessionFile string `env:"AOC_SESSION_FILE,expand" envDefault:"${HOME}/keys/aoc.session"`
	Debug       bool   `env:"AOC_DEBUG"`
}

// LoadConfig parses Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) inputPath(year, day int, ext string) string {
	return filepath.Join(c.InputDir, strconv.Itoa(year), strconv.Itoa(day)+ext)
}
