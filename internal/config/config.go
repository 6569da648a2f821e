// Package config defines gongo's startup configuration. No example in
// the retrieval pack imports a config-file library (no viper, no
// BurntSushi/toml); this stays on the stdlib flag package, which is
// also what the teacher's own main.go already used for its one flag.
package config

import (
	"flag"

	"github.com/haigo/gongo/internal/engine"
)

// Config holds every knob genmove, the GTP dispatcher, and the
// self-play driver read at startup.
type Config struct {
	BoardSize    int
	Komi         float64
	SearchDepth  int
	LogVerbosity int
	OpeningBook  string // path to a badger directory; parsed, but cmd/gongo opens no book from it

	// WeightOverrides, if non-nil, replaces the corresponding default
	// brain weight. Indices match engine.BrainKind values; a caller
	// that wants to override only BrainKosumi sets WeightOverrides[5].
	WeightOverrides map[engine.BrainKind]int
}

// Default returns the out-of-the-box configuration.
func Default() Config {
	return Config{
		BoardSize:    19,
		Komi:         6.5,
		SearchDepth:  2,
		LogVerbosity: 0,
	}
}

// ParseFlags parses args (normally os.Args[1:]) into a Config seeded
// with Default's values.
func ParseFlags(args []string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet("gongo", flag.ContinueOnError)
	fs.IntVar(&cfg.BoardSize, "boardsize", cfg.BoardSize, "initial board size")
	fs.Float64Var(&cfg.Komi, "komi", cfg.Komi, "initial komi")
	fs.IntVar(&cfg.SearchDepth, "depth", cfg.SearchDepth, "fixed minimax search depth")
	fs.IntVar(&cfg.LogVerbosity, "v", cfg.LogVerbosity, "log verbosity")
	fs.StringVar(&cfg.OpeningBook, "openingbook", cfg.OpeningBook, "path to opening book directory (recorded only; not opened by gongo)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Weights builds an engine.Weights starting from the default tuning
// and applying any overrides.
func (c Config) Weights() engine.Weights {
	w := engine.DefaultWeights()
	for kind, value := range c.WeightOverrides {
		w[kind] = value
	}
	return w
}
