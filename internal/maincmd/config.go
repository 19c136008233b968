package maincmd

import "github.com/caarlos0/env/v6"

// Config holds the runtime knobs that make sense as environment variables
// rather than command-line flags: values an operator running lox inside a
// container or CI job wants to set once in the environment rather than
// thread through every invocation.
type Config struct {
	// MaxCallDepth bounds the interpreter's call-stack recursion. 0 (the
	// zero value) means unbounded, deferring to the Go runtime's own stack
	// growth and eventual fatal error on genuine unbounded recursion.
	MaxCallDepth int `env:"LOX_MAX_CALL_DEPTH" envDefault:"1000"`

	// HistoryFile is where the REPL persists its input history between
	// sessions. An empty value disables history persistence.
	HistoryFile string `env:"LOX_HISTORY_FILE" envDefault:""`
}

// loadConfig reads Config from the environment, falling back to the
// defaults above for anything unset.
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
