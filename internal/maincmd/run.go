package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/loxwalk/lang/interp"
	"github.com/mna/loxwalk/lang/parser"
	"github.com/mna/loxwalk/lang/resolver"
)

// Run is both the "run" subcommand and the default action when lox is
// invoked with one or more bare file paths: it scans, parses, resolves and
// executes each file against a fresh Interpreter.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, files []string) error {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return err
	}
	return RunFiles(stdio, cfg, files...)
}

// RunFiles interprets each of files in turn against its own fresh
// Interpreter (one script does not see another's globals). A syntax,
// resolution or runtime error is printed to stdio.Stderr and stops that
// file's execution, but not the remaining files.
func RunFiles(stdio mainer.Stdio, cfg Config, files ...string) error {
	var failed bool
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(stdio.Stderr, "%s: %s\n", file, err)
			failed = true
			continue
		}

		if err := runSource(stdio, cfg, src); err != nil {
			fmt.Fprintf(stdio.Stderr, "%s\n", err)
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("run: errors encountered")
	}
	return nil
}

func runSource(stdio mainer.Stdio, cfg Config, src []byte) error {
	stmts, err := parser.ParseProgram(src)
	if err != nil {
		return err
	}

	locals, err := resolver.Resolve(stmts)
	if err != nil {
		return err
	}

	i := interp.New(stdio.Stdout)
	i.MaxCallDepth = cfg.MaxCallDepth
	i.RegisterBuiltins(stdio.Stdin)
	return i.Run(stmts, locals)
}
