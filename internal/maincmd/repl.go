package maincmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mna/mainer"
	"github.com/mna/loxwalk/lang/interp"
	"github.com/mna/loxwalk/lang/parser"
	"github.com/mna/loxwalk/lang/resolver"
)

var (
	promptColor = color.New(color.FgCyan)
	resultColor = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed)
)

// Repl is the "repl" command and the default action when lox is invoked
// with no arguments: an interactive read-eval-print loop running each
// entered line against one persistent root environment.
func (c *Cmd) Repl(ctx context.Context, stdio mainer.Stdio, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return err
	}
	return RunRepl(stdio, cfg)
}

// RunRepl runs the interactive loop against stdio until EOF (Ctrl-D), a
// readline error, or the user enters "exit" or "q". Each line is run
// against the same Interpreter, so declarations from one line are visible
// to the next, matching the spec's "persistent root environment" REPL
// contract; the result of the final statement in the line is printed
// unless it is Nil.
func RunRepl(stdio mainer.Stdio, cfg Config) error {
	rlCfg := &readline.Config{
		Prompt:          promptColor.Sprint("lox> "),
		HistoryFile:     cfg.HistoryFile,
		Stdout:          stdio.Stdout,
		Stderr:          stdio.Stderr,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	i := interp.New(stdio.Stdout)
	i.MaxCallDepth = cfg.MaxCallDepth
	i.RegisterBuiltins(stdio.Stdin)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isExitLine(line) {
			return nil
		}

		result, err := evalLine(i, line)
		if err != nil {
			errorColor.Fprintf(stdio.Stdout, "%s\n", err)
			continue
		}
		if result != nil {
			if _, isNil := result.(interp.Nil); !isNil {
				resultColor.Fprintf(stdio.Stdout, "%s\n", result.String())
			}
		}
	}
}

// isExitLine reports whether line (already whitespace-trimmed) is one of
// the REPL's two exit commands. It is checked before line is handed to the
// scanner/parser, so "exit" and "q" never reach evalLine as bare-identifier
// expression statements.
func isExitLine(line string) bool {
	return line == "exit" || line == "q"
}

// evalLine parses, resolves and evaluates a single REPL line. When the
// line's last statement is an expression statement, evalLine returns that
// expression's value for display; otherwise it returns a nil result after
// running the line normally.
func evalLine(i *interp.Interpreter, line string) (interp.Value, error) {
	stmts, err := parser.ParseProgram([]byte(line))
	if err != nil {
		return nil, err
	}

	locals, err := resolver.Resolve(stmts)
	if err != nil {
		return nil, err
	}

	if len(stmts) == 0 {
		return nil, nil
	}

	for _, s := range stmts[:len(stmts)-1] {
		if _, err := i.RunStmtForValue(s, locals); err != nil {
			return nil, err
		}
	}
	return i.RunStmtForValue(stmts[len(stmts)-1], locals)
}
