// Package maincmd implements the lox command-line tool's command dispatch:
// argument parsing, the tokenize/parse/resolve/run subcommands used to
// inspect each compilation phase in isolation, and the REPL.
package maincmd

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "lox"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] [<command>] [<path>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] [<command>] [<path>...]
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the Lox programming language.

With no command and no path, %[1]s starts an interactive REPL. With a
single path and no command, %[1]s runs that file as a script.

The <command> can be one of:
       tokenize <path>...        Scan the given files and print their tokens.
       parse <path>...           Parse the given files and print the AST.
       resolve <path>...         Parse and resolve the given files, print
                                 the AST and the number of resolved local
                                 bindings.
       run <path>...             Scan, parse, resolve and execute the given
                                 files.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.

Environment variables:
       LOX_MAX_CALL_DEPTH        Maximum call-stack depth (default 1000).
       LOX_HISTORY_FILE          REPL history file path (default: none).

More information on the %[1]s repository:
       https://github.com/mna/loxwalk
`, binName)
)

// Cmd is the root command, populated from command-line flags by
// mainer.Parser and dispatched to one of its exported methods based on the
// first positional argument.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args  []string
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) {}

// Validate resolves the requested subcommand, if any, deferring to the
// default REPL-or-script behavior when no command name is given.
func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) == 0 {
		c.cmdFn = c.Repl
		return nil
	}

	commands := buildCmds(c)
	if fn, ok := commands[c.args[0]]; ok {
		if len(c.args[1:]) == 0 && c.args[0] != "repl" {
			return fmt.Errorf("%s: at least one file must be provided", c.args[0])
		}
		c.cmdFn = fn
		c.args = c.args[1:]
		return nil
	}

	// no recognized command name: treat the whole argument list as script
	// paths to run (len(c.args) == 0 already returned above).
	c.cmdFn = c.Run
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args); err != nil {
		return mainer.Failure
	}
	return mainer.Success
}

// buildCmds reflects over v's exported methods to find the ones matching
// the (context.Context, mainer.Stdio, []string) error subcommand shape,
// keyed by their lowercased method name.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type
		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
