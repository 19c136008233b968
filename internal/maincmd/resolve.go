package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/parser"
	"github.com/mna/loxwalk/lang/resolver"
)

// Resolve is the "resolve" subcommand: it parses and resolves each file,
// then prints the AST and the number of resolved local bindings.
func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, files []string) error {
	return ResolveFiles(stdio, files...)
}

// ResolveFiles parses and resolves each of files, printing the AST followed
// by one line giving the number of nodes the resolver bound to a local
// scope. The individual scope distances are not printed.
func ResolveFiles(stdio mainer.Stdio, files ...string) error {
	var failed bool
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(stdio.Stderr, "%s: %s\n", file, err)
			failed = true
			continue
		}

		stmts, err := parser.ParseProgram(src)
		if err != nil {
			fmt.Fprintf(stdio.Stderr, "%s\n", err)
			failed = true
			continue
		}

		locals, err := resolver.Resolve(stmts)
		fmt.Fprintf(stdio.Stdout, "-- %s --\n", file)
		p := &ast.Printer{Output: stdio.Stdout}
		for _, s := range stmts {
			_ = p.Print(s)
		}
		fmt.Fprintf(stdio.Stdout, "%d resolved bindings\n", len(locals))
		if err != nil {
			fmt.Fprintf(stdio.Stderr, "%s\n", err)
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("resolve: errors encountered")
	}
	return nil
}
