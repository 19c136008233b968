package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/parser"
)

// Parse is the "parse" subcommand: it parses each file and prints the
// resulting AST one node per line (see ast.Printer).
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, files []string) error {
	return ParseFiles(stdio, files...)
}

// ParseFiles parses each of files and writes the AST it produced to
// stdio.Stdout via ast.Printer. Parse errors are printed to stdio.Stderr;
// when a file has errors, its (possibly partial) AST is still printed, the
// same way the scanner/parser keep going after an error to surface as much
// as possible in one pass.
func ParseFiles(stdio mainer.Stdio, files ...string) error {
	var failed bool
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(stdio.Stderr, "%s: %s\n", file, err)
			failed = true
			continue
		}

		stmts, err := parser.ParseProgram(src)
		fmt.Fprintf(stdio.Stdout, "-- %s --\n", file)
		p := &ast.Printer{Output: stdio.Stdout}
		for _, s := range stmts {
			if perr := p.Print(s); perr != nil {
				fmt.Fprintf(stdio.Stderr, "%s: %s\n", file, perr)
				failed = true
			}
		}
		if err != nil {
			fmt.Fprintf(stdio.Stderr, "%s\n", err)
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("parse: errors encountered")
	}
	return nil
}
