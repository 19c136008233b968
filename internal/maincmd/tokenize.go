package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/loxwalk/lang/scanner"
)

// Tokenize is the "tokenize" subcommand: it scans each file in turn and
// prints one line per token.
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, files []string) error {
	return TokenizeFiles(stdio, files...)
}

// TokenizeFiles scans each of files and writes its tokens to stdio.Stdout,
// one per line as "<line>: <type> <quoted lexeme>". Scan errors for a file are
// printed to stdio.Stderr and do not stop scanning of subsequent files; the
// returned error is non-nil if any file produced an error.
func TokenizeFiles(stdio mainer.Stdio, files ...string) error {
	var failed bool
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(stdio.Stderr, "%s: %s\n", file, err)
			failed = true
			continue
		}

		toks, err := scanner.ScanTokens(src)
		for _, tok := range toks {
			fmt.Fprintf(stdio.Stdout, "%d: %s %q\n", tok.Line(), tok.Type, tok.Lexeme)
		}
		if err != nil {
			fmt.Fprintf(stdio.Stderr, "%s\n", err)
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("tokenize: errors encountered")
	}
	return nil
}
