package interp

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// RegisterBuiltins defines clock, readString and subString in i.Globals.
// stdin is the source readString reads from; passing nil disables it (a
// call then reports a runtime error rather than panicking on a nil reader).
func (i *Interpreter) RegisterBuiltins(stdin io.Reader) {
	var scan *bufio.Scanner
	if stdin != nil {
		scan = bufio.NewScanner(stdin)
		scan.Split(bufio.ScanWords)
	}

	i.Globals.Define("clock", &Builtin{
		FnName:  "clock",
		FnArity: 0,
		Fn: func(*Interpreter, []Value) (Value, error) {
			return Number(time.Now().UnixMilli()), nil
		},
	})

	i.Globals.Define("readString", &Builtin{
		FnName:  "readString",
		FnArity: 0,
		Fn: func(*Interpreter, []Value) (Value, error) {
			if scan == nil {
				return nil, fmt.Errorf("readString: no input source configured")
			}
			if !scan.Scan() {
				return String(""), nil
			}
			return String(scan.Text()), nil
		},
	})

	i.Globals.Define("subString", &Builtin{
		FnName:  "subString",
		FnArity: 3,
		Fn: func(_ *Interpreter, args []Value) (Value, error) {
			s, ok := args[0].(String)
			if !ok {
				return nil, fmt.Errorf("subString: first argument must be a string")
			}
			offN, ok := args[1].(Number)
			if !ok {
				return nil, fmt.Errorf("subString: second argument must be a number")
			}
			cntN, ok := args[2].(Number)
			if !ok {
				return nil, fmt.Errorf("subString: third argument must be a number")
			}
			runes := []rune(string(s))
			offset, count := int(offN), int(cntN)
			if offset < 0 {
				offset = 0
			}
			if offset > len(runes) {
				offset = len(runes)
			}
			end := offset + count
			if end > len(runes) || count < 0 {
				end = len(runes)
			}
			return String(runes[offset:end]), nil
		},
	})
}

// RegisterLog installs a "log" built-in that appends its single argument
// to *log and returns Nil, for test harnesses that need to
// observe values produced mid-program without relying on Stdout capture.
// RemoveLog (via i.Globals undefine) is not provided because Environment
// never needs to forget a binding outside of scope exit; a harness that
// wants log gone simply does not call RegisterLog for the next run.
func (i *Interpreter) RegisterLog(log *[]Value) {
	i.Globals.Define("log", &Builtin{
		FnName:  "log",
		FnArity: 1,
		Fn: func(_ *Interpreter, args []Value) (Value, error) {
			*log = append(*log, args[0])
			return NilValue, nil
		},
	})
}
