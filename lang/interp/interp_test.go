package interp_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/mna/loxwalk/lang/interp"
	"github.com/mna/loxwalk/lang/parser"
	"github.com/mna/loxwalk/lang/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type scenario struct {
	Name    string `yaml:"name"`
	Source  string `yaml:"source"`
	Want    string `yaml:"want"`
	WantErr string `yaml:"wantErr"`
}

// run scans, parses, resolves and interprets src, returning the display
// value of its final statement (or Nil's display form if src has no
// statements or its final statement is not an expression).
func run(t *testing.T, src string) (string, error) {
	t.Helper()

	stmts, err := parser.ParseProgram([]byte(src))
	if err != nil {
		return "", err
	}
	locals, err := resolver.Resolve(stmts)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	i := interp.New(&out)
	i.RegisterBuiltins(nil)

	if len(stmts) == 0 {
		return interp.NilValue.String(), nil
	}
	for _, s := range stmts[:len(stmts)-1] {
		if _, err := i.RunStmtForValue(s, locals); err != nil {
			return "", err
		}
	}
	last, err := i.RunStmtForValue(stmts[len(stmts)-1], locals)
	if err != nil {
		return "", err
	}
	if last == nil {
		return interp.NilValue.String(), nil
	}
	return last.String(), nil
}

func TestScenarios(t *testing.T) {
	data, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var scenarios []scenario
	require.NoError(t, yaml.Unmarshal(data, &scenarios))
	require.NotEmpty(t, scenarios)

	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			got, err := run(t, sc.Source)
			if sc.WantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), sc.WantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, sc.Want, got)
		})
	}
}

func TestBoundaryEquality(t *testing.T) {
	got, err := run(t, `0 == -0;`)
	require.NoError(t, err)
	assert.Equal(t, "true", got)

	got, err = run(t, `nil == nil;`)
	require.NoError(t, err)
	assert.Equal(t, "true", got)

	got, err = run(t, `nil == 0;`)
	require.NoError(t, err)
	assert.Equal(t, "false", got)
}

func TestBoundaryStringConcat(t *testing.T) {
	got, err := run(t, `"a" + 1;`)
	require.NoError(t, err)
	assert.Equal(t, "a1.0", got)

	got, err = run(t, `1 + "a";`)
	require.NoError(t, err)
	assert.Equal(t, "1.0a", got)

	_, err = run(t, `true + nil;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Operands must be two numbers or two strings.")
}

func TestBoundaryDivisionByZero(t *testing.T) {
	got, err := run(t, `1 / 0;`)
	require.NoError(t, err)
	assert.Equal(t, "inf", got)
}

func TestRuntimeErrorUndefinedVariable(t *testing.T) {
	_, err := run(t, `print undefinedThing;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'undefinedThing'.")
}

func TestRuntimeErrorCallNonCallable(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can only call functions and classes.")
}

func TestRuntimeErrorArityMismatch(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 2 arguments but got 1.")
}

func TestLogBuiltinInjection(t *testing.T) {
	stmts, err := parser.ParseProgram([]byte(`log(1); log(2); log(3);`))
	require.NoError(t, err)

	var logged []interp.Value
	var out bytes.Buffer
	i := interp.New(&out)
	i.RegisterBuiltins(nil)
	i.RegisterLog(&logged)

	locals, err := resolver.Resolve(stmts)
	require.NoError(t, err)
	require.NoError(t, i.Run(stmts, locals))

	require.Len(t, logged, 3)
	assert.Equal(t, "1.0", logged[0].String())
	assert.Equal(t, "3.0", logged[2].String())
}
