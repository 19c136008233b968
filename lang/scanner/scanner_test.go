package scanner_test

import (
	"testing"

	"github.com/mna/loxwalk/lang/scanner"
	"github.com/mna/loxwalk/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Type
	}{
		{"empty", "", []token.Type{token.EOF}},
		{
			"punctuation",
			"(){},.-+;*",
			[]token.Type{
				token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
				token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR, token.EOF,
			},
		},
		{
			"one or two char operators",
			"! != = == < <= > >=",
			[]token.Type{
				token.BANG, token.BANGEQ, token.EQ, token.EQEQ,
				token.LT, token.LE, token.GT, token.GE, token.EOF,
			},
		},
		{
			"line comment ignored",
			"var x = 1; // a comment\nvar y = 2;",
			[]token.Type{
				token.VAR, token.IDENT, token.EQ, token.NUMBER, token.SEMICOLON,
				token.VAR, token.IDENT, token.EQ, token.NUMBER, token.SEMICOLON, token.EOF,
			},
		},
		{
			"keywords vs identifiers",
			"and class else false fun for if nil or print return super this true var while orchid",
			[]token.Type{
				token.AND, token.CLASS, token.ELSE, token.FALSE, token.FUN, token.FOR,
				token.IF, token.NIL, token.OR, token.PRINT, token.RETURN, token.SUPER,
				token.THIS, token.TRUE, token.VAR, token.WHILE, token.IDENT, token.EOF,
			},
		},
		{
			"string literal",
			`"hello world"`,
			[]token.Type{token.STRING, token.EOF},
		},
		{
			"number literals",
			"123 1.5 0.5",
			[]token.Type{token.NUMBER, token.NUMBER, token.NUMBER, token.EOF},
		},
		{
			"slash is division not comment",
			"8 / 2",
			[]token.Type{token.NUMBER, token.SLASH, token.NUMBER, token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := scanner.ScanTokens([]byte(tt.src))
			require.NoError(t, err)
			got := make([]token.Type, len(toks))
			for i, tok := range toks {
				got[i] = tok.Type
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanLiteralValues(t *testing.T) {
	toks, err := scanner.ScanTokens([]byte(`"abc" 3.25 count`))
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, "abc", toks[0].Literal)
	assert.Equal(t, 3.25, toks[1].Literal)
	assert.Equal(t, "count", toks[2].Literal)
}

func TestScanErrors(t *testing.T) {
	t.Run("illegal character", func(t *testing.T) {
		_, err := scanner.ScanTokens([]byte("@"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unexpected character.")
	})

	t.Run("unterminated string", func(t *testing.T) {
		_, err := scanner.ScanTokens([]byte(`"abc`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unterminated string.")
	})
}

func TestScanLineTracking(t *testing.T) {
	toks, err := scanner.ScanTokens([]byte("var x = 1;\nvar y = 2;\n"))
	require.NoError(t, err)
	require.True(t, len(toks) > 6)
	assert.Equal(t, 1, toks[0].Line())
	var secondVarLine int
	count := 0
	for _, tok := range toks {
		if tok.Type == token.VAR {
			count++
			if count == 2 {
				secondVarLine = tok.Line()
			}
		}
	}
	assert.Equal(t, 2, secondVarLine)
}
