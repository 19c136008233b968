package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	cases := []struct {
		lit  string
		want Type
	}{
		{"and", AND},
		{"class", CLASS},
		{"while", WHILE},
		{"this", THIS},
		{"foo", IDENT},
		{"classify", IDENT},
	}
	for _, c := range cases {
		t.Run(c.lit, func(t *testing.T) {
			assert.Equal(t, c.want, LookupIdent(c.lit))
		})
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "+", PLUS.String())
	assert.Equal(t, "identifier", IDENT.String())
	assert.Equal(t, "'+'", PLUS.GoString())
	assert.Equal(t, "and", AND.GoString())
}
