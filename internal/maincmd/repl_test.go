package maincmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExitLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"exit", true},
		{"q", true},
		{"", false},
		{"quit", false},
		{"exit()", false},
		{"print 1;", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isExitLine(tt.line), "isExitLine(%q)", tt.line)
	}
}
