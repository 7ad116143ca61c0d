package invitecode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerator_Generate(t *testing.T) {
	g := NewRandomGenerator(10)
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		code, err := g.Generate()
		require.NoError(t, err)
		require.Len(t, code, 10)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(Alphabet, r), "unexpected rune %q in %s", r, code)
		}
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}

func TestNewRandomGenerator_DefaultLength(t *testing.T) {
	code, err := NewRandomGenerator(0).Generate()
	require.NoError(t, err)
	assert.Len(t, code, DefaultLength)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ABCD2345", "ABCD2345"},
		{"abcd2345", "ABCD2345"},
		{"  abCD 2345\n", "ABCD2345"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}
