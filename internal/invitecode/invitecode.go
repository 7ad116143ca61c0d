// Package invitecode produces short, human-typeable group join codes.
package invitecode

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Alphabet is upper-case alphanumerics without the easily confused 0, O, 1 and I.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const DefaultLength = 8

type Generator interface {
	Generate() (string, error)
}

type RandomGenerator struct {
	length int
}

// NewRandomGenerator returns a crypto/rand backed generator. Non-positive
// lengths fall back to DefaultLength.
func NewRandomGenerator(length int) *RandomGenerator {
	if length <= 0 {
		length = DefaultLength
	}
	return &RandomGenerator{length: length}
}

func (g *RandomGenerator) Generate() (string, error) {
	limit := big.NewInt(int64(len(Alphabet)))
	var b strings.Builder
	b.Grow(g.length)
	for i := 0; i < g.length; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		b.WriteByte(Alphabet[n.Int64()])
	}
	return b.String(), nil
}

// Normalize folds user input to the stored form: surrounding and interior
// whitespace removed, upper-cased.
func Normalize(code string) string {
	return strings.ToUpper(strings.Join(strings.Fields(code), ""))
}
