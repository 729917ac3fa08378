package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// NumberGenerator draws candidate account numbers. Injected so tests can force
// collisions; the production implementation is cryptographically strong.
type NumberGenerator interface {
	Generate(digits int) (string, error)
}

type cryptoNumberGenerator struct{}

func NewCryptoNumberGenerator() NumberGenerator {
	return cryptoNumberGenerator{}
}

var ten = big.NewInt(10)

func (cryptoNumberGenerator) Generate(digits int) (string, error) {
	var b strings.Builder
	b.Grow(digits)

	for i := 0; i < digits; i++ {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("draw account number digit: %w", err)
		}
		b.WriteByte('0' + byte(n.Int64()))
	}

	return b.String(), nil
}
