package generator

import (
	"crypto/rand"
	"math/big"
)

// NumericCode returns a random decimal code of the given length, for
// email verification.
func NumericCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
