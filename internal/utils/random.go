package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateToken returns prefix followed by length random alphanumeric
// characters drawn from crypto/rand.
//
// Example usage:
//
//	token, err := utils.GenerateToken("ak_", 40)
func GenerateToken(prefix string, length int) (string, error) {
	max := big.NewInt(int64(len(tokenCharset)))

	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random token: %w", err)
		}
		buf[i] = tokenCharset[n.Int64()]
	}

	return prefix + string(buf), nil
}
