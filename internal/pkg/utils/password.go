package utils

import (
	"crypto/rand"
	"math/big"
)

const tempPasswordChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateTempPassword returns a random lowercase alphanumeric string.
func GenerateTempPassword(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(tempPasswordChars)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = tempPasswordChars[n.Int64()]
	}
	return string(out), nil
}
