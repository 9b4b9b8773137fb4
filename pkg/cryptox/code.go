package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateHexCode returns a lowercase hex string of the requested character
// length from a cryptographic source. Used for email verification codes.
func GenerateHexCode(length int) (string, error) {
	if length <= 0 || length%2 != 0 {
		return "", fmt.Errorf("cryptox: hex code length must be positive and even, got %d", length)
	}

	buf := make([]byte, length/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// GenerateAlphanumericCode returns a mixed-case alphanumeric string of the
// requested length from a cryptographic source. Used for referral codes,
// where codes are short and typed by humans but must be unguessable.
func GenerateAlphanumericCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("cryptox: code length must be positive, got %d", length)
	}

	out := make([]byte, length)
	max := big.NewInt(int64(len(alphanumeric)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("cryptox: failed to read random index: %w", err)
		}
		out[i] = alphanumeric[n.Int64()]
	}
	return string(out), nil
}
