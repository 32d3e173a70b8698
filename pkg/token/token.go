package token

import "crypto/rand"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate returns a crypto-secure random room code of length n.
// The code contains only uppercase letters and digits.
func Generate(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	for i, c := range b {
		b[i] = alphabet[int(c)%len(alphabet)]
	}

	return string(b), nil
}
