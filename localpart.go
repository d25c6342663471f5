package tempmail

import "math/rand/v2"

// Local-part length bounds for generated addresses.
const (
	minLocalPartLen = 12
	maxLocalPartLen = 16
)

const (
	lowerAlphabet    = "abcdefghijklmnopqrstuvwxyz"
	passwordAlphabet = lowerAlphabet + "0123456789"
	passwordLen      = 16
)

// generateLocalPart returns a random lowercase alphabetic string with a
// length chosen uniformly in [minLocalPartLen, maxLocalPartLen]. The
// result always matches ^[a-z]{12,16}$.
func generateLocalPart() string {
	n := minLocalPartLen + rand.IntN(maxLocalPartLen-minLocalPartLen+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = lowerAlphabet[rand.IntN(len(lowerAlphabet))]
	}
	return string(b)
}

// generatePassword returns a random alphanumeric password for accounts
// provisioned without a caller-supplied one.
func generatePassword() string {
	b := make([]byte, passwordLen)
	for i := range b {
		b[i] = passwordAlphabet[rand.IntN(len(passwordAlphabet))]
	}
	return string(b)
}
