package utils

import (
	"errors"
	"math/rand"
	"strings"
)

const letters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateRandomString returns a random URL-safe alias of length n.
// Uniqueness is probabilistic; collisions are not checked against the store.
func GenerateRandomString(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("non-positive length")
	}
	ret := make([]byte, n)
	for i := 0; i < n; i++ {
		num := rand.Intn(len(letters))
		ret[i] = letters[num]
	}

	return string(ret), nil
}

// NormalizeURL prepends https:// unless the URL already carries an explicit
// http or https scheme. No structural validation beyond that.
func NormalizeURL(rawURL string) string {
	lower := strings.ToLower(rawURL)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return rawURL
	}

	return "https://" + rawURL
}
