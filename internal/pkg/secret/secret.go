package secret

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("secret hashing failed")
	ErrComparisonFailed = errors.New("secret comparison failed")
	ErrInvalidSecret    = errors.New("invalid secret")
)

const DefaultCost = bcrypt.DefaultCost

func Hash(s string) (string, error) {
	if s == "" {
		return "", ErrInvalidSecret
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(s), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func CompareHash(hashed, s string) error {
	if hashed == "" || s == "" {
		return ErrInvalidSecret
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(s))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

// ComparePlain checks a plain-text shared secret in constant time.
func ComparePlain(expected, s string) error {
	if expected == "" || s == "" {
		return ErrInvalidSecret
	}

	if subtle.ConstantTimeCompare([]byte(expected), []byte(s)) != 1 {
		return ErrComparisonFailed
	}

	return nil
}
