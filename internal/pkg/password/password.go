// Package password wraps bcrypt for the account credentials stored with each user.
package password

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordTooLong  = errors.New("password exceeds 72 bytes")
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
)

// bcrypt ignores everything past this many bytes, so longer inputs are refused
// instead of being silently truncated.
const maxBytes = 72

// Cost is a variable so tests and the seeder can lower it.
var Cost = bcrypt.DefaultCost

func HashPassword(plain string) (string, error) {
	if err := checkInput(plain); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "bcrypt"), ErrHashingFailed)
	}
	return string(hash), nil
}

// ComparePassword returns ErrComparisonFailed on a mismatch. A malformed stored
// hash is returned wrapped so callers can tell corruption from bad credentials.
func ComparePassword(hash, plain string) error {
	if hash == "" {
		return ErrInvalidPassword
	}
	if err := checkInput(plain); err != nil {
		return err
	}
	switch err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return errors.Wrap(err, "stored password hash")
	}
}

// NeedsRehash reports whether hash was produced with a cost other than Cost.
func NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	return err != nil || cost != Cost
}

func checkInput(plain string) error {
	switch {
	case plain == "":
		return ErrInvalidPassword
	case len(plain) > maxBytes:
		return ErrPasswordTooLong
	}
	return nil
}
