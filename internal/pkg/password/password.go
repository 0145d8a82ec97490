package password

import (
	"golang.org/x/crypto/bcrypt"

	"venue-desk/internal/pkg/errs"
)

var (
	ErrEmpty    = errs.New("password is empty")
	ErrMismatch = errs.New("password does not match")
	ErrBadHash  = errs.New("stored password hash is malformed")
)

const DefaultCost = bcrypt.DefaultCost

// HashPassword produces the value for OPERATOR_PASSWORD_HASH.
func HashPassword(plain string) (string, error) {
	return HashPasswordWithCost(plain, DefaultCost)
}

func HashPasswordWithCost(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errs.Wrap(err, "hash operator password")
	}
	return string(hashed), nil
}

// ComparePassword runs the full bcrypt comparison even for an empty
// candidate, so a rejected login costs the same as a wrong password.
func ComparePassword(hash, plain string) error {
	if hash == "" {
		return ErrBadHash
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil && plain == "":
		return ErrEmpty
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Mark(err, ErrBadHash)
	}
}

// Cost reports the work factor of a stored hash.
func Cost(hash string) (int, error) {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return 0, errs.Mark(err, ErrBadHash)
	}
	return cost, nil
}
