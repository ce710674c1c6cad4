package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCodec turns a submitted password into its stored form and checks submissions against it.
type PasswordCodec interface {
	Encode(plain string) (string, error)
	Matches(stored, plain string) bool
}

const (
	PasswordStoragePlain  = "plain"
	PasswordStorageBcrypt = "bcrypt"
)

// Plaintext stores passwords verbatim and compares them case-sensitively.
// It keeps stored records compatible with the original form's storage layout.
type Plaintext struct{}

func (Plaintext) Encode(plain string) (string, error) { return plain, nil }

func (Plaintext) Matches(stored, plain string) bool { return stored == plain }

// Bcrypt stores bcrypt hashes.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Encode(plain string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (Bcrypt) Matches(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// CodecFor resolves a PASSWORD_STORAGE setting.
func CodecFor(name string) (PasswordCodec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PasswordStoragePlain:
		return Plaintext{}, nil
	case PasswordStorageBcrypt:
		return Bcrypt{}, nil
	default:
		return nil, fmt.Errorf("unknown password storage %q", name)
	}
}
