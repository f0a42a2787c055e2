package service

import (
	"fmt"
	"strings"

	"github.com/matthewhartstonge/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	HasherBcrypt = "bcrypt"
	HasherArgon2 = "argon2"
)

// bcryptMaxBytes is the longest input bcrypt accepts.
const bcryptMaxBytes = 72

// PasswordHasher produces one-way encoded password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// NewPasswordHasher returns the hasher for scheme. An empty scheme selects bcrypt.
func NewPasswordHasher(scheme string) (PasswordHasher, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", HasherBcrypt:
		return bcryptHasher{cost: bcrypt.DefaultCost, long: argon2Hasher{cfg: argon2.DefaultConfig()}}, nil
	case HasherArgon2:
		return argon2Hasher{cfg: argon2.DefaultConfig()}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", scheme)
	}
}

// bcryptHasher hands passwords longer than bcryptMaxBytes to argon2id;
// verifyPassword tells the two apart by prefix.
type bcryptHasher struct {
	cost int
	long argon2Hasher
}

func (h bcryptHasher) Hash(password string) (string, error) {
	if len(password) > bcryptMaxBytes {
		return h.long.Hash(password)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

type argon2Hasher struct {
	cfg argon2.Config
}

func (h argon2Hasher) Hash(password string) (string, error) {
	cfg := h.cfg
	encoded, err := cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// verifyPassword checks password against a hash of either supported scheme,
// so accounts survive a change of PASSWORD_HASHER.
func verifyPassword(encoded, password string) bool {
	if strings.HasPrefix(encoded, "$argon2") {
		ok, err := argon2.VerifyEncoded([]byte(password), []byte(encoded))
		return err == nil && ok
	}
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}
