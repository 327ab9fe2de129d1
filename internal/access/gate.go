// Package access guards catalog mutations behind a shared access code.
package access

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/grandboard/internal/common"
)

// Gate checks codes against the configured secret, which is either the
// code itself or its bcrypt hash.
type Gate struct {
	secret []byte
	hashed bool
}

func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret), hashed: isBcrypt(secret)}
}

// Check returns common.ErrAccessDenied unless code matches.
func (g *Gate) Check(code string) error {
	candidate := []byte(strings.TrimSpace(code))
	if len(g.secret) == 0 || len(candidate) == 0 {
		return common.ErrAccessDenied
	}

	if g.hashed {
		if bcrypt.CompareHashAndPassword(g.secret, candidate) != nil {
			return common.ErrAccessDenied
		}
		return nil
	}

	if subtle.ConstantTimeCompare(g.secret, candidate) != 1 {
		return common.ErrAccessDenied
	}
	return nil
}

// HashCode returns a bcrypt hash suitable as the configured secret.
func HashCode(code string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(code)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func isBcrypt(s string) bool {
	for _, p := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
