package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/grandboard/internal/common"
)

func TestGate_PlainSecret(t *testing.T) {
	g := NewGate("DC-Thales")

	assert.NoError(t, g.Check("DC-Thales"))
	assert.NoError(t, g.Check("  DC-Thales\n"))
	assert.ErrorIs(t, g.Check("dc-thales"), common.ErrAccessDenied)
	assert.ErrorIs(t, g.Check(""), common.ErrAccessDenied)
}

func TestGate_BcryptSecret(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	g := NewGate(string(hash))
	assert.NoError(t, g.Check("s3cret"))
	assert.ErrorIs(t, g.Check("wrong"), common.ErrAccessDenied)
	assert.ErrorIs(t, g.Check(string(hash)), common.ErrAccessDenied)
}

func TestGate_EmptySecretDeniesEverything(t *testing.T) {
	g := NewGate("")
	assert.ErrorIs(t, g.Check("anything"), common.ErrAccessDenied)
	assert.ErrorIs(t, g.Check(""), common.ErrAccessDenied)
}

func TestHashCode(t *testing.T) {
	h, err := HashCode(" code ")
	require.NoError(t, err)
	assert.True(t, isBcrypt(h))
	assert.NoError(t, NewGate(h).Check("code"))
}
