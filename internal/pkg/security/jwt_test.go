package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, []string{"USER", "ADMIN"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, []string{"USER", "ADMIN"}, claims.Roles)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken(42, []string{"USER"})
	assert.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken(42, []string{"USER"})
	assert.NoError(t, err)

	sig, err := ExtractSignature(token)
	assert.NoError(t, err)
	assert.NotEmpty(t, sig)

	_, err = ExtractSignature("not-a-jwt")
	assert.Error(t, err)
}
