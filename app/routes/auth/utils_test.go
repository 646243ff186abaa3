package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffTokenRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "admin@school.test", "Jane", "Doe", []string{"admin"})
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@school.test", claims.Email)
	assert.Equal(t, []string{"admin"}, claims.Roles)
}

func TestPortalTokenRoundTrip(t *testing.T) {
	token, err := GeneratePortalJWT("student-1", "S100")
	require.NoError(t, err)

	claims, err := ValidatePortalJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "student-1", claims.StudentID)
	assert.Equal(t, "S100", claims.RegNumber)
}

// Staff and portal tokens share a signing secret, so validation must pin
// the issuer: a student's portal token must never pass staff validation.
func TestStaffValidationRejectsPortalToken(t *testing.T) {
	token, err := GeneratePortalJWT("student-1", "S100")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestPortalValidationRejectsStaffToken(t *testing.T) {
	token, err := GenerateJWT("user-1", "admin@school.test", "Jane", "Doe", []string{"admin"})
	require.NoError(t, err)

	claims, err := ValidatePortalJWT(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	claims, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
