package utils

import (
	"testing"
	"time"

	"github.com/pmarkota/mystery-back/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "mystery-back"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_Roundtrip(t *testing.T) {
	claims := models.SessionClaims{
		Role:     models.RoleUser,
		Username: "alice",
		Email:    "alice@example.com",
		Credits:  10,
	}

	token, err := GenerateJWTToken(testIssuer, 7, claims, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(7), token.SubjectID)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.SubjectID)
	assert.Equal(t, models.RoleUser, parsed.Role)
	assert.Equal(t, "alice", parsed.Username)
	assert.Equal(t, "alice@example.com", parsed.Email)
	assert.Equal(t, int64(10), parsed.Credits)
	assert.False(t, parsed.IsAdmin())
}

func TestGenerateJWTToken_AdminRole(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 1, models.SessionClaims{Role: models.RoleAdmin, Username: "root"}, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.True(t, parsed.IsAdmin())
	assert.Equal(t, int64(1), parsed.SubjectID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, duration: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, models.SessionClaims{}, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 7, models.SessionClaims{Role: models.RoleUser}, time.Hour, testSignKey)
	require.NoError(t, err)

	t.Run("garbage token", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer)
		assert.Error(t, err)
	})

	t.Run("wrong sign key", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(token.SignedString, "other-key", testIssuer)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, "someone-else")
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := GenerateJWTToken(testIssuer, 7, models.SessionClaims{Role: models.RoleUser}, -time.Minute, testSignKey)
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(expired.SignedString, testSignKey, testIssuer)
		assert.Error(t, err)
	})
}
