package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "campusdesk.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(42, "student@campus.edu", "student")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "student@campus.edu", claims.Email)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "campusdesk.test", claims.Issuer)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, _, err := svc.GenerateToken(1, "a@b.co", "student")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	other := NewJWTService(JWTConfig{
		SecretKey:      "other-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campusdesk.test",
	})

	token, _, err := svc.GenerateToken(1, "a@b.co", "student")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing prefix", header: "abc.def.ghi", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "empty", header: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestValidateAndExtractClaimsEmptyToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	_, err := svc.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
