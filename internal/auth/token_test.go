package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harihuynh2007/sales-app/internal/config"
	"github.com/Harihuynh2007/sales-app/internal/entity"
)

func testIssuer(secret string, ttl time.Duration) *TokenIssuer {
	cfg := config.Config{}
	cfg.Auth.JWTSecret = secret
	cfg.Auth.TokenTTL = ttl
	return NewTokenIssuer(cfg)
}

func TestIssueValidateRoundTrip(t *testing.T) {
	issuer := testIssuer("test-secret", 8*time.Hour)
	customerNumber := int64(114)
	user := &entity.User{
		ID:             42,
		Email:          "sales@example.com",
		Role:           entity.RoleSales,
		CustomerNumber: &customerNumber,
	}

	token, err := issuer.Issue(user)
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "sales@example.com", claims.Email)
	assert.Equal(t, entity.RoleSales, claims.Role)
	require.NotNil(t, claims.CustomerNumber)
	assert.Equal(t, int64(114), *claims.CustomerNumber)
}

func TestValidateExpired(t *testing.T) {
	issuer := testIssuer("test-secret", 8*time.Hour)
	issued := time.Now()
	issuer.now = func() time.Time { return issued }

	token, err := issuer.Issue(&entity.User{ID: 1, Email: "a@b.c", Role: entity.RoleAdmin})
	require.NoError(t, err)

	// Still valid just before the 8 hour window closes.
	issuer.now = func() time.Time { return issued.Add(8*time.Hour - time.Minute) }
	_, err = issuer.Validate(token)
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(8*time.Hour + time.Minute) }
	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateWrongSignature(t *testing.T) {
	issuer := testIssuer("test-secret", time.Hour)
	other := testIssuer("other-secret", time.Hour)

	token, err := other.Issue(&entity.User{ID: 7, Email: "x@y.z", Role: entity.RoleCustomer})
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestValidateMalformed(t *testing.T) {
	issuer := testIssuer("test-secret", time.Hour)

	_, err := issuer.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrTokenMalformed)

	_, err = issuer.Validate("")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
