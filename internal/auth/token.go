package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Harihuynh2007/sales-app/internal/config"
	"github.com/Harihuynh2007/sales-app/internal/entity"
)

// Validation failures are distinguished internally for diagnostics; the
// transport layer reports all of them as the same authentication failure.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("token signature invalid")
)

// Claims is the identity payload embedded in a session token.
type Claims struct {
	UserID         int64       `json:"uid"`
	Email          string      `json:"email"`
	Role           entity.Role `json:"role"`
	CustomerNumber *int64      `json:"customerNumber,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and validates signed session tokens. The signing key is
// process-wide configuration, loaded once at startup and never rotated at
// runtime.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer constructs an issuer from application config.
func NewTokenIssuer(cfg config.Config) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(cfg.Auth.JWTSecret),
		ttl:    cfg.Auth.TokenTTL,
		now:    time.Now,
	}
}

// Issue signs a token carrying the user's identity, role, and email with an
// absolute expiry of issuance time plus the configured TTL.
func (t *TokenIssuer) Issue(user *entity.User) (string, error) {
	now := t.now()
	claims := &Claims{
		UserID:         user.ID,
		Email:          user.Email,
		Role:           user.Role,
		CustomerNumber: user.CustomerNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate parses and verifies a token, returning its claims. Failures are
// classified as malformed, expired, or signature mismatch.
func (t *TokenIssuer) Validate(tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignature
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrTokenSignature):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, ErrTokenSignature
	}
	return claims, nil
}
