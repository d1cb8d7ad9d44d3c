package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harihuynh2007/sales-app/internal/entity"
)

func performRequest(t *testing.T, issuer *TokenIssuer, authHeader string, roles ...entity.Role) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	chain := Authenticate(issuer)(handler)
	if len(roles) > 0 {
		chain = Authenticate(issuer)(RequireRole(roles...)(handler))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, chain(e.NewContext(req, rec)))
	return rec
}

func TestAuthenticateMissingToken(t *testing.T) {
	issuer := testIssuer("secret", time.Hour)

	rec := performRequest(t, issuer, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no token provided")

	rec = performRequest(t, issuer, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	issuer := testIssuer("secret", time.Hour)

	rec := performRequest(t, issuer, "Bearer garbage")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestAuthenticateExpiredToken(t *testing.T) {
	issuer := testIssuer("secret", time.Hour)
	issued := time.Now()
	issuer.now = func() time.Time { return issued }
	token, err := issuer.Issue(&entity.User{ID: 1, Email: "a@b.c", Role: entity.RoleAdmin})
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(2 * time.Hour) }
	rec := performRequest(t, issuer, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoleGate(t *testing.T) {
	issuer := testIssuer("secret", time.Hour)

	cases := []struct {
		name    string
		role    entity.Role
		allowed []entity.Role
		status  int
	}{
		{"admin allowed", entity.RoleAdmin, []entity.Role{entity.RoleAdmin}, http.StatusOK},
		{"sales allowed among set", entity.RoleSales, []entity.Role{entity.RoleAdmin, entity.RoleSales}, http.StatusOK},
		{"customer denied", entity.RoleCustomer, []entity.Role{entity.RoleAdmin, entity.RoleSales}, http.StatusForbidden},
		{"sales denied admin-only", entity.RoleSales, []entity.Role{entity.RoleAdmin}, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := issuer.Issue(&entity.User{ID: 9, Email: "u@example.com", Role: tc.role})
			require.NoError(t, err)

			rec := performRequest(t, issuer, "Bearer "+token, tc.allowed...)
			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusForbidden {
				assert.Contains(t, rec.Body.String(), "insufficient role")
			}
		})
	}
}

func TestOwnershipGate(t *testing.T) {
	issuer := testIssuer("secret", time.Hour)
	own := int64(42)

	cases := []struct {
		name   string
		user   entity.User
		param  string
		status int
	}{
		{"admin reads anyone", entity.User{ID: 1, Email: "a@example.com", Role: entity.RoleAdmin}, "7", http.StatusOK},
		{"sales reads anyone", entity.User{ID: 2, Email: "s@example.com", Role: entity.RoleSales}, "7", http.StatusOK},
		{"customer reads own row", entity.User{ID: 3, Email: "c@example.com", Role: entity.RoleCustomer, CustomerNumber: &own}, "42", http.StatusOK},
		{"customer denied other row", entity.User{ID: 3, Email: "c@example.com", Role: entity.RoleCustomer, CustomerNumber: &own}, "7", http.StatusForbidden},
		{"customer without link denied", entity.User{ID: 4, Email: "x@example.com", Role: entity.RoleCustomer}, "42", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := issuer.Issue(&tc.user)
			require.NoError(t, err)

			e := echo.New()
			handler := func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			}
			chain := Authenticate(issuer)(RequireOwnership("id")(handler))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tc.param)
			require.NoError(t, chain(c))

			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestClaimsAttachedToContext(t *testing.T) {
	issuer := testIssuer("secret", time.Hour)
	token, err := issuer.Issue(&entity.User{ID: 5, Email: "me@example.com", Role: entity.RoleCustomer})
	require.NoError(t, err)

	e := echo.New()
	var got *Claims
	handler := Authenticate(issuer)(func(c echo.Context) error {
		claims, ok := ClaimsFrom(c)
		require.True(t, ok)
		got = claims
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))

	require.NotNil(t, got)
	assert.Equal(t, int64(5), got.UserID)
	assert.Equal(t, entity.RoleCustomer, got.Role)
}
