package auth

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Harihuynh2007/sales-app/internal/entity"
	"github.com/Harihuynh2007/sales-app/internal/presentation/http/response"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

const claimsContextKey = "auth.claims"

// Authenticate validates the bearer token and stores the resolved claims in
// the request context. A missing token is reported as 401, a rejected one
// as 403; the malformed/expired/signature distinction stays internal.
func Authenticate(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return response.New(c).WithError(errorbank.Unauthorized("no token provided")).Build()
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return response.New(c).WithError(errorbank.Unauthorized("no token provided")).Build()
			}

			claims, err := issuer.Validate(parts[1])
			if err != nil {
				return response.New(c).WithError(errorbank.Forbidden("invalid token", errorbank.WithCause(err))).Build()
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// RequireRole denies the request unless the authenticated caller's role is
// in the allowed set. Must run after Authenticate.
func RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return response.New(c).WithError(errorbank.Unauthorized("no token provided")).Build()
			}
			for _, role := range allowed {
				if claims.Role == role {
					return next(c)
				}
			}
			return response.New(c).WithError(errorbank.Forbidden("insufficient role")).Build()
		}
	}
}

// RequireOwnership restricts Customer-role callers to rows keyed by their
// own customer number: the named path parameter must equal the
// customerNumber claim. Admin and Sales callers pass through. Must run
// after Authenticate.
func RequireOwnership(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return response.New(c).WithError(errorbank.Unauthorized("no token provided")).Build()
			}
			if claims.Role != entity.RoleCustomer {
				return next(c)
			}
			id, err := strconv.ParseInt(c.Param(param), 10, 64)
			if err != nil || claims.CustomerNumber == nil || *claims.CustomerNumber != id {
				return response.New(c).WithError(errorbank.Forbidden("insufficient role")).Build()
			}
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims attached by Authenticate.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	return claims, ok
}
