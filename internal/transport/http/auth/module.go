package auth

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	authmw "github.com/Harihuynh2007/sales-app/internal/auth"
)

// Module wires HTTP auth handlers.
var Module = fx.Options(
	fx.Provide(NewHandler),
	fx.Invoke(func(e *echo.Echo, h *Handler, issuer *authmw.TokenIssuer) {
		Register(e, h, issuer)
	}),
)
