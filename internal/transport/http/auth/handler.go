package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	authmw "github.com/Harihuynh2007/sales-app/internal/auth"
	"github.com/Harihuynh2007/sales-app/internal/dto"
	"github.com/Harihuynh2007/sales-app/internal/entity"
	"github.com/Harihuynh2007/sales-app/internal/presentation/http/response"
	service "github.com/Harihuynh2007/sales-app/internal/service/auth"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/transport/http/auth")

// Handler exposes registration, login and profile endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs an auth Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler, issuer *authmw.TokenIssuer) {
	g := e.Group("/api/auth")
	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.GET("/me", h.me, authmw.Authenticate(issuer))
}

func (h *Handler) register(c echo.Context) error {
	b := response.New(c)

	var payload struct {
		FirstName  string `json:"firstName"`
		LastName   string `json:"lastName"`
		Email      string `json:"email"`
		Password   string `json:"password"`
		Role       string `json:"role"`
		OfficeCode string `json:"officeCode"`
		JobTitle   string `json:"jobTitle"`
	}
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "auth.register")
	defer span.End()

	account, err := h.svc.Register(ctx, service.RegisterInput{
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Email:      payload.Email,
		Password:   payload.Password,
		Role:       entity.Role(payload.Role),
		OfficeCode: payload.OfficeCode,
		JobTitle:   payload.JobTitle,
	})
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).
		WithMessage("user registered").
		WithData(dto.RegisterResponse{ID: account.ID}).
		Build()
}

func (h *Handler) login(c echo.Context) error {
	b := response.New(c)

	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "auth.login")
	defer span.End()

	token, account, err := h.svc.Login(ctx, payload.Email, payload.Password)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(dto.LoginResponse{Token: token, User: toUserDTO(account)}).Build()
}

func (h *Handler) me(c echo.Context) error {
	b := response.New(c)

	claims, ok := authmw.ClaimsFrom(c)
	if !ok {
		return b.WithError(errorbank.Unauthorized("no token provided")).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "auth.me")
	defer span.End()

	account, err := h.svc.Me(ctx, claims.UserID)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(toUserDTO(account)).Build()
}

func toUserDTO(account *entity.User) dto.UserResponse {
	name := account.FirstName
	if account.LastName != "" {
		name += " " + account.LastName
	}
	return dto.UserResponse{
		ID:             account.ID,
		Name:           name,
		Email:          account.Email,
		Role:           string(account.Role),
		CustomerNumber: account.CustomerNumber,
	}
}
