package office

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	authmw "github.com/Harihuynh2007/sales-app/internal/auth"
	"github.com/Harihuynh2007/sales-app/internal/dto"
	"github.com/Harihuynh2007/sales-app/internal/entity"
	"github.com/Harihuynh2007/sales-app/internal/presentation/http/response"
	service "github.com/Harihuynh2007/sales-app/internal/service/office"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/transport/http/office")

// Handler exposes office endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs an office Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance. Writes are admin only;
// there is no delete route.
func Register(e *echo.Echo, h *Handler, issuer *authmw.TokenIssuer) {
	authed := authmw.Authenticate(issuer)
	admin := authmw.RequireRole(entity.RoleAdmin)

	g := e.Group("/api/offices", authed)
	g.GET("", h.list)
	g.GET("/:code", h.get)
	g.POST("", h.create, admin)
	g.PUT("/:code", h.update, admin)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "offices.list")
	defer span.End()

	offices, err := h.svc.List(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.OfficeResponse, 0, len(offices))
	for i := range offices {
		out = append(out, toDTO(&offices[i]))
	}
	return b.WithData(out).Build()
}

func (h *Handler) get(c echo.Context) error {
	b := response.New(c)
	code := c.Param("code")

	ctx, span := httpTracer.Start(c.Request().Context(), "offices.get", trace.WithAttributes(attribute.String("office.code", code)))
	defer span.End()

	office, err := h.svc.Get(ctx, code)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(toDTO(office)).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload officePayload
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	office := payload.toEntity(payload.OfficeCode)

	ctx, span := httpTracer.Start(c.Request().Context(), "offices.create", trace.WithAttributes(attribute.String("office.code", office.Code)))
	defer span.End()

	if err := h.svc.Create(ctx, office); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithStatus(http.StatusCreated).WithMessage("office created").WithData(toDTO(office)).Build()
}

func (h *Handler) update(c echo.Context) error {
	b := response.New(c)
	code := c.Param("code")

	var payload officePayload
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	office := payload.toEntity(code)

	ctx, span := httpTracer.Start(c.Request().Context(), "offices.update", trace.WithAttributes(attribute.String("office.code", code)))
	defer span.End()

	if err := h.svc.Update(ctx, office); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithMessage("office updated").WithData(toDTO(office)).Build()
}

type officePayload struct {
	OfficeCode   string `json:"officeCode"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	State        string `json:"state"`
	Country      string `json:"country"`
	PostalCode   string `json:"postalCode"`
	Territory    string `json:"territory"`
}

func (p officePayload) toEntity(code string) *entity.Office {
	return &entity.Office{
		Code:         code,
		City:         p.City,
		Phone:        p.Phone,
		AddressLine1: p.AddressLine1,
		AddressLine2: p.AddressLine2,
		State:        p.State,
		Country:      p.Country,
		PostalCode:   p.PostalCode,
		Territory:    p.Territory,
	}
}

func toDTO(office *entity.Office) dto.OfficeResponse {
	return dto.OfficeResponse{
		OfficeCode:   office.Code,
		City:         office.City,
		Phone:        office.Phone,
		AddressLine1: office.AddressLine1,
		AddressLine2: office.AddressLine2,
		State:        office.State,
		Country:      office.Country,
		PostalCode:   office.PostalCode,
		Territory:    office.Territory,
	}
}
