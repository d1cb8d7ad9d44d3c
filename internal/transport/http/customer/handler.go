package customer

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	authmw "github.com/Harihuynh2007/sales-app/internal/auth"
	"github.com/Harihuynh2007/sales-app/internal/dto"
	"github.com/Harihuynh2007/sales-app/internal/entity"
	"github.com/Harihuynh2007/sales-app/internal/presentation/http/response"
	orderrepo "github.com/Harihuynh2007/sales-app/internal/repository/order"
	service "github.com/Harihuynh2007/sales-app/internal/service/customer"
	ordersvc "github.com/Harihuynh2007/sales-app/internal/service/order"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/transport/http/customer")

// Handler exposes customer endpoints over HTTP.
type Handler struct {
	svc    *service.Service
	orders *ordersvc.Service
}

// NewHandler constructs a customer Handler.
func NewHandler(svc *service.Service, orders *ordersvc.Service) *Handler {
	return &Handler{svc: svc, orders: orders}
}

// Register routes with the provided Echo instance. Single-record reads are
// open to Customer-role callers for their own row only.
func Register(e *echo.Echo, h *Handler, issuer *authmw.TokenIssuer) {
	authed := authmw.Authenticate(issuer)
	staff := authmw.RequireRole(entity.RoleAdmin, entity.RoleSales)
	admin := authmw.RequireRole(entity.RoleAdmin)
	owner := authmw.RequireOwnership("id")

	g := e.Group("/api/customers", authed)
	g.GET("", h.list, staff)
	g.GET("/:id", h.get, owner)
	g.GET("/:id/orders", h.listOrders, owner)
	g.POST("", h.create, staff)
	g.PUT("/:id", h.update, staff)
	g.DELETE("/:id", h.delete, admin)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.list")
	defer span.End()

	customers, err := h.svc.List(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, toDTO(&customers[i]))
	}
	return b.WithData(out).Build()
}

func (h *Handler) get(c echo.Context) error {
	b := response.New(c)

	number, err := parseNumber(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.get", trace.WithAttributes(attribute.Int64("customer.number", number)))
	defer span.End()

	customer, err := h.svc.Get(ctx, number)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(toDTO(customer)).Build()
}

func (h *Handler) listOrders(c echo.Context) error {
	b := response.New(c)

	number, err := parseNumber(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.orders", trace.WithAttributes(attribute.Int64("customer.number", number)))
	defer span.End()

	rows, err := h.orders.ListByCustomer(ctx, number)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.OrderResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toOrderDTO(row))
	}
	return b.WithData(out).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload customerPayload
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	customer := payload.toEntity(0)

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.create")
	defer span.End()

	if err := h.svc.Create(ctx, customer); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithStatus(http.StatusCreated).WithMessage("customer created").WithData(toDTO(customer)).Build()
}

func (h *Handler) update(c echo.Context) error {
	b := response.New(c)

	number, err := parseNumber(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	var payload customerPayload
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	customer := payload.toEntity(number)

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.update", trace.WithAttributes(attribute.Int64("customer.number", number)))
	defer span.End()

	if err := h.svc.Update(ctx, customer); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithMessage("customer updated").WithData(toDTO(customer)).Build()
}

func (h *Handler) delete(c echo.Context) error {
	b := response.New(c)

	number, err := parseNumber(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.delete", trace.WithAttributes(attribute.Int64("customer.number", number)))
	defer span.End()

	if err := h.svc.Delete(ctx, number); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithMessage("customer deleted").Build()
}

func parseNumber(c echo.Context) (int64, error) {
	number, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errorbank.BadRequest("invalid customer number", errorbank.WithCause(err))
	}
	return number, nil
}

type customerPayload struct {
	CustomerName           string   `json:"customerName"`
	ContactLastName        string   `json:"contactLastName"`
	ContactFirstName       string   `json:"contactFirstName"`
	Phone                  string   `json:"phone"`
	AddressLine1           string   `json:"addressLine1"`
	AddressLine2           string   `json:"addressLine2"`
	City                   string   `json:"city"`
	State                  string   `json:"state"`
	PostalCode             string   `json:"postalCode"`
	Country                string   `json:"country"`
	SalesRepEmployeeNumber *int64   `json:"salesRepEmployeeNumber"`
	CreditLimit            *float64 `json:"creditLimit"`
}

func (p customerPayload) toEntity(number int64) *entity.Customer {
	return &entity.Customer{
		Number:           number,
		Name:             p.CustomerName,
		ContactLastName:  p.ContactLastName,
		ContactFirstName: p.ContactFirstName,
		Phone:            p.Phone,
		AddressLine1:     p.AddressLine1,
		AddressLine2:     p.AddressLine2,
		City:             p.City,
		State:            p.State,
		PostalCode:       p.PostalCode,
		Country:          p.Country,
		SalesRepNumber:   p.SalesRepEmployeeNumber,
		CreditLimit:      p.CreditLimit,
	}
}

func toDTO(customer *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		CustomerNumber:         customer.Number,
		CustomerName:           customer.Name,
		ContactLastName:        customer.ContactLastName,
		ContactFirstName:       customer.ContactFirstName,
		Phone:                  customer.Phone,
		AddressLine1:           customer.AddressLine1,
		AddressLine2:           customer.AddressLine2,
		City:                   customer.City,
		State:                  customer.State,
		PostalCode:             customer.PostalCode,
		Country:                customer.Country,
		SalesRepEmployeeNumber: customer.SalesRepNumber,
		CreditLimit:            customer.CreditLimit,
	}
}

func toOrderDTO(row orderrepo.Row) dto.OrderResponse {
	return dto.OrderResponse{
		OrderNumber:    row.Number,
		OrderDate:      dto.FormatDate(row.OrderDate),
		RequiredDate:   dto.FormatDate(row.RequiredDate),
		ShippedDate:    dto.FormatDatePtr(row.ShippedDate),
		Status:         row.Status,
		Comments:       row.Comments,
		CustomerNumber: row.CustomerNumber,
		CustomerName:   row.CustomerName,
		TotalAmount:    row.TotalAmount,
	}
}
