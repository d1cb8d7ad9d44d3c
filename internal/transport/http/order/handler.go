package order

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
	repo "github.com/Harihuynh2007/sales-app/internal/repository/order"
	service "github.com/Harihuynh2007/sales-app/internal/service/order"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/transport/http/order")

// Handler exposes order endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs an order Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance. Any authenticated caller
// may place an order and read orders back; updates and deletes are staff
// only. Customer-role reads are scoped to the caller's own orders.
func Register(e *echo.Echo, h *Handler, issuer *authmw.TokenIssuer) {
	authed := authmw.Authenticate(issuer)
	staff := authmw.RequireRole(entity.RoleAdmin, entity.RoleSales)

	g := e.Group("/api/orders", authed)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.GET("/:id/details", h.details)
	g.POST("", h.create)
	g.PUT("/:id", h.update, staff)
	g.DELETE("/:id", h.delete, staff)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.list")
	defer span.End()

	var (
		rows []repo.Row
		err  error
	)
	if claims, ok := authmw.ClaimsFrom(c); ok && claims.Role == entity.RoleCustomer {
		if claims.CustomerNumber == nil {
			return b.WithError(errorbank.Forbidden("insufficient role")).Build()
		}
		rows, err = h.svc.ListByCustomer(ctx, *claims.CustomerNumber)
	} else {
		rows, err = h.svc.List(ctx, c.QueryParam("status"))
	}
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.OrderResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDTO(row))
	}
	return b.WithData(out).Build()
}

func (h *Handler) get(c echo.Context) error {
	b := response.New(c)

	number, err := parseNumber(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.get", trace.WithAttributes(attribute.Int64("order.number", number)))
	defer span.End()

	row, err := h.svc.Get(ctx, number)
	if err != nil {
		return b.WithError(err).Build()
	}
	if err := requireOrderAccess(c, row.CustomerNumber); err != nil {
		return b.WithError(err).Build()
	}

	out := dto.OrderContactResponse{
		OrderResponse: toDTO(row.Row),
		Phone:         row.Phone,
		AddressLine1:  row.AddressLine1,
		City:          row.City,
	}
	return b.WithData(out).Build()
}

func (h *Handler) details(c echo.Context) error {
	b := response.New(c)

	number, err := parseNumber(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.details", trace.WithAttributes(attribute.Int64("order.number", number)))
	defer span.End()

	if claims, ok := authmw.ClaimsFrom(c); ok && claims.Role == entity.RoleCustomer {
		owner, err := h.svc.Get(ctx, number)
		if err != nil {
			return b.WithError(err).Build()
		}
		if err := requireOrderAccess(c, owner.CustomerNumber); err != nil {
			return b.WithError(err).Build()
		}
	}

	rows, err := h.svc.Details(ctx, number)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.OrderDetailResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.OrderDetailResponse{
			OrderNumber:     row.OrderNumber,
			ProductCode:     row.ProductCode,
			ProductName:     row.ProductName,
			QuantityOrdered: row.Quantity,
			PriceEach:       row.PriceEach,
			OrderLineNumber: row.LineNumber,
		})
	}
	return b.WithData(out).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload struct {
		CustomerNumber int64  `json:"customerNumber"`
		OrderDate      string `json:"orderDate"`
		RequiredDate   string `json:"requiredDate"`
		ShippedDate    string `json:"shippedDate"`
		Status         string `json:"status"`
		Comments       string `json:"comments"`
		Items          []struct {
			ProductCode string  `json:"productCode"`
			Quantity    int     `json:"quantity"`
			Price       float64 `json:"price"`
		} `json:"items"`
	}
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	orderDate, err := dto.ParseDate(payload.OrderDate)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid orderDate")).Build()
	}
	requiredDate, err := dto.ParseDate(payload.RequiredDate)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid requiredDate")).Build()
	}

	order := &entity.Order{
		OrderDate:      orderDate,
		RequiredDate:   requiredDate,
		Status:         payload.Status,
		Comments:       payload.Comments,
		CustomerNumber: payload.CustomerNumber,
	}
	if payload.ShippedDate != "" {
		if order.ShippedDate, err = dto.ParseDatePtr(payload.ShippedDate); err != nil {
			return b.WithError(errorbank.BadRequest("invalid shippedDate")).Build()
		}
	}
	lines := make([]entity.OrderDetail, 0, len(payload.Items))
	for _, item := range payload.Items {
		lines = append(lines, entity.OrderDetail{
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
			PriceEach:   item.Price,
		})
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.create", trace.WithAttributes(attribute.Int("order.lines", len(lines))))
	defer span.End()

	number, err := h.svc.Create(ctx, order, lines)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).
		WithMessage("order created").
		WithData(dto.OrderCreatedResponse{OrderNumber: number}).
		Build()
}

func (h *Handler) update(c echo.Context) error {
	b := response.New(c)

	number, err := parseNumber(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	var payload struct {
		OrderDate    string `json:"orderDate"`
		RequiredDate string `json:"requiredDate"`
		ShippedDate  string `json:"shippedDate"`
		Status       string `json:"status"`
		Comments     string `json:"comments"`
	}
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	existing, err := h.svc.Get(c.Request().Context(), number)
	if err != nil {
		return b.WithError(err).Build()
	}

	order := &entity.Order{
		Number:         number,
		OrderDate:      existing.OrderDate,
		RequiredDate:   existing.RequiredDate,
		ShippedDate:    existing.ShippedDate,
		Status:         existing.Status,
		Comments:       existing.Comments,
		CustomerNumber: existing.CustomerNumber,
	}
	if payload.OrderDate != "" {
		if order.OrderDate, err = dto.ParseDate(payload.OrderDate); err != nil {
			return b.WithError(errorbank.BadRequest("invalid orderDate")).Build()
		}
	}
	if payload.RequiredDate != "" {
		if order.RequiredDate, err = dto.ParseDate(payload.RequiredDate); err != nil {
			return b.WithError(errorbank.BadRequest("invalid requiredDate")).Build()
		}
	}
	if payload.ShippedDate != "" {
		if order.ShippedDate, err = dto.ParseDatePtr(payload.ShippedDate); err != nil {
			return b.WithError(errorbank.BadRequest("invalid shippedDate")).Build()
		}
	}
	if payload.Status != "" {
		order.Status = payload.Status
	}
	if payload.Comments != "" {
		order.Comments = payload.Comments
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.update", trace.WithAttributes(attribute.Int64("order.number", number)))
	defer span.End()

	if err := h.svc.Update(ctx, order); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithMessage("order updated").Build()
}

func (h *Handler) delete(c echo.Context) error {
	b := response.New(c)

	number, err := parseNumber(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.delete", trace.WithAttributes(attribute.Int64("order.number", number)))
	defer span.End()

	if err := h.svc.Delete(ctx, number); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithMessage("order deleted").Build()
}

// requireOrderAccess denies Customer-role callers access to orders that do
// not belong to them. Staff roles pass through.
func requireOrderAccess(c echo.Context, customerNumber int64) error {
	claims, ok := authmw.ClaimsFrom(c)
	if !ok {
		return errorbank.Unauthorized("no token provided")
	}
	if claims.Role != entity.RoleCustomer {
		return nil
	}
	if claims.CustomerNumber == nil || *claims.CustomerNumber != customerNumber {
		return errorbank.Forbidden("insufficient role")
	}
	return nil
}

func parseNumber(c echo.Context) (int64, error) {
	number, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errorbank.BadRequest("invalid order number", errorbank.WithCause(err))
	}
	return number, nil
}

func toDTO(row repo.Row) dto.OrderResponse {
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
