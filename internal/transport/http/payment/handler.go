package payment

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
	service "github.com/Harihuynh2007/sales-app/internal/service/payment"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/transport/http/payment")

// Handler exposes payment endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a payment Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance. A Customer-role caller
// may read its own payment history only.
func Register(e *echo.Echo, h *Handler, issuer *authmw.TokenIssuer) {
	authed := authmw.Authenticate(issuer)
	staff := authmw.RequireRole(entity.RoleAdmin, entity.RoleSales)
	owner := authmw.RequireOwnership("id")

	g := e.Group("/api/payments", authed)
	g.GET("", h.list, staff)
	g.GET("/customer/:id", h.listByCustomer, owner)
	g.POST("", h.create, staff)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "payments.list")
	defer span.End()

	rows, err := h.svc.List(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.PaymentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.PaymentResponse{
			CustomerNumber: row.CustomerNumber,
			CustomerName:   row.CustomerName,
			CheckNumber:    row.CheckNumber,
			PaymentDate:    dto.FormatDate(row.PaymentDate),
			Amount:         row.Amount,
		})
	}
	return b.WithData(out).Build()
}

func (h *Handler) listByCustomer(c echo.Context) error {
	b := response.New(c)

	number, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid customer number", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "payments.listByCustomer", trace.WithAttributes(attribute.Int64("customer.number", number)))
	defer span.End()

	payments, err := h.svc.ListByCustomer(ctx, number)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		out = append(out, dto.PaymentResponse{
			CustomerNumber: payment.CustomerNumber,
			CheckNumber:    payment.CheckNumber,
			PaymentDate:    dto.FormatDate(payment.PaymentDate),
			Amount:         payment.Amount,
		})
	}
	return b.WithData(out).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload struct {
		CustomerNumber int64   `json:"customerNumber"`
		CheckNumber    string  `json:"checkNumber"`
		PaymentDate    string  `json:"paymentDate"`
		Amount         float64 `json:"amount"`
	}
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	paymentDate, err := dto.ParseDate(payload.PaymentDate)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid paymentDate")).Build()
	}

	payment := &entity.Payment{
		CustomerNumber: payload.CustomerNumber,
		CheckNumber:    payload.CheckNumber,
		PaymentDate:    paymentDate,
		Amount:         payload.Amount,
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "payments.create", trace.WithAttributes(attribute.Int64("customer.number", payment.CustomerNumber)))
	defer span.End()

	if err := h.svc.Create(ctx, payment); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithStatus(http.StatusCreated).WithMessage("payment recorded").Build()
}
