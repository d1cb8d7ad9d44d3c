package report

import (
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	authmw "github.com/Harihuynh2007/sales-app/internal/auth"
	"github.com/Harihuynh2007/sales-app/internal/entity"
	"github.com/Harihuynh2007/sales-app/internal/presentation/http/response"
	service "github.com/Harihuynh2007/sales-app/internal/service/report"
)

var httpTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/transport/http/report")

// Handler exposes reporting and dashboard endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a report Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance. All reporting is staff
// only.
func Register(e *echo.Echo, h *Handler, issuer *authmw.TokenIssuer) {
	authed := authmw.Authenticate(issuer)
	staff := authmw.RequireRole(entity.RoleAdmin, entity.RoleSales)

	g := e.Group("/api/reports", authed, staff)
	g.GET("/revenue", h.revenueByMonth)
	g.GET("/top-products", h.topProducts)
	g.GET("/employee-performance", h.employeePerformance)
	g.GET("/inventory", h.inventory)

	e.GET("/api/dashboard/stats", h.dashboardStats, authed, staff)
}

func (h *Handler) revenueByMonth(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "reports.revenueByMonth")
	defer span.End()

	rows, err := h.svc.RevenueByMonth(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(rows).Build()
}

func (h *Handler) topProducts(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "reports.topProducts")
	defer span.End()

	rows, err := h.svc.TopProducts(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(rows).Build()
}

func (h *Handler) employeePerformance(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "reports.employeePerformance")
	defer span.End()

	rows, err := h.svc.EmployeePerformance(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(rows).Build()
}

func (h *Handler) inventory(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "reports.inventory")
	defer span.End()

	rows, err := h.svc.Inventory(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(rows).Build()
}

func (h *Handler) dashboardStats(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "dashboard.stats")
	defer span.End()

	stats, err := h.svc.DashboardStats(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(stats).Build()
}
