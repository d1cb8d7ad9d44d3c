package employee

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
	service "github.com/Harihuynh2007/sales-app/internal/service/employee"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/transport/http/employee")

// Handler exposes employee endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs an employee Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance. Reads are staff only;
// writes are admin only.
func Register(e *echo.Echo, h *Handler, issuer *authmw.TokenIssuer) {
	authed := authmw.Authenticate(issuer)
	staff := authmw.RequireRole(entity.RoleAdmin, entity.RoleSales)
	admin := authmw.RequireRole(entity.RoleAdmin)

	g := e.Group("/api/employees", authed)
	g.GET("", h.list, staff)
	g.GET("/:id", h.get, staff)
	g.POST("", h.create, admin)
	g.PUT("/:id", h.update, admin)
	g.DELETE("/:id", h.delete, admin)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "employees.list")
	defer span.End()

	rows, err := h.svc.List(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.EmployeeResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.EmployeeResponse{
			EmployeeNumber: row.Number,
			LastName:       row.LastName,
			FirstName:      row.FirstName,
			Extension:      row.Extension,
			Email:          row.Email,
			OfficeCode:     row.OfficeCode,
			OfficeName:     row.OfficeName,
			ReportsTo:      row.ReportsTo,
			JobTitle:       row.JobTitle,
		})
	}
	return b.WithData(out).Build()
}

func (h *Handler) get(c echo.Context) error {
	b := response.New(c)

	number, err := parseNumber(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "employees.get", trace.WithAttributes(attribute.Int64("employee.number", number)))
	defer span.End()

	employee, err := h.svc.Get(ctx, number)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(toDTO(employee)).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload employeePayload
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	employee := payload.toEntity(0)

	ctx, span := httpTracer.Start(c.Request().Context(), "employees.create")
	defer span.End()

	if err := h.svc.Create(ctx, employee); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithStatus(http.StatusCreated).WithMessage("employee created").WithData(toDTO(employee)).Build()
}

func (h *Handler) update(c echo.Context) error {
	b := response.New(c)

	number, err := parseNumber(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	var payload employeePayload
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	employee := payload.toEntity(number)

	ctx, span := httpTracer.Start(c.Request().Context(), "employees.update", trace.WithAttributes(attribute.Int64("employee.number", number)))
	defer span.End()

	if err := h.svc.Update(ctx, employee); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithMessage("employee updated").WithData(toDTO(employee)).Build()
}

func (h *Handler) delete(c echo.Context) error {
	b := response.New(c)

	number, err := parseNumber(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "employees.delete", trace.WithAttributes(attribute.Int64("employee.number", number)))
	defer span.End()

	if err := h.svc.Delete(ctx, number); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithMessage("employee deleted").Build()
}

func parseNumber(c echo.Context) (int64, error) {
	number, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errorbank.BadRequest("invalid employee number", errorbank.WithCause(err))
	}
	return number, nil
}

type employeePayload struct {
	LastName   string `json:"lastName"`
	FirstName  string `json:"firstName"`
	Extension  string `json:"extension"`
	Email      string `json:"email"`
	OfficeCode string `json:"officeCode"`
	ReportsTo  *int64 `json:"reportsTo"`
	JobTitle   string `json:"jobTitle"`
}

func (p employeePayload) toEntity(number int64) *entity.Employee {
	return &entity.Employee{
		Number:     number,
		LastName:   p.LastName,
		FirstName:  p.FirstName,
		Extension:  p.Extension,
		Email:      p.Email,
		OfficeCode: p.OfficeCode,
		ReportsTo:  p.ReportsTo,
		JobTitle:   p.JobTitle,
	}
}

func toDTO(employee *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		EmployeeNumber: employee.Number,
		LastName:       employee.LastName,
		FirstName:      employee.FirstName,
		Extension:      employee.Extension,
		Email:          employee.Email,
		OfficeCode:     employee.OfficeCode,
		ReportsTo:      employee.ReportsTo,
		JobTitle:       employee.JobTitle,
	}
}
