package product

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
	repo "github.com/Harihuynh2007/sales-app/internal/repository/product"
	service "github.com/Harihuynh2007/sales-app/internal/service/product"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/transport/http/product")

// Handler exposes catalog endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a product Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance. Reads are public; writes
// are role gated.
func Register(e *echo.Echo, h *Handler, issuer *authmw.TokenIssuer) {
	authed := authmw.Authenticate(issuer)
	staff := authmw.RequireRole(entity.RoleAdmin, entity.RoleSales)
	admin := authmw.RequireRole(entity.RoleAdmin)

	g := e.Group("/api/products")
	g.GET("", h.list)
	g.GET("/:code", h.get)
	g.POST("", h.create, authed, staff)
	g.PUT("/:code", h.update, authed, staff)
	g.DELETE("/:code", h.delete, authed, admin)

	e.GET("/api/productlines", h.listLines)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	filter := repo.Filter{
		Line:   c.QueryParam("productLine"),
		Search: c.QueryParam("search"),
	}
	if v := c.QueryParam("minPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return b.WithError(errorbank.BadRequest("invalid minPrice")).Build()
		}
		filter.MinPrice = &price
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return b.WithError(errorbank.BadRequest("invalid maxPrice")).Build()
		}
		filter.MaxPrice = &price
	}
	if v := c.QueryParam("inStock"); v != "" {
		filter.InStock = v == "true" || v == "1"
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "products.list")
	defer span.End()

	products, err := h.svc.List(ctx, filter)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toDTO(&products[i]))
	}
	return b.WithData(out).Build()
}

func (h *Handler) get(c echo.Context) error {
	b := response.New(c)
	code := c.Param("code")

	ctx, span := httpTracer.Start(c.Request().Context(), "products.get", trace.WithAttributes(attribute.String("product.code", code)))
	defer span.End()

	product, err := h.svc.Get(ctx, code)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(toDTO(product)).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	product := payload.toEntity(payload.ProductCode)

	ctx, span := httpTracer.Start(c.Request().Context(), "products.create", trace.WithAttributes(attribute.String("product.code", product.Code)))
	defer span.End()

	if err := h.svc.Create(ctx, product); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithStatus(http.StatusCreated).WithMessage("product created").WithData(toDTO(product)).Build()
}

func (h *Handler) update(c echo.Context) error {
	b := response.New(c)
	code := c.Param("code")

	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	// The product code is immutable; the path wins over the body.
	product := payload.toEntity(code)

	ctx, span := httpTracer.Start(c.Request().Context(), "products.update", trace.WithAttributes(attribute.String("product.code", code)))
	defer span.End()

	if err := h.svc.Update(ctx, product); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithMessage("product updated").WithData(toDTO(product)).Build()
}

func (h *Handler) delete(c echo.Context) error {
	b := response.New(c)
	code := c.Param("code")

	ctx, span := httpTracer.Start(c.Request().Context(), "products.delete", trace.WithAttributes(attribute.String("product.code", code)))
	defer span.End()

	if err := h.svc.Delete(ctx, code); err != nil {
		return b.WithError(err).Build()
	}
	return b.WithMessage("product deleted").Build()
}

func (h *Handler) listLines(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "productlines.list")
	defer span.End()

	lines, err := h.svc.Lines(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.ProductLineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, dto.ProductLineResponse{ProductLine: line.Line, TextDescription: line.Description})
	}
	return b.WithData(out).Build()
}

type productPayload struct {
	ProductCode        string  `json:"productCode"`
	ProductName        string  `json:"productName"`
	ProductLine        string  `json:"productLine"`
	ProductScale       string  `json:"productScale"`
	ProductVendor      string  `json:"productVendor"`
	ProductDescription string  `json:"productDescription"`
	QuantityInStock    int     `json:"quantityInStock"`
	BuyPrice           float64 `json:"buyPrice"`
	MSRP               float64 `json:"MSRP"`
}

func (p productPayload) toEntity(code string) *entity.Product {
	return &entity.Product{
		Code:        code,
		Name:        p.ProductName,
		Line:        p.ProductLine,
		Scale:       p.ProductScale,
		Vendor:      p.ProductVendor,
		Description: p.ProductDescription,
		Stock:       p.QuantityInStock,
		BuyPrice:    p.BuyPrice,
		MSRP:        p.MSRP,
	}
}

func toDTO(product *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ProductCode:        product.Code,
		ProductName:        product.Name,
		ProductLine:        product.Line,
		ProductScale:       product.Scale,
		ProductVendor:      product.Vendor,
		ProductDescription: product.Description,
		QuantityInStock:    product.Stock,
		BuyPrice:           product.BuyPrice,
		MSRP:               product.MSRP,
	}
}
