package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Harihuynh2007/sales-app/internal/cache"
	"github.com/Harihuynh2007/sales-app/internal/config"
	"github.com/Harihuynh2007/sales-app/internal/entity"
	repo "github.com/Harihuynh2007/sales-app/internal/repository/product"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/service/product")

// Service encapsulates business logic around the product catalog.
type Service struct {
	repo     *repo.Repository
	cache    cache.Store
	cacheTTL time.Duration
	logger   *zap.Logger
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Cache      cache.Store
	Config     config.Config
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		repo:     p.Repository,
		cache:    p.Cache,
		cacheTTL: p.Config.Cache.DefaultTTL,
		logger:   p.Logger,
	}
}

// List returns catalog products matching the filter.
func (s *Service) List(ctx context.Context, filter repo.Filter) ([]entity.Product, error) {
	ctx, span := serviceTracer.Start(ctx, "ProductService.List")
	defer span.End()

	products, err := s.repo.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list products", errorbank.WithCause(err))
	}
	return products, nil
}

// Get retrieves a product by code, consulting cache when available.
func (s *Service) Get(ctx context.Context, code string) (*entity.Product, error) {
	ctx, span := serviceTracer.Start(ctx, "ProductService.Get", trace.WithAttributes(attribute.String("product.code", code)))
	defer span.End()

	if product, err := s.getFromCache(ctx, code); err == nil {
		return product, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		if s.logger != nil {
			s.logger.Warn("products cache read failed", zap.String("code", code), zap.Error(err))
		}
	}

	product, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("product not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load product", errorbank.WithCause(err))
	}

	if err := s.storeInCache(ctx, product); err != nil {
		if s.logger != nil {
			s.logger.Warn("products cache write failed", zap.String("code", code), zap.Error(err))
		}
	}
	return product, nil
}

// Create adds a product to the catalog.
func (s *Service) Create(ctx context.Context, product *entity.Product) error {
	if product == nil {
		return errorbank.BadRequest("product payload is required")
	}
	if product.Code == "" || product.Name == "" {
		return errorbank.BadRequest("productCode and productName are required")
	}
	ctx, span := serviceTracer.Start(ctx, "ProductService.Create", trace.WithAttributes(attribute.String("product.code", product.Code)))
	defer span.End()

	if err := s.repo.Create(ctx, product); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to create product", errorbank.WithCause(err))
	}
	return nil
}

// Update rewrites a product. The code is immutable; it only selects the row.
func (s *Service) Update(ctx context.Context, product *entity.Product) error {
	if product == nil {
		return errorbank.BadRequest("product payload is required")
	}
	ctx, span := serviceTracer.Start(ctx, "ProductService.Update", trace.WithAttributes(attribute.String("product.code", product.Code)))
	defer span.End()

	if err := s.repo.Update(ctx, product); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("product not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to update product", errorbank.WithCause(err))
	}
	s.invalidate(ctx, product.Code)
	return nil
}

// Delete removes a product from the catalog.
func (s *Service) Delete(ctx context.Context, code string) error {
	ctx, span := serviceTracer.Start(ctx, "ProductService.Delete", trace.WithAttributes(attribute.String("product.code", code)))
	defer span.End()

	if err := s.repo.Delete(ctx, code); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("product not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to delete product", errorbank.WithCause(err))
	}
	s.invalidate(ctx, code)
	return nil
}

// Lines returns the catalog categories.
func (s *Service) Lines(ctx context.Context) ([]entity.ProductLine, error) {
	ctx, span := serviceTracer.Start(ctx, "ProductService.Lines")
	defer span.End()

	lines, err := s.repo.ListLines(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list product lines", errorbank.WithCause(err))
	}
	return lines, nil
}

func (s *Service) cacheKey(code string) string {
	return fmt.Sprintf("products:%s", code)
}

func (s *Service) getFromCache(ctx context.Context, code string) (*entity.Product, error) {
	if s.cache == nil {
		return nil, cache.ErrCacheMiss
	}
	bytes, err := s.cache.Get(ctx, s.cacheKey(code))
	if err != nil {
		return nil, err
	}
	var product entity.Product
	if err := json.Unmarshal(bytes, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Service) storeInCache(ctx context.Context, product *entity.Product) error {
	if s.cache == nil || product == nil {
		return nil
	}
	bytes, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, s.cacheKey(product.Code), bytes, s.cacheTTL)
}

func (s *Service) invalidate(ctx context.Context, code string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, s.cacheKey(code)); err != nil {
		if s.logger != nil {
			s.logger.Warn("products cache invalidate failed", zap.String("code", code), zap.Error(err))
		}
	}
}
