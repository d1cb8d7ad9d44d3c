package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Harihuynh2007/sales-app/internal/database"
	"github.com/Harihuynh2007/sales-app/internal/entity"
)

var repoTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/repository/product")

// ErrNotFound is returned when a product is missing.
var ErrNotFound = errors.New("product not found")

// Filter narrows the product listing.
type Filter struct {
	Line     string
	MinPrice *float64
	MaxPrice *float64
	InStock  bool
	Search   string
}

// Repository encapsulates read/write access for products and product lines.
type Repository struct {
	writer *bun.DB
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{
		writer: conns.Writer,
		reader: conns.Reader,
	}
}

// List returns products matching the filter, ordered by product code.
func (r *Repository) List(ctx context.Context, filter Filter) ([]entity.Product, error) {
	ctx, span := repoTracer.Start(ctx, "ProductRepository.List")
	defer span.End()

	products := make([]entity.Product, 0)
	q := r.reader.NewSelect().Model(&products)

	if filter.Line != "" {
		q = q.Where("productLine = ?", filter.Line)
	}
	if filter.MinPrice != nil {
		q = q.Where("MSRP >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("MSRP <= ?", *filter.MaxPrice)
	}
	if filter.InStock {
		q = q.Where("quantityInStock > 0")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.WhereOr("productName LIKE ?", pattern).WhereOr("productCode LIKE ?", pattern)
		})
	}

	if err := q.Order("productCode ASC").Scan(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return products, nil
}

// GetByCode fetches a product by its code.
func (r *Repository) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	ctx, span := repoTracer.Start(ctx, "ProductRepository.GetByCode", trace.WithAttributes(attribute.String("product.code", code)))
	defer span.End()

	product := new(entity.Product)
	err := r.reader.NewSelect().Model(product).Where("productCode = ?", code).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return product, nil
}

// Create persists a new product.
func (r *Repository) Create(ctx context.Context, product *entity.Product) error {
	if product == nil {
		return errors.New("nil product")
	}
	ctx, span := repoTracer.Start(ctx, "ProductRepository.Create", trace.WithAttributes(attribute.String("product.code", product.Code)))
	defer span.End()

	_, err := r.writer.NewInsert().Model(product).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// Update rewrites every mutable field of a product. The code itself is
// immutable and only used for addressing.
func (r *Repository) Update(ctx context.Context, product *entity.Product) error {
	if product == nil {
		return errors.New("nil product")
	}
	ctx, span := repoTracer.Start(ctx, "ProductRepository.Update", trace.WithAttributes(attribute.String("product.code", product.Code)))
	defer span.End()

	res, err := r.writer.NewUpdate().Model(product).WherePK().Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product by code.
func (r *Repository) Delete(ctx context.Context, code string) error {
	ctx, span := repoTracer.Start(ctx, "ProductRepository.Delete", trace.WithAttributes(attribute.String("product.code", code)))
	defer span.End()

	res, err := r.writer.NewDelete().Model((*entity.Product)(nil)).Where("productCode = ?", code).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListLines returns all catalog categories.
func (r *Repository) ListLines(ctx context.Context) ([]entity.ProductLine, error) {
	ctx, span := repoTracer.Start(ctx, "ProductRepository.ListLines")
	defer span.End()

	lines := make([]entity.ProductLine, 0)
	if err := r.reader.NewSelect().Model(&lines).Order("productLine ASC").Scan(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return lines, nil
}
