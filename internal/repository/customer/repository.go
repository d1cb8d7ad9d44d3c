package customer

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

var repoTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/repository/customer")

// ErrNotFound is returned when a customer is missing.
var ErrNotFound = errors.New("customer not found")

// Repository encapsulates read/write access for customers.
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

// List returns all customers ordered by number.
func (r *Repository) List(ctx context.Context) ([]entity.Customer, error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.List")
	defer span.End()

	customers := make([]entity.Customer, 0)
	if err := r.reader.NewSelect().Model(&customers).Order("customerNumber ASC").Scan(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return customers, nil
}

// GetByNumber fetches a customer by number.
func (r *Repository) GetByNumber(ctx context.Context, number int64) (*entity.Customer, error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.GetByNumber", trace.WithAttributes(attribute.Int64("customer.number", number)))
	defer span.End()

	customer := new(entity.Customer)
	err := r.reader.NewSelect().Model(customer).Where("customerNumber = ?", number).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return customer, nil
}

// Create persists a new customer and fills in the generated number.
func (r *Repository) Create(ctx context.Context, customer *entity.Customer) error {
	if customer == nil {
		return errors.New("nil customer")
	}
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.Create")
	defer span.End()

	_, err := r.writer.NewInsert().Model(customer).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// Update rewrites an existing customer.
func (r *Repository) Update(ctx context.Context, customer *entity.Customer) error {
	if customer == nil {
		return errors.New("nil customer")
	}
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.Update", trace.WithAttributes(attribute.Int64("customer.number", customer.Number)))
	defer span.End()

	res, err := r.writer.NewUpdate().Model(customer).WherePK().Exec(ctx)
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

// Delete removes a customer by number.
func (r *Repository) Delete(ctx context.Context, number int64) error {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.Delete", trace.WithAttributes(attribute.Int64("customer.number", number)))
	defer span.End()

	res, err := r.writer.NewDelete().Model((*entity.Customer)(nil)).Where("customerNumber = ?", number).Exec(ctx)
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
