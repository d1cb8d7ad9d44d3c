package customer

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Harihuynh2007/sales-app/internal/entity"
	repo "github.com/Harihuynh2007/sales-app/internal/repository/customer"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/service/customer")

// Service encapsulates business logic around customers.
type Service struct {
	repo *repo.Repository
}

// NewService wires a new Service instance.
func NewService(repository *repo.Repository) *Service {
	return &Service{repo: repository}
}

// List returns all customers.
func (s *Service) List(ctx context.Context) ([]entity.Customer, error) {
	ctx, span := serviceTracer.Start(ctx, "CustomerService.List")
	defer span.End()

	customers, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list customers", errorbank.WithCause(err))
	}
	return customers, nil
}

// Get retrieves a customer by number.
func (s *Service) Get(ctx context.Context, number int64) (*entity.Customer, error) {
	ctx, span := serviceTracer.Start(ctx, "CustomerService.Get", trace.WithAttributes(attribute.Int64("customer.number", number)))
	defer span.End()

	customer, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("customer not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load customer", errorbank.WithCause(err))
	}
	return customer, nil
}

// Create registers a new customer record.
func (s *Service) Create(ctx context.Context, customer *entity.Customer) error {
	if customer == nil {
		return errorbank.BadRequest("customer payload is required")
	}
	if customer.Name == "" {
		return errorbank.BadRequest("customerName is required")
	}
	ctx, span := serviceTracer.Start(ctx, "CustomerService.Create")
	defer span.End()

	if err := s.repo.Create(ctx, customer); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to create customer", errorbank.WithCause(err))
	}
	return nil
}

// Update rewrites an existing customer.
func (s *Service) Update(ctx context.Context, customer *entity.Customer) error {
	if customer == nil {
		return errorbank.BadRequest("customer payload is required")
	}
	ctx, span := serviceTracer.Start(ctx, "CustomerService.Update", trace.WithAttributes(attribute.Int64("customer.number", customer.Number)))
	defer span.End()

	if err := s.repo.Update(ctx, customer); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("customer not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to update customer", errorbank.WithCause(err))
	}
	return nil
}

// Delete removes a customer.
func (s *Service) Delete(ctx context.Context, number int64) error {
	ctx, span := serviceTracer.Start(ctx, "CustomerService.Delete", trace.WithAttributes(attribute.Int64("customer.number", number)))
	defer span.End()

	if err := s.repo.Delete(ctx, number); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("customer not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to delete customer", errorbank.WithCause(err))
	}
	return nil
}
