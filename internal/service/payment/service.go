package payment

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Harihuynh2007/sales-app/internal/entity"
	repo "github.com/Harihuynh2007/sales-app/internal/repository/payment"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/service/payment")

// Service encapsulates business logic around payments. Payments are
// append-only; there is no update or delete.
type Service struct {
	repo *repo.Repository
}

// NewService wires a new Service instance.
func NewService(repository *repo.Repository) *Service {
	return &Service{repo: repository}
}

// List returns all payments with customer names, newest first.
func (s *Service) List(ctx context.Context) ([]repo.Row, error) {
	ctx, span := serviceTracer.Start(ctx, "PaymentService.List")
	defer span.End()

	rows, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list payments", errorbank.WithCause(err))
	}
	return rows, nil
}

// ListByCustomer returns one customer's payments, newest first.
func (s *Service) ListByCustomer(ctx context.Context, number int64) ([]entity.Payment, error) {
	ctx, span := serviceTracer.Start(ctx, "PaymentService.ListByCustomer", trace.WithAttributes(attribute.Int64("customer.number", number)))
	defer span.End()

	payments, err := s.repo.ListByCustomer(ctx, number)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list customer payments", errorbank.WithCause(err))
	}
	return payments, nil
}

// Create records a payment against a customer.
func (s *Service) Create(ctx context.Context, payment *entity.Payment) error {
	if payment == nil {
		return errorbank.BadRequest("payment payload is required")
	}
	if payment.CustomerNumber == 0 || payment.CheckNumber == "" {
		return errorbank.BadRequest("customerNumber and checkNumber are required")
	}
	if payment.Amount <= 0 {
		return errorbank.BadRequest("amount must be positive")
	}
	ctx, span := serviceTracer.Start(ctx, "PaymentService.Create", trace.WithAttributes(attribute.Int64("customer.number", payment.CustomerNumber)))
	defer span.End()

	if err := s.repo.Create(ctx, payment); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to record payment", errorbank.WithCause(err))
	}
	return nil
}
