package order

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

	"github.com/Harihuynh2007/sales-app/internal/config"
	"github.com/Harihuynh2007/sales-app/internal/entity"
	"github.com/Harihuynh2007/sales-app/internal/messaging"
	repo "github.com/Harihuynh2007/sales-app/internal/repository/order"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/service/order")

// Service encapsulates business logic around orders and their lines.
type Service struct {
	repo      *repo.Repository
	logger    *zap.Logger
	publisher messaging.Client
	messaging messagingConfig
}

type messagingConfig struct {
	enabled bool
	topic   string
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Config     config.Config
	Logger     *zap.Logger
	Publisher  messaging.Client
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		repo:      p.Repository,
		logger:    p.Logger,
		publisher: p.Publisher,
		messaging: messagingConfig{
			enabled: p.Config.Messaging.Enabled,
			topic:   p.Config.Messaging.Kafka.Topic,
		},
	}
}

// Create persists the order header and its lines atomically and returns the
// generated order number. Line numbers follow input position, 1-based. An
// order with no lines is accepted.
func (s *Service) Create(ctx context.Context, order *entity.Order, lines []entity.OrderDetail) (int64, error) {
	if order == nil {
		return 0, errorbank.BadRequest("order payload is required")
	}
	if order.CustomerNumber == 0 {
		return 0, errorbank.BadRequest("customerNumber is required")
	}
	if order.Status == "" {
		order.Status = "In Process"
	}
	ctx, span := serviceTracer.Start(ctx, "OrderService.Create", trace.WithAttributes(attribute.Int("order.lines", len(lines))))
	defer span.End()

	number, err := s.repo.Create(ctx, order, lines)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return 0, errorbank.Internal("failed to create order", errorbank.WithCause(err))
	}

	s.publishOrderCreated(ctx, order, len(lines))
	return number, nil
}

// List returns order headers, optionally filtered by status.
func (s *Service) List(ctx context.Context, status string) ([]repo.Row, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.List")
	defer span.End()

	rows, err := s.repo.List(ctx, status)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list orders", errorbank.WithCause(err))
	}
	return rows, nil
}

// ListByCustomer returns one customer's order history.
func (s *Service) ListByCustomer(ctx context.Context, customerNumber int64) ([]repo.Row, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.ListByCustomer", trace.WithAttributes(attribute.Int64("customer.number", customerNumber)))
	defer span.End()

	rows, err := s.repo.ListByCustomer(ctx, customerNumber)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list customer orders", errorbank.WithCause(err))
	}
	return rows, nil
}

// Get retrieves one order with customer contact details.
func (s *Service) Get(ctx context.Context, number int64) (*repo.ContactRow, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Get", trace.WithAttributes(attribute.Int64("order.number", number)))
	defer span.End()

	row, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("order not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load order", errorbank.WithCause(err))
	}
	return row, nil
}

// Details returns the lines of an order in line-number order.
func (s *Service) Details(ctx context.Context, number int64) ([]repo.DetailRow, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Details", trace.WithAttributes(attribute.Int64("order.number", number)))
	defer span.End()

	rows, err := s.repo.Details(ctx, number)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load order details", errorbank.WithCause(err))
	}
	return rows, nil
}

// Update rewrites the header fields of an existing order.
func (s *Service) Update(ctx context.Context, order *entity.Order) error {
	if order == nil {
		return errorbank.BadRequest("order payload is required")
	}
	ctx, span := serviceTracer.Start(ctx, "OrderService.Update", trace.WithAttributes(attribute.Int64("order.number", order.Number)))
	defer span.End()

	if err := s.repo.Update(ctx, order); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("order not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to update order", errorbank.WithCause(err))
	}
	return nil
}

// Delete removes an order together with its lines.
func (s *Service) Delete(ctx context.Context, number int64) error {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Delete", trace.WithAttributes(attribute.Int64("order.number", number)))
	defer span.End()

	if err := s.repo.Delete(ctx, number); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("order not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to delete order", errorbank.WithCause(err))
	}
	return nil
}

func (s *Service) publishOrderCreated(ctx context.Context, order *entity.Order, lineCount int) {
	if !s.messaging.enabled || s.publisher == nil {
		return
	}
	event := OrderCreatedEvent{
		OrderNumber:    order.Number,
		CustomerNumber: order.CustomerNumber,
		Status:         order.Status,
		LineCount:      lineCount,
		CreatedAt:      time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("marshal order created", zap.Error(err))
		}
		return
	}
	if err := s.publisher.Publish(ctx, []byte(fmt.Sprintf("order-%d", order.Number)), payload); err != nil {
		if s.logger != nil {
			s.logger.Error("publish order created", zap.Error(err))
		}
	}
}

// OrderCreatedEvent is emitted when a new order commits.
type OrderCreatedEvent struct {
	OrderNumber    int64     `json:"orderNumber"`
	CustomerNumber int64     `json:"customerNumber"`
	Status         string    `json:"status"`
	LineCount      int       `json:"lineCount"`
	CreatedAt      time.Time `json:"createdAt"`
}
