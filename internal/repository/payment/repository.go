package payment

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Harihuynh2007/sales-app/internal/database"
	"github.com/Harihuynh2007/sales-app/internal/entity"
)

var repoTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/repository/payment")

// Row is a payment joined with its customer name.
type Row struct {
	CustomerNumber int64     `bun:"customerNumber"`
	CheckNumber    string    `bun:"checkNumber"`
	PaymentDate    time.Time `bun:"paymentDate"`
	Amount         float64   `bun:"amount"`
	CustomerName   string    `bun:"customerName"`
}

// Repository encapsulates read/write access for payments.
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

// List returns all payments with customer names, newest first.
func (r *Repository) List(ctx context.Context) ([]Row, error) {
	ctx, span := repoTracer.Start(ctx, "PaymentRepository.List")
	defer span.End()

	rows := make([]Row, 0)
	err := r.reader.NewRaw(`
		SELECT p.customerNumber, p.checkNumber, p.paymentDate, p.amount,
		       c.customerName
		FROM payments p
		JOIN customers c ON c.customerNumber = p.customerNumber
		ORDER BY p.paymentDate DESC`,
	).Scan(ctx, &rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return rows, nil
}

// ListByCustomer returns one customer's payments, newest first.
func (r *Repository) ListByCustomer(ctx context.Context, number int64) ([]entity.Payment, error) {
	ctx, span := repoTracer.Start(ctx, "PaymentRepository.ListByCustomer", trace.WithAttributes(attribute.Int64("customer.number", number)))
	defer span.End()

	payments := make([]entity.Payment, 0)
	err := r.reader.NewSelect().
		Model(&payments).
		Where("customerNumber = ?", number).
		Order("paymentDate DESC").
		Scan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return payments, nil
}

// Create records a payment.
func (r *Repository) Create(ctx context.Context, payment *entity.Payment) error {
	if payment == nil {
		return errors.New("nil payment")
	}
	ctx, span := repoTracer.Start(ctx, "PaymentRepository.Create", trace.WithAttributes(attribute.Int64("customer.number", payment.CustomerNumber)))
	defer span.End()

	_, err := r.writer.NewInsert().Model(payment).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}
