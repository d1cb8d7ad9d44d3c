package order

import (
	"context"
	"database/sql"
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

var repoTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/repository/order")

// ErrNotFound is returned when an order is missing.
var ErrNotFound = errors.New("order not found")

// Row is an order header joined with the customer name and line total.
type Row struct {
	Number         int64      `bun:"orderNumber"`
	OrderDate      time.Time  `bun:"orderDate"`
	RequiredDate   time.Time  `bun:"requiredDate"`
	ShippedDate    *time.Time `bun:"shippedDate"`
	Status         string     `bun:"status"`
	Comments       string     `bun:"comments"`
	CustomerNumber int64      `bun:"customerNumber"`
	CustomerName   string     `bun:"customerName"`
	TotalAmount    float64    `bun:"totalAmount"`
}

// ContactRow is a single order joined with customer contact fields.
type ContactRow struct {
	Row
	Phone        string `bun:"phone"`
	AddressLine1 string `bun:"addressLine1"`
	City         string `bun:"city"`
}

// DetailRow is an order line joined with the product name.
type DetailRow struct {
	OrderNumber int64   `bun:"orderNumber"`
	ProductCode string  `bun:"productCode"`
	ProductName string  `bun:"productName"`
	Quantity    int     `bun:"quantityOrdered"`
	PriceEach   float64 `bun:"priceEach"`
	LineNumber  int     `bun:"orderLineNumber"`
}

// Repository encapsulates read/write access for orders and their lines.
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

// Create persists an order header together with its lines as a single
// transaction. Line numbers are assigned from the input position, 1-based.
// An empty line list is legal and commits a header with zero lines. On any
// failure the whole transaction rolls back; no partial order is ever
// visible. The generated order number is returned only after commit.
func (r *Repository) Create(ctx context.Context, order *entity.Order, lines []entity.OrderDetail) (int64, error) {
	if order == nil {
		return 0, errors.New("nil order")
	}
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Create", trace.WithAttributes(attribute.Int("order.lines", len(lines))))
	defer span.End()

	err := r.writer.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
			return err
		}

		if len(lines) == 0 {
			return nil
		}

		for i := range lines {
			lines[i].OrderNumber = order.Number
			lines[i].LineNumber = i + 1
		}

		_, err := tx.NewInsert().Model(&lines).Exec(ctx)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transaction failed")
		return 0, err
	}

	return order.Number, nil
}

// List returns order headers joined with customer names and totals, newest
// first, optionally filtered by status.
func (r *Repository) List(ctx context.Context, status string) ([]Row, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.List")
	defer span.End()

	query := `SELECT o.orderNumber, o.orderDate, o.requiredDate, o.shippedDate, o.status, o.comments, o.customerNumber,
		COALESCE(c.customerName, '') AS customerName,
		COALESCE((SELECT SUM(od.quantityOrdered * od.priceEach) FROM orderdetails od WHERE od.orderNumber = o.orderNumber), 0.0) AS totalAmount
		FROM orders o
		LEFT JOIN customers c ON o.customerNumber = c.customerNumber`

	rows := make([]Row, 0)
	var err error
	if status != "" {
		err = r.reader.NewRaw(query+` WHERE o.status = ? ORDER BY o.orderNumber DESC`, status).Scan(ctx, &rows)
	} else {
		err = r.reader.NewRaw(query+` ORDER BY o.orderNumber DESC`).Scan(ctx, &rows)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return rows, nil
}

// ListByCustomer returns a customer's order history, newest first.
func (r *Repository) ListByCustomer(ctx context.Context, customerNumber int64) ([]Row, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.ListByCustomer", trace.WithAttributes(attribute.Int64("customer.number", customerNumber)))
	defer span.End()

	rows := make([]Row, 0)
	err := r.reader.NewRaw(`SELECT o.orderNumber, o.orderDate, o.requiredDate, o.shippedDate, o.status, o.comments, o.customerNumber,
		'' AS customerName,
		COALESCE((SELECT SUM(od.quantityOrdered * od.priceEach) FROM orderdetails od WHERE od.orderNumber = o.orderNumber), 0.0) AS totalAmount
		FROM orders o
		WHERE o.customerNumber = ?
		ORDER BY o.orderDate DESC`, customerNumber).Scan(ctx, &rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return rows, nil
}

// GetByNumber fetches one order joined with customer contact details.
func (r *Repository) GetByNumber(ctx context.Context, number int64) (*ContactRow, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.GetByNumber", trace.WithAttributes(attribute.Int64("order.number", number)))
	defer span.End()

	row := new(ContactRow)
	err := r.reader.NewRaw(`SELECT o.orderNumber, o.orderDate, o.requiredDate, o.shippedDate, o.status, o.comments, o.customerNumber,
		COALESCE(c.customerName, '') AS customerName,
		COALESCE((SELECT SUM(od.quantityOrdered * od.priceEach) FROM orderdetails od WHERE od.orderNumber = o.orderNumber), 0.0) AS totalAmount,
		COALESCE(c.phone, '') AS phone,
		COALESCE(c.addressLine1, '') AS addressLine1,
		COALESCE(c.city, '') AS city
		FROM orders o
		LEFT JOIN customers c ON o.customerNumber = c.customerNumber
		WHERE o.orderNumber = ?`, number).Scan(ctx, row)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return row, nil
}

// Details returns the lines of an order joined with product names, in line
// number order.
func (r *Repository) Details(ctx context.Context, number int64) ([]DetailRow, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Details", trace.WithAttributes(attribute.Int64("order.number", number)))
	defer span.End()

	rows := make([]DetailRow, 0)
	err := r.reader.NewRaw(`SELECT od.orderNumber, od.productCode, COALESCE(p.productName, '') AS productName,
		od.quantityOrdered, od.priceEach, od.orderLineNumber
		FROM orderdetails od
		LEFT JOIN products p ON od.productCode = p.productCode
		WHERE od.orderNumber = ?
		ORDER BY od.orderLineNumber`, number).Scan(ctx, &rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return rows, nil
}

// Update rewrites the header fields of an existing order.
func (r *Repository) Update(ctx context.Context, order *entity.Order) error {
	if order == nil {
		return errors.New("nil order")
	}
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Update", trace.WithAttributes(attribute.Int64("order.number", order.Number)))
	defer span.End()

	res, err := r.writer.NewUpdate().Model(order).WherePK().Exec(ctx)
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

// Delete removes an order and its lines in one transaction. The schema
// relies on no cascade; lines are removed explicitly.
func (r *Repository) Delete(ctx context.Context, number int64) error {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Delete", trace.WithAttributes(attribute.Int64("order.number", number)))
	defer span.End()

	err := r.writer.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*entity.OrderDetail)(nil)).Where("orderNumber = ?", number).Exec(ctx); err != nil {
			return err
		}
		res, err := tx.NewDelete().Model((*entity.Order)(nil)).Where("orderNumber = ?", number).Exec(ctx)
		if err != nil {
			return err
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
	}
	return err
}
