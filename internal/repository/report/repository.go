package report

import (
	"context"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/Harihuynh2007/sales-app/internal/database"
)

var repoTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/repository/report")

// RevenueRow is one month of shipped-order revenue.
type RevenueRow struct {
	Month       string  `bun:"month"`
	TotalOrders int64   `bun:"totalOrders"`
	Revenue     float64 `bun:"revenue"`
}

// TopProductRow is a product ranked by total quantity sold.
type TopProductRow struct {
	Code     string  `bun:"productCode"`
	Name     string  `bun:"productName"`
	TotalQty int64   `bun:"totalQuantity"`
	Revenue  float64 `bun:"revenue"`
}

// PerformanceRow is one sales employee's order and revenue totals.
type PerformanceRow struct {
	Number     int64   `bun:"employeeNumber"`
	FirstName  string  `bun:"firstName"`
	LastName   string  `bun:"lastName"`
	OrderCount int64   `bun:"orderCount"`
	Revenue    float64 `bun:"revenue"`
}

// InventoryRow is a product's stock level with reserved quantity.
type InventoryRow struct {
	Code     string `bun:"productCode"`
	Name     string `bun:"productName"`
	Line     string `bun:"productLine"`
	InStock  int64  `bun:"quantityInStock"`
	Reserved int64  `bun:"reserved"`
}

// Stats aggregates the dashboard counters.
type Stats struct {
	TotalOrders    int64
	TotalRevenue   float64
	TotalCustomers int64
	LowStock       int64
}

// Repository runs the reporting queries against the read connection.
type Repository struct {
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{reader: conns.Reader}
}

// RevenueByMonth returns shipped revenue per month for the last twelve months
// with data, newest first.
func (r *Repository) RevenueByMonth(ctx context.Context) ([]RevenueRow, error) {
	ctx, span := repoTracer.Start(ctx, "ReportRepository.RevenueByMonth")
	defer span.End()

	rows := make([]RevenueRow, 0)
	err := r.reader.NewRaw(`
		SELECT DATE_FORMAT(o.orderDate, '%Y-%m') AS month,
		       COUNT(DISTINCT o.orderNumber) AS totalOrders,
		       SUM(od.quantityOrdered * od.priceEach) AS revenue
		FROM orders o
		JOIN orderdetails od ON od.orderNumber = o.orderNumber
		WHERE o.status = 'Shipped'
		GROUP BY month
		ORDER BY month DESC
		LIMIT 12`,
	).Scan(ctx, &rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return rows, nil
}

// TopProducts returns the ten best-selling products by quantity.
func (r *Repository) TopProducts(ctx context.Context) ([]TopProductRow, error) {
	ctx, span := repoTracer.Start(ctx, "ReportRepository.TopProducts")
	defer span.End()

	rows := make([]TopProductRow, 0)
	err := r.reader.NewRaw(`
		SELECT p.productCode, p.productName,
		       SUM(od.quantityOrdered) AS totalQuantity,
		       SUM(od.quantityOrdered * od.priceEach) AS revenue
		FROM products p
		JOIN orderdetails od ON od.productCode = p.productCode
		GROUP BY p.productCode, p.productName
		ORDER BY totalQuantity DESC
		LIMIT 10`,
	).Scan(ctx, &rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return rows, nil
}

// EmployeePerformance returns order counts and revenue per sales employee.
func (r *Repository) EmployeePerformance(ctx context.Context) ([]PerformanceRow, error) {
	ctx, span := repoTracer.Start(ctx, "ReportRepository.EmployeePerformance")
	defer span.End()

	rows := make([]PerformanceRow, 0)
	err := r.reader.NewRaw(`
		SELECT e.employeeNumber, e.firstName, e.lastName,
		       COUNT(DISTINCT o.orderNumber) AS orderCount,
		       COALESCE(SUM(od.quantityOrdered * od.priceEach), 0) AS revenue
		FROM employees e
		LEFT JOIN customers c ON c.salesRepEmployeeNumber = e.employeeNumber
		LEFT JOIN orders o ON o.customerNumber = c.customerNumber
		LEFT JOIN orderdetails od ON od.orderNumber = o.orderNumber
		WHERE e.jobTitle LIKE '%Sales%'
		GROUP BY e.employeeNumber, e.firstName, e.lastName
		ORDER BY revenue DESC`,
	).Scan(ctx, &rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return rows, nil
}

// Inventory returns stock levels with quantities reserved by open orders.
func (r *Repository) Inventory(ctx context.Context) ([]InventoryRow, error) {
	ctx, span := repoTracer.Start(ctx, "ReportRepository.Inventory")
	defer span.End()

	rows := make([]InventoryRow, 0)
	err := r.reader.NewRaw(`
		SELECT p.productCode, p.productName, p.productLine, p.quantityInStock,
		       COALESCE(SUM(CASE WHEN o.status IN ('In Process', 'On Hold')
		                         THEN od.quantityOrdered ELSE 0 END), 0) AS reserved
		FROM products p
		LEFT JOIN orderdetails od ON od.productCode = p.productCode
		LEFT JOIN orders o ON o.orderNumber = od.orderNumber
		GROUP BY p.productCode, p.productName, p.productLine, p.quantityInStock
		ORDER BY p.quantityInStock ASC`,
	).Scan(ctx, &rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return rows, nil
}

// DashboardStats gathers the headline counters for the dashboard.
func (r *Repository) DashboardStats(ctx context.Context) (*Stats, error) {
	ctx, span := repoTracer.Start(ctx, "ReportRepository.DashboardStats")
	defer span.End()

	stats := new(Stats)
	queries := []struct {
		sql  string
		dest any
	}{
		{"SELECT COUNT(*) FROM orders", &stats.TotalOrders},
		{"SELECT COALESCE(SUM(quantityOrdered * priceEach), 0) FROM orderdetails", &stats.TotalRevenue},
		{"SELECT COUNT(*) FROM customers", &stats.TotalCustomers},
		{"SELECT COUNT(*) FROM products WHERE quantityInStock < 10", &stats.LowStock},
	}
	for _, q := range queries {
		if err := r.reader.NewRaw(q.sql).Scan(ctx, q.dest); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "select failed")
			return nil, err
		}
	}
	return stats, nil
}
