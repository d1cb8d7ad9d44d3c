package employee

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

var repoTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/repository/employee")

// ErrNotFound is returned when an employee is missing.
var ErrNotFound = errors.New("employee not found")

// Row is an employee joined with the city of its office.
type Row struct {
	Number     int64  `bun:"employeeNumber"`
	LastName   string `bun:"lastName"`
	FirstName  string `bun:"firstName"`
	Extension  string `bun:"extension"`
	Email      string `bun:"email"`
	OfficeCode string `bun:"officeCode"`
	ReportsTo  *int64 `bun:"reportsTo"`
	JobTitle   string `bun:"jobTitle"`
	OfficeName string `bun:"officeName"`
}

// Repository encapsulates read/write access for employees.
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

// List returns all employees with their office city, ordered by number.
func (r *Repository) List(ctx context.Context) ([]Row, error) {
	ctx, span := repoTracer.Start(ctx, "EmployeeRepository.List")
	defer span.End()

	rows := make([]Row, 0)
	err := r.reader.NewRaw(`
		SELECT e.employeeNumber, e.lastName, e.firstName, e.extension, e.email,
		       e.officeCode, e.reportsTo, e.jobTitle,
		       COALESCE(o.city, '') AS officeName
		FROM employees e
		LEFT JOIN offices o ON o.officeCode = e.officeCode
		ORDER BY e.employeeNumber ASC`,
	).Scan(ctx, &rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return rows, nil
}

// GetByNumber fetches an employee by number.
func (r *Repository) GetByNumber(ctx context.Context, number int64) (*entity.Employee, error) {
	ctx, span := repoTracer.Start(ctx, "EmployeeRepository.GetByNumber", trace.WithAttributes(attribute.Int64("employee.number", number)))
	defer span.End()

	employee := new(entity.Employee)
	err := r.reader.NewSelect().Model(employee).Where("employeeNumber = ?", number).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return employee, nil
}

// Create persists a new employee.
func (r *Repository) Create(ctx context.Context, employee *entity.Employee) error {
	if employee == nil {
		return errors.New("nil employee")
	}
	ctx, span := repoTracer.Start(ctx, "EmployeeRepository.Create")
	defer span.End()

	_, err := r.writer.NewInsert().Model(employee).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// Update rewrites an existing employee.
func (r *Repository) Update(ctx context.Context, employee *entity.Employee) error {
	if employee == nil {
		return errors.New("nil employee")
	}
	ctx, span := repoTracer.Start(ctx, "EmployeeRepository.Update", trace.WithAttributes(attribute.Int64("employee.number", employee.Number)))
	defer span.End()

	res, err := r.writer.NewUpdate().Model(employee).WherePK().Exec(ctx)
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

// Delete removes an employee by number.
func (r *Repository) Delete(ctx context.Context, number int64) error {
	ctx, span := repoTracer.Start(ctx, "EmployeeRepository.Delete", trace.WithAttributes(attribute.Int64("employee.number", number)))
	defer span.End()

	res, err := r.writer.NewDelete().Model((*entity.Employee)(nil)).Where("employeeNumber = ?", number).Exec(ctx)
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
