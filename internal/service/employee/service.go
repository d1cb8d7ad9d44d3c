package employee

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Harihuynh2007/sales-app/internal/entity"
	repo "github.com/Harihuynh2007/sales-app/internal/repository/employee"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/service/employee")

// Service encapsulates business logic around employees.
type Service struct {
	repo *repo.Repository
}

// NewService wires a new Service instance.
func NewService(repository *repo.Repository) *Service {
	return &Service{repo: repository}
}

// List returns all employees with their office city.
func (s *Service) List(ctx context.Context) ([]repo.Row, error) {
	ctx, span := serviceTracer.Start(ctx, "EmployeeService.List")
	defer span.End()

	rows, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list employees", errorbank.WithCause(err))
	}
	return rows, nil
}

// Get retrieves an employee by number.
func (s *Service) Get(ctx context.Context, number int64) (*entity.Employee, error) {
	ctx, span := serviceTracer.Start(ctx, "EmployeeService.Get", trace.WithAttributes(attribute.Int64("employee.number", number)))
	defer span.End()

	employee, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("employee not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load employee", errorbank.WithCause(err))
	}
	return employee, nil
}

// Create registers a new employee.
func (s *Service) Create(ctx context.Context, employee *entity.Employee) error {
	if employee == nil {
		return errorbank.BadRequest("employee payload is required")
	}
	if employee.FirstName == "" || employee.LastName == "" || employee.Email == "" {
		return errorbank.BadRequest("firstName, lastName and email are required")
	}
	ctx, span := serviceTracer.Start(ctx, "EmployeeService.Create")
	defer span.End()

	if err := s.repo.Create(ctx, employee); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to create employee", errorbank.WithCause(err))
	}
	return nil
}

// Update rewrites an existing employee.
func (s *Service) Update(ctx context.Context, employee *entity.Employee) error {
	if employee == nil {
		return errorbank.BadRequest("employee payload is required")
	}
	ctx, span := serviceTracer.Start(ctx, "EmployeeService.Update", trace.WithAttributes(attribute.Int64("employee.number", employee.Number)))
	defer span.End()

	if err := s.repo.Update(ctx, employee); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("employee not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to update employee", errorbank.WithCause(err))
	}
	return nil
}

// Delete removes an employee.
func (s *Service) Delete(ctx context.Context, number int64) error {
	ctx, span := serviceTracer.Start(ctx, "EmployeeService.Delete", trace.WithAttributes(attribute.Int64("employee.number", number)))
	defer span.End()

	if err := s.repo.Delete(ctx, number); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("employee not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to delete employee", errorbank.WithCause(err))
	}
	return nil
}
