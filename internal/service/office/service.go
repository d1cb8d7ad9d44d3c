package office

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Harihuynh2007/sales-app/internal/entity"
	repo "github.com/Harihuynh2007/sales-app/internal/repository/office"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/service/office")

// Service encapsulates business logic around offices. Offices are never
// deleted; history stays attached to them.
type Service struct {
	repo *repo.Repository
}

// NewService wires a new Service instance.
func NewService(repository *repo.Repository) *Service {
	return &Service{repo: repository}
}

// List returns all offices.
func (s *Service) List(ctx context.Context) ([]entity.Office, error) {
	ctx, span := serviceTracer.Start(ctx, "OfficeService.List")
	defer span.End()

	offices, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list offices", errorbank.WithCause(err))
	}
	return offices, nil
}

// Get retrieves an office by code.
func (s *Service) Get(ctx context.Context, code string) (*entity.Office, error) {
	ctx, span := serviceTracer.Start(ctx, "OfficeService.Get", trace.WithAttributes(attribute.String("office.code", code)))
	defer span.End()

	office, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("office not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load office", errorbank.WithCause(err))
	}
	return office, nil
}

// Create registers a new office.
func (s *Service) Create(ctx context.Context, office *entity.Office) error {
	if office == nil {
		return errorbank.BadRequest("office payload is required")
	}
	if office.Code == "" || office.City == "" {
		return errorbank.BadRequest("officeCode and city are required")
	}
	ctx, span := serviceTracer.Start(ctx, "OfficeService.Create", trace.WithAttributes(attribute.String("office.code", office.Code)))
	defer span.End()

	if err := s.repo.Create(ctx, office); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to create office", errorbank.WithCause(err))
	}
	return nil
}

// Update rewrites an existing office.
func (s *Service) Update(ctx context.Context, office *entity.Office) error {
	if office == nil {
		return errorbank.BadRequest("office payload is required")
	}
	ctx, span := serviceTracer.Start(ctx, "OfficeService.Update", trace.WithAttributes(attribute.String("office.code", office.Code)))
	defer span.End()

	if err := s.repo.Update(ctx, office); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("office not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to update office", errorbank.WithCause(err))
	}
	return nil
}
