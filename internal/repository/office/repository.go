package office

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

var repoTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/repository/office")

// ErrNotFound is returned when an office is missing.
var ErrNotFound = errors.New("office not found")

// Repository encapsulates read/write access for offices.
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

// List returns all offices ordered by code.
func (r *Repository) List(ctx context.Context) ([]entity.Office, error) {
	ctx, span := repoTracer.Start(ctx, "OfficeRepository.List")
	defer span.End()

	offices := make([]entity.Office, 0)
	if err := r.reader.NewSelect().Model(&offices).Order("officeCode ASC").Scan(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return offices, nil
}

// GetByCode fetches an office by code.
func (r *Repository) GetByCode(ctx context.Context, code string) (*entity.Office, error) {
	ctx, span := repoTracer.Start(ctx, "OfficeRepository.GetByCode", trace.WithAttributes(attribute.String("office.code", code)))
	defer span.End()

	office := new(entity.Office)
	err := r.reader.NewSelect().Model(office).Where("officeCode = ?", code).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return office, nil
}

// Create persists a new office.
func (r *Repository) Create(ctx context.Context, office *entity.Office) error {
	if office == nil {
		return errors.New("nil office")
	}
	ctx, span := repoTracer.Start(ctx, "OfficeRepository.Create", trace.WithAttributes(attribute.String("office.code", office.Code)))
	defer span.End()

	_, err := r.writer.NewInsert().Model(office).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// Update rewrites an existing office.
func (r *Repository) Update(ctx context.Context, office *entity.Office) error {
	if office == nil {
		return errors.New("nil office")
	}
	ctx, span := repoTracer.Start(ctx, "OfficeRepository.Update", trace.WithAttributes(attribute.String("office.code", office.Code)))
	defer span.End()

	res, err := r.writer.NewUpdate().Model(office).WherePK().Exec(ctx)
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
