package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Harihuynh2007/sales-app/internal/database"
	"github.com/Harihuynh2007/sales-app/internal/entity"
)

var repoTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/repository/user")

var (
	// ErrNotFound is returned when an account is missing.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Repository encapsulates read/write access for login accounts.
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

// GetByEmail fetches an account by email.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	ctx, span := repoTracer.Start(ctx, "UserRepository.GetByEmail")
	defer span.End()

	account := new(entity.User)
	err := r.reader.NewSelect().Model(account).Where("email = ?", email).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return account, nil
}

// GetByID fetches an account by primary key.
func (r *Repository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	ctx, span := repoTracer.Start(ctx, "UserRepository.GetByID", trace.WithAttributes(attribute.Int64("user.id", id)))
	defer span.End()

	account := new(entity.User)
	err := r.reader.NewSelect().Model(account).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return account, nil
}

// Register inserts the account, creating a linked customer row first when one
// is given. Both inserts share a transaction so a failed account insert never
// leaves an orphaned customer behind.
func (r *Repository) Register(ctx context.Context, account *entity.User, customer *entity.Customer) error {
	if account == nil {
		return errors.New("nil user")
	}
	ctx, span := repoTracer.Start(ctx, "UserRepository.Register")
	defer span.End()

	err := r.writer.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if customer != nil {
			if _, err := tx.NewInsert().Model(customer).Exec(ctx); err != nil {
				return err
			}
			account.CustomerNumber = &customer.Number
		}
		_, err := tx.NewInsert().Model(account).Exec(ctx)
		return err
	})
	if err != nil {
		if isDuplicate(err) {
			span.SetStatus(codes.Error, "duplicate email")
			return ErrDuplicateEmail
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return err
	}
	return nil
}

// isDuplicate matches unique-violation errors across the supported drivers.
func isDuplicate(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique failed")
}
