package auth

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Harihuynh2007/sales-app/internal/auth"
	"github.com/Harihuynh2007/sales-app/internal/config"
	"github.com/Harihuynh2007/sales-app/internal/entity"
	repo "github.com/Harihuynh2007/sales-app/internal/repository/user"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/service/auth")

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	Role       entity.Role
	OfficeCode string
	JobTitle   string
}

// Service implements registration, login and profile lookup.
type Service struct {
	repo       *repo.Repository
	issuer     *auth.TokenIssuer
	bcryptCost int
	logger     *zap.Logger
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Issuer     *auth.TokenIssuer
	Config     config.Config
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		repo:       p.Repository,
		issuer:     p.Issuer,
		bcryptCost: p.Config.Auth.BcryptCost,
		logger:     p.Logger,
	}
}

// Register creates a login account. Customer-role accounts get a linked
// customers row created in the same transaction; only the hash of the
// password is ever stored. Defaults to the Customer role when none is given.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	ctx, span := serviceTracer.Start(ctx, "AuthService.Register")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Email == "" || in.Password == "" || in.FirstName == "" {
		return nil, errorbank.BadRequest("firstName, email and password are required")
	}
	if in.Role == "" {
		in.Role = entity.RoleCustomer
	}
	if !in.Role.Valid() {
		return nil, errorbank.BadRequest("unknown role")
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "hash failed")
		return nil, errorbank.Internal("failed to hash password", errorbank.WithCause(err))
	}

	account := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		OfficeCode:   in.OfficeCode,
		JobTitle:     in.JobTitle,
	}

	var customer *entity.Customer
	if in.Role == entity.RoleCustomer {
		customer = &entity.Customer{
			Name:             strings.TrimSpace(in.FirstName + " " + in.LastName),
			ContactFirstName: in.FirstName,
			ContactLastName:  in.LastName,
		}
	}

	if err := s.repo.Register(ctx, account, customer); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, errorbank.Conflict("email already registered")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to register user", errorbank.WithCause(err))
	}

	if s.logger != nil {
		s.logger.Info("user registered", zap.Int64("id", account.ID), zap.String("role", string(account.Role)))
	}
	return account, nil
}

// Login verifies credentials and issues a session token. Unknown emails and
// wrong passwords fail with the same message so the response does not reveal
// which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	ctx, span := serviceTracer.Start(ctx, "AuthService.Login")
	defer span.End()

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", nil, errorbank.BadRequest("email and password are required")
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", nil, errorbank.Unauthorized("invalid email or password")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return "", nil, errorbank.Internal("failed to load user", errorbank.WithCause(err))
	}

	if !auth.VerifyPassword(password, account.PasswordHash) {
		return "", nil, errorbank.Unauthorized("invalid email or password")
	}

	token, err := s.issuer.Issue(account)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token issue failed")
		return "", nil, errorbank.Internal("failed to issue token", errorbank.WithCause(err))
	}
	return token, account, nil
}

// Me returns the profile of an authenticated account.
func (s *Service) Me(ctx context.Context, id int64) (*entity.User, error) {
	ctx, span := serviceTracer.Start(ctx, "AuthService.Me", trace.WithAttributes(attribute.Int64("user.id", id)))
	defer span.End()

	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("user not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load user", errorbank.WithCause(err))
	}
	return account, nil
}
