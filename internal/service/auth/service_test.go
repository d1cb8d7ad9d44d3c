package auth

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Harihuynh2007/sales-app/internal/auth"
	"github.com/Harihuynh2007/sales-app/internal/config"
	"github.com/Harihuynh2007/sales-app/internal/database"
	"github.com/Harihuynh2007/sales-app/internal/entity"
	repo "github.com/Harihuynh2007/sales-app/internal/repository/user"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	for _, model := range []any{
		(*entity.Customer)(nil),
		(*entity.User)(nil),
	} {
		_, err := db.NewCreateTable().Model(model).Exec(ctx)
		require.NoError(t, err)
	}

	cfg := config.Config{
		Auth: config.Auth{
			JWTSecret:  "test-secret",
			TokenTTL:   8 * time.Hour,
			BcryptCost: bcrypt.MinCost,
		},
	}

	return NewService(Params{
		Repository: repo.NewRepository(&database.Connections{Writer: db, Reader: db}),
		Issuer:     auth.NewTokenIssuer(cfg),
		Config:     cfg,
		Logger:     zap.NewNop(),
	})
}

func TestRegisterHashesPasswordAndLinksCustomer(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	account, err := svc.Register(ctx, RegisterInput{
		FirstName: "Diane",
		LastName:  "Murphy",
		Email:     "Diane.Murphy@Example.com",
		Password:  "s3cret",
	})
	require.NoError(t, err)
	require.NotZero(t, account.ID)

	assert.Equal(t, "diane.murphy@example.com", account.Email)
	assert.Equal(t, entity.RoleCustomer, account.Role)
	assert.NotEqual(t, "s3cret", account.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("s3cret")))

	require.NotNil(t, account.CustomerNumber)
	linked, err := svc.repo.GetByEmail(ctx, "diane.murphy@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.CustomerNumber, linked.CustomerNumber)
}

func TestRegisterStaffRoleSkipsCustomerLink(t *testing.T) {
	svc := setupService(t)

	account, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Mary",
		Email:     "mary@example.com",
		Password:  "s3cret",
		Role:      entity.RoleSales,
	})
	require.NoError(t, err)
	assert.Nil(t, account.CustomerNumber)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Mary",
		Email:     "mary@example.com",
		Password:  "s3cret",
		Role:      entity.Role("Superuser"),
	})
	require.Error(t, err)
	assert.Equal(t, errorbank.KindBadRequest, errorbank.From(err).Kind())
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	in := RegisterInput{FirstName: "Diane", Email: "diane@example.com", Password: "s3cret"}
	_, err := svc.Register(ctx, in)
	require.NoError(t, err)

	_, err = svc.Register(ctx, in)
	require.Error(t, err)
	assert.Equal(t, errorbank.KindConflict, errorbank.From(err).Kind())
}

func TestLogin(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{FirstName: "Diane", Email: "diane@example.com", Password: "s3cret"})
	require.NoError(t, err)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		token, account, err := svc.Login(ctx, "diane@example.com", "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "diane@example.com", account.Email)

		claims, err := svc.issuer.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, account.ID, claims.UserID)
	})

	t.Run("wrong password and unknown email fail alike", func(t *testing.T) {
		_, _, badPass := svc.Login(ctx, "diane@example.com", "wrong")
		_, _, badUser := svc.Login(ctx, "nobody@example.com", "s3cret")

		for _, err := range []error{badPass, badUser} {
			require.Error(t, err)
			appErr := errorbank.From(err)
			assert.Equal(t, errorbank.KindUnauthorized, appErr.Kind())
			assert.Equal(t, "invalid email or password", appErr.Message())
		}
	})
}

func TestMeNotFound(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Me(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, errorbank.KindNotFound, errorbank.From(err).Kind())
}
