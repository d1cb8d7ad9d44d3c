package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"go.uber.org/zap"

	authmw "github.com/Harihuynh2007/sales-app/internal/auth"
	"github.com/Harihuynh2007/sales-app/internal/config"
	"github.com/Harihuynh2007/sales-app/internal/database"
	"github.com/Harihuynh2007/sales-app/internal/entity"
	"github.com/Harihuynh2007/sales-app/internal/messaging"
	repo "github.com/Harihuynh2007/sales-app/internal/repository/order"
	service "github.com/Harihuynh2007/sales-app/internal/service/order"
)

type stubPublisher struct{}

func (stubPublisher) Publish(context.Context, []byte, []byte) error { return nil }
func (stubPublisher) Consume(ctx context.Context, _ messaging.Handler) error {
	<-ctx.Done()
	return ctx.Err()
}
func (stubPublisher) Topic() string { return "" }

type orderStack struct {
	echo   *echo.Echo
	issuer *authmw.TokenIssuer
	repo   *repo.Repository
}

func setupStack(t *testing.T) *orderStack {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	for _, model := range []any{
		(*entity.Customer)(nil),
		(*entity.Product)(nil),
		(*entity.Order)(nil),
		(*entity.OrderDetail)(nil),
	} {
		_, err := db.NewCreateTable().Model(model).Exec(ctx)
		require.NoError(t, err)
	}

	customers := []entity.Customer{{Name: "Mini Gifts"}, {Name: "Euro Shopping"}}
	_, err = db.NewInsert().Model(&customers).Exec(ctx)
	require.NoError(t, err)
	_, err = db.NewInsert().Model(&entity.Product{
		Code: "S10_1678", Name: "1969 Harley Davidson", Line: "Motorcycles",
		Stock: 7933, BuyPrice: 48.81, MSRP: 95.7,
	}).Exec(ctx)
	require.NoError(t, err)

	cfg := config.Config{Auth: config.Auth{JWTSecret: "handler-test-secret", TokenTTL: time.Hour}}
	repository := repo.NewRepository(&database.Connections{Writer: db, Reader: db})
	svc := service.NewService(service.Params{
		Repository: repository,
		Config:     cfg,
		Logger:     zap.NewNop(),
		Publisher:  stubPublisher{},
	})

	issuer := authmw.NewTokenIssuer(cfg)
	e := echo.New()
	Register(e, NewHandler(svc), issuer)

	return &orderStack{echo: e, issuer: issuer, repo: repository}
}

func (s *orderStack) token(t *testing.T, role entity.Role, customerNumber *int64) string {
	t.Helper()
	token, err := s.issuer.Issue(&entity.User{
		ID:             1,
		Email:          "caller@example.com",
		Role:           role,
		CustomerNumber: customerNumber,
	})
	require.NoError(t, err)
	return token
}

func (s *orderStack) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func ptr(n int64) *int64 { return &n }

func TestCreatePersistsItemQuantityAndPrice(t *testing.T) {
	s := setupStack(t)
	token := s.token(t, entity.RoleAdmin, nil)

	body := `{
		"customerNumber": 1,
		"orderDate": "2024-01-15",
		"requiredDate": "2024-01-25",
		"items": [{"productCode": "S10_1678", "quantity": 5, "price": 90.5}]
	}`
	rec := s.do(t, http.MethodPost, "/api/orders", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data struct {
			OrderNumber int64 `json:"orderNumber"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.Data.OrderNumber)

	details, err := s.repo.Details(context.Background(), created.Data.OrderNumber)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "S10_1678", details[0].ProductCode)
	assert.Equal(t, 5, details[0].Quantity)
	assert.Equal(t, 90.5, details[0].PriceEach)
}

func TestCreateAcceptsShippedDate(t *testing.T) {
	s := setupStack(t)
	token := s.token(t, entity.RoleAdmin, nil)

	body := `{
		"customerNumber": 1,
		"orderDate": "2024-01-15",
		"requiredDate": "2024-01-25",
		"shippedDate": "2024-01-20",
		"status": "Shipped",
		"items": []
	}`
	rec := s.do(t, http.MethodPost, "/api/orders", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data struct {
			OrderNumber int64 `json:"orderNumber"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	row, err := s.repo.GetByNumber(context.Background(), created.Data.OrderNumber)
	require.NoError(t, err)
	require.NotNil(t, row.ShippedDate)
	assert.Equal(t, "2024-01-20", row.ShippedDate.Format("2006-01-02"))
	assert.Equal(t, "Shipped", row.Status)
}

func TestCustomerReadsOwnOrderBack(t *testing.T) {
	s := setupStack(t)
	token := s.token(t, entity.RoleCustomer, ptr(1))

	body := `{
		"customerNumber": 1,
		"orderDate": "2024-01-15",
		"requiredDate": "2024-01-25",
		"items": [{"productCode": "S10_1678", "quantity": 2, "price": 95.7}]
	}`
	rec := s.do(t, http.MethodPost, "/api/orders", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data struct {
			OrderNumber int64 `json:"orderNumber"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/orders/%d/details", created.Data.OrderNumber)
	rec = s.do(t, http.MethodGet, path, token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var details struct {
		Data []struct {
			QuantityOrdered int `json:"quantityOrdered"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))
	require.Len(t, details.Data, 1)
	assert.Equal(t, 2, details.Data[0].QuantityOrdered)
}

func TestCustomerOrderReadsAreScoped(t *testing.T) {
	s := setupStack(t)
	admin := s.token(t, entity.RoleAdmin, nil)

	createBody := func(customer int64) string {
		return fmt.Sprintf(`{
			"customerNumber": %d,
			"orderDate": "2024-01-15",
			"requiredDate": "2024-01-25",
			"items": []
		}`, customer)
	}
	rec := s.do(t, http.MethodPost, "/api/orders", admin, createBody(1))
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = s.do(t, http.MethodPost, "/api/orders", admin, createBody(2))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data struct {
			OrderNumber int64 `json:"orderNumber"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	otherOrder := created.Data.OrderNumber

	customer := s.token(t, entity.RoleCustomer, ptr(1))

	// List only returns the caller's own orders.
	rec = s.do(t, http.MethodGet, "/api/orders", customer, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var list struct {
		Data []struct {
			CustomerNumber int64 `json:"customerNumber"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, int64(1), list.Data[0].CustomerNumber)

	// Another customer's order is denied on both read endpoints.
	rec = s.do(t, http.MethodGet, fmt.Sprintf("/api/orders/%d", otherOrder), customer, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = s.do(t, http.MethodGet, fmt.Sprintf("/api/orders/%d/details", otherOrder), customer, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Updates stay staff only.
	rec = s.do(t, http.MethodPut, fmt.Sprintf("/api/orders/%d", otherOrder), customer, `{"status":"Shipped"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
