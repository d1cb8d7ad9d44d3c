package order

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

	"github.com/Harihuynh2007/sales-app/internal/database"
	"github.com/Harihuynh2007/sales-app/internal/entity"
)

func setupRepo(t *testing.T) *Repository {
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

	_, err = db.NewInsert().Model(&entity.Customer{Name: "Mini Gifts"}).Exec(ctx)
	require.NoError(t, err)
	products := []entity.Product{
		{Code: "S10_1678", Name: "1969 Harley Davidson", Line: "Motorcycles", Stock: 7933, BuyPrice: 48.81, MSRP: 95.7},
		{Code: "S10_1949", Name: "1952 Alpine Renault", Line: "Classic Cars", Stock: 7305, BuyPrice: 98.58, MSRP: 214.3},
		{Code: "S10_2016", Name: "1996 Moto Guzzi", Line: "Motorcycles", Stock: 6625, BuyPrice: 68.99, MSRP: 118.94},
	}
	_, err = db.NewInsert().Model(&products).Exec(ctx)
	require.NoError(t, err)

	return NewRepository(&database.Connections{Writer: db, Reader: db})
}

func testOrder() *entity.Order {
	return &entity.Order{
		OrderDate:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		RequiredDate:   time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
		Status:         "In Process",
		CustomerNumber: 1,
	}
}

func countRows(t *testing.T, repo *Repository, model any) int {
	t.Helper()
	n, err := repo.reader.NewSelect().Model(model).Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestCreateAssignsLineNumbersInInputOrder(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	lines := []entity.OrderDetail{
		{ProductCode: "S10_2016", Quantity: 3, PriceEach: 110.0},
		{ProductCode: "S10_1678", Quantity: 1, PriceEach: 90.0},
		{ProductCode: "S10_1949", Quantity: 2, PriceEach: 205.5},
	}

	number, err := repo.Create(ctx, testOrder(), lines)
	require.NoError(t, err)
	require.NotZero(t, number)

	details, err := repo.Details(ctx, number)
	require.NoError(t, err)
	require.Len(t, details, 3)

	// Positions follow input order, not product code order.
	assert.Equal(t, "S10_2016", details[0].ProductCode)
	assert.Equal(t, "S10_1678", details[1].ProductCode)
	assert.Equal(t, "S10_1949", details[2].ProductCode)
	for i, d := range details {
		assert.Equal(t, i+1, d.LineNumber)
		assert.Equal(t, number, d.OrderNumber)
	}
}

func TestCreateEmptyItemsCommitsHeaderOnly(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	number, err := repo.Create(ctx, testOrder(), nil)
	require.NoError(t, err)
	require.NotZero(t, number)

	details, err := repo.Details(ctx, number)
	require.NoError(t, err)
	assert.Empty(t, details)

	assert.Equal(t, 1, countRows(t, repo, (*entity.Order)(nil)))
}

func TestCreateRollsBackOnLineFailure(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	// Duplicate product code violates the composite primary key on the
	// detail table, failing the batch insert after the header insert.
	lines := []entity.OrderDetail{
		{ProductCode: "S10_1678", Quantity: 1, PriceEach: 90.0},
		{ProductCode: "S10_1678", Quantity: 2, PriceEach: 90.0},
	}

	_, err := repo.Create(ctx, testOrder(), lines)
	require.Error(t, err)

	assert.Equal(t, 0, countRows(t, repo, (*entity.Order)(nil)))
	assert.Equal(t, 0, countRows(t, repo, (*entity.OrderDetail)(nil)))
}

func TestListFiltersByStatus(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	first := testOrder()
	_, err := repo.Create(ctx, first, []entity.OrderDetail{{ProductCode: "S10_1678", Quantity: 2, PriceEach: 50.0}})
	require.NoError(t, err)

	second := testOrder()
	second.Status = "Shipped"
	_, err = repo.Create(ctx, second, nil)
	require.NoError(t, err)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	shipped, err := repo.List(ctx, "Shipped")
	require.NoError(t, err)
	require.Len(t, shipped, 1)
	assert.Equal(t, second.Number, shipped[0].Number)
	assert.Equal(t, "Mini Gifts", shipped[0].CustomerName)

	inProcess, err := repo.List(ctx, "In Process")
	require.NoError(t, err)
	require.Len(t, inProcess, 1)
	assert.InDelta(t, 100.0, inProcess[0].TotalAmount, 0.001)
}

func TestGetByNumberNotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetByNumber(context.Background(), 99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesOrderAndLines(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	number, err := repo.Create(ctx, testOrder(), []entity.OrderDetail{
		{ProductCode: "S10_1678", Quantity: 1, PriceEach: 90.0},
		{ProductCode: "S10_1949", Quantity: 1, PriceEach: 205.5},
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, number))

	assert.Equal(t, 0, countRows(t, repo, (*entity.Order)(nil)))
	assert.Equal(t, 0, countRows(t, repo, (*entity.OrderDetail)(nil)))

	assert.ErrorIs(t, repo.Delete(ctx, number), ErrNotFound)
}
