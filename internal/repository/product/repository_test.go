package product

import (
	"context"
	"database/sql"
	"testing"

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
	_, err = db.NewCreateTable().Model((*entity.Product)(nil)).Exec(ctx)
	require.NoError(t, err)
	_, err = db.NewCreateTable().Model((*entity.ProductLine)(nil)).Exec(ctx)
	require.NoError(t, err)

	products := []entity.Product{
		{Code: "S10_1678", Name: "1969 Harley Davidson Ultimate Chopper", Line: "Motorcycles", Stock: 7933, BuyPrice: 48.81, MSRP: 95.7},
		{Code: "S10_1949", Name: "1952 Alpine Renault 1300", Line: "Classic Cars", Stock: 7305, BuyPrice: 98.58, MSRP: 214.3},
		{Code: "S10_2016", Name: "1996 Moto Guzzi 1100i", Line: "Motorcycles", Stock: 0, BuyPrice: 68.99, MSRP: 118.94},
	}
	_, err = db.NewInsert().Model(&products).Exec(ctx)
	require.NoError(t, err)

	return NewRepository(&database.Connections{Writer: db, Reader: db})
}

func productCodes(products []entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Code)
	}
	return out
}

func TestListFilters(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	price := func(v float64) *float64 { return &v }

	cases := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filter orders by code", Filter{}, []string{"S10_1678", "S10_1949", "S10_2016"}},
		{"by line", Filter{Line: "Motorcycles"}, []string{"S10_1678", "S10_2016"}},
		{"min price", Filter{MinPrice: price(100)}, []string{"S10_1949", "S10_2016"}},
		{"max price", Filter{MaxPrice: price(100)}, []string{"S10_1678"}},
		{"price range", Filter{MinPrice: price(100), MaxPrice: price(150)}, []string{"S10_2016"}},
		{"in stock", Filter{InStock: true}, []string{"S10_1678", "S10_1949"}},
		{"search by name", Filter{Search: "Renault"}, []string{"S10_1949"}},
		{"search by code", Filter{Search: "S10_20"}, []string{"S10_2016"}},
		{"combined", Filter{Line: "Motorcycles", InStock: true}, []string{"S10_1678"}},
		{"no match", Filter{Search: "Spitfire"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.List(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, productCodes(got))
		})
	}
}

func TestGetByCode(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	p, err := repo.GetByCode(ctx, "S10_1949")
	require.NoError(t, err)
	assert.Equal(t, "1952 Alpine Renault 1300", p.Name)

	_, err = repo.GetByCode(ctx, "S99_9999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAndDelete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	p, err := repo.GetByCode(ctx, "S10_2016")
	require.NoError(t, err)
	p.Stock = 120
	require.NoError(t, repo.Update(ctx, p))

	updated, err := repo.GetByCode(ctx, "S10_2016")
	require.NoError(t, err)
	assert.Equal(t, 120, updated.Stock)

	require.NoError(t, repo.Delete(ctx, "S10_2016"))
	_, err = repo.GetByCode(ctx, "S10_2016")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "S10_2016"), ErrNotFound)
}
