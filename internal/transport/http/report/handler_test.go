package report

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	authmw "github.com/Harihuynh2007/sales-app/internal/auth"
	"github.com/Harihuynh2007/sales-app/internal/cache"
	"github.com/Harihuynh2007/sales-app/internal/config"
	service "github.com/Harihuynh2007/sales-app/internal/service/report"
)

type missStore struct{}

func (missStore) Get(context.Context, string) ([]byte, error) {
	return nil, cache.ErrCacheMiss
}
func (missStore) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (missStore) Delete(context.Context, string) error                     { return nil }

func TestRegisterExposesReportRoutes(t *testing.T) {
	e := echo.New()
	issuer := authmw.NewTokenIssuer(config.Config{Auth: config.Auth{JWTSecret: "route-test", TokenTTL: time.Hour}})
	h := NewHandler(service.NewService(service.Params{Cache: missStore{}, Logger: zap.NewNop()}))
	Register(e, h, issuer)

	paths := make(map[string]bool)
	for _, r := range e.Routes() {
		if r.Method == http.MethodGet {
			paths[r.Path] = true
		}
	}

	assert.True(t, paths["/api/reports/revenue"])
	assert.True(t, paths["/api/reports/top-products"])
	assert.True(t, paths["/api/reports/employee-performance"])
	assert.True(t, paths["/api/reports/inventory"])
	assert.True(t, paths["/api/dashboard/stats"])
}
