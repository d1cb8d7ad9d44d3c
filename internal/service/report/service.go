package report

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Harihuynh2007/sales-app/internal/cache"
	"github.com/Harihuynh2007/sales-app/internal/config"
	"github.com/Harihuynh2007/sales-app/internal/dto"
	repo "github.com/Harihuynh2007/sales-app/internal/repository/report"
	"github.com/Harihuynh2007/sales-app/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/Harihuynh2007/sales-app/service/report")

const statsCacheKey = "dashboard:stats"

// Service shapes the reporting queries into response rows.
type Service struct {
	repo     *repo.Repository
	cache    cache.Store
	cacheTTL time.Duration
	logger   *zap.Logger
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Cache      cache.Store
	Config     config.Config
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		repo:     p.Repository,
		cache:    p.Cache,
		cacheTTL: p.Config.Cache.DefaultTTL,
		logger:   p.Logger,
	}
}

// RevenueByMonth returns shipped revenue per month, newest first.
func (s *Service) RevenueByMonth(ctx context.Context) ([]dto.RevenueByMonth, error) {
	ctx, span := serviceTracer.Start(ctx, "ReportService.RevenueByMonth")
	defer span.End()

	rows, err := s.repo.RevenueByMonth(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load revenue report", errorbank.WithCause(err))
	}

	out := make([]dto.RevenueByMonth, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.RevenueByMonth{
			Month:       row.Month,
			TotalOrders: row.TotalOrders,
			Revenue:     row.Revenue,
		})
	}
	return out, nil
}

// TopProducts returns the best-selling products by quantity.
func (s *Service) TopProducts(ctx context.Context) ([]dto.TopProduct, error) {
	ctx, span := serviceTracer.Start(ctx, "ReportService.TopProducts")
	defer span.End()

	rows, err := s.repo.TopProducts(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load top products report", errorbank.WithCause(err))
	}

	out := make([]dto.TopProduct, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.TopProduct{
			ProductCode: row.Code,
			ProductName: row.Name,
			TotalSold:   row.TotalQty,
			Revenue:     row.Revenue,
		})
	}
	return out, nil
}

// EmployeePerformance returns order counts and revenue per sales employee.
func (s *Service) EmployeePerformance(ctx context.Context) ([]dto.EmployeePerformance, error) {
	ctx, span := serviceTracer.Start(ctx, "ReportService.EmployeePerformance")
	defer span.End()

	rows, err := s.repo.EmployeePerformance(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load performance report", errorbank.WithCause(err))
	}

	out := make([]dto.EmployeePerformance, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.EmployeePerformance{
			EmployeeNumber: row.Number,
			EmployeeName:   strings.TrimSpace(row.FirstName + " " + row.LastName),
			TotalOrders:    row.OrderCount,
			TotalSales:     row.Revenue,
		})
	}
	return out, nil
}

// Inventory returns stock levels net of quantities held by open orders.
func (s *Service) Inventory(ctx context.Context) ([]dto.InventoryStatus, error) {
	ctx, span := serviceTracer.Start(ctx, "ReportService.Inventory")
	defer span.End()

	rows, err := s.repo.Inventory(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load inventory report", errorbank.WithCause(err))
	}

	out := make([]dto.InventoryStatus, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.InventoryStatus{
			ProductCode:     row.Code,
			ProductName:     row.Name,
			ProductLine:     row.Line,
			QuantityInStock: int(row.InStock),
			Reserved:        int(row.Reserved),
			Available:       int(row.InStock - row.Reserved),
		})
	}
	return out, nil
}

// DashboardStats returns the headline counters, cached briefly since the
// dashboard polls them.
func (s *Service) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	ctx, span := serviceTracer.Start(ctx, "ReportService.DashboardStats")
	defer span.End()

	if cached, err := s.statsFromCache(ctx); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		if s.logger != nil {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	stats, err := s.repo.DashboardStats(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load dashboard stats", errorbank.WithCause(err))
	}

	out := &dto.DashboardStats{
		TotalOrders:    stats.TotalOrders,
		TotalRevenue:   stats.TotalRevenue,
		TotalCustomers: stats.TotalCustomers,
		LowStock:       stats.LowStock,
	}

	if err := s.storeStatsInCache(ctx, out); err != nil {
		if s.logger != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return out, nil
}

func (s *Service) statsFromCache(ctx context.Context) (*dto.DashboardStats, error) {
	if s.cache == nil {
		return nil, cache.ErrCacheMiss
	}
	bytes, err := s.cache.Get(ctx, statsCacheKey)
	if err != nil {
		return nil, err
	}
	var stats dto.DashboardStats
	if err := json.Unmarshal(bytes, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Service) storeStatsInCache(ctx context.Context, stats *dto.DashboardStats) error {
	if s.cache == nil || stats == nil {
		return nil
	}
	bytes, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, statsCacheKey, bytes, s.cacheTTL)
}
