package service

import (
	"context"
	"time"

	"github.com/grifosur/grifo-api/internal/domain/entity"
	"github.com/grifosur/grifo-api/internal/domain/repository"
	"github.com/grifosur/grifo-api/pkg/apperror"
	"github.com/grifosur/grifo-api/pkg/businessdate"
	"github.com/shopspring/decimal"
)

// ReportService handles daily summaries and dashboard statistics
type ReportService struct {
	reportRepo   repository.ReportRepository
	fuelRepo     repository.FuelRepository
	customerRepo repository.CustomerRepository
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repository.ReportRepository,
	fuelRepo repository.FuelRepository,
	customerRepo repository.CustomerRepository,
) *ReportService {
	return &ReportService{
		reportRepo:   reportRepo,
		fuelRepo:     fuelRepo,
		customerRepo: customerRepo,
	}
}

// DailyReport is the summary of one business day
type DailyReport struct {
	Date    string                         `json:"date"`
	Summary *repository.DailySummaryResult `json:"summary"`
	ByFuel  []repository.FuelSalesResult   `json:"by_fuel"`
}

// GetDailyReport builds the report for a business date given as
// YYYY-MM-DD; an empty date means today in Peru local time
func (s *ReportService) GetDailyReport(ctx context.Context, dateStr string) (*DailyReport, error) {
	var date time.Time
	if dateStr == "" {
		date = businessdate.Today()
	} else {
		parsed, err := businessdate.ParseISO(dateStr)
		if err != nil {
			return nil, apperror.NewBadRequestError("Date must be in YYYY-MM-DD format")
		}
		date = parsed
	}

	summary, err := s.reportRepo.GetDailySummary(ctx, date)
	if err != nil {
		return nil, err
	}

	byFuel, err := s.reportRepo.GetFuelBreakdown(ctx, date)
	if err != nil {
		return nil, err
	}

	return &DailyReport{
		Date:    businessdate.ISODate(date),
		Summary: summary,
		ByFuel:  byFuel,
	}, nil
}

// GetRecentSales returns the latest completed sales
func (s *ReportService) GetRecentSales(ctx context.Context, limit int) ([]entity.Sale, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.reportRepo.GetRecentSales(ctx, limit)
}

// lowStockThresholdGallons marks a tank as needing a refill order
var lowStockThresholdGallons = decimal.NewFromInt(100)

// DashboardStats aggregates the numbers the dashboard shows
type DashboardStats struct {
	TotalFuels     int64                           `json:"total_fuels"`
	TotalCustomers int64                           `json:"total_customers"`
	LowStockFuels  []entity.Fuel                   `json:"low_stock_fuels"`
	Today          *repository.DailySummaryResult  `json:"today"`
	RevenueSeries  []repository.DailyRevenueResult `json:"revenue_series"`
}

// GetDashboardStats builds the dashboard: catalog counts, today's
// summary and the revenue series over the last days
func (s *ReportService) GetDashboardStats(ctx context.Context, days int) (*DashboardStats, error) {
	if days < 1 || days > 90 {
		days = 7
	}

	totalFuels, err := s.fuelRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalCustomers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	fuels, err := s.fuelRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var lowStock []entity.Fuel
	for _, fuel := range fuels {
		if fuel.StockGallons.LessThan(lowStockThresholdGallons) {
			lowStock = append(lowStock, fuel)
		}
	}

	today, err := s.reportRepo.GetDailySummary(ctx, businessdate.Today())
	if err != nil {
		return nil, err
	}

	series, err := s.reportRepo.GetDailyRevenue(ctx, days)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalFuels:     totalFuels,
		TotalCustomers: totalCustomers,
		LowStockFuels:  lowStock,
		Today:          today,
		RevenueSeries:  series,
	}, nil
}
