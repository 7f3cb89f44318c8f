package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/grifosur/grifo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DailySummaryResult aggregates one business day of completed sales
type DailySummaryResult struct {
	SaleCount    int64           `json:"sale_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalGallons decimal.Decimal `json:"total_gallons"`
}

// FuelSalesResult aggregates sales of a single fuel for a business day
type FuelSalesResult struct {
	FuelID          uuid.UUID       `json:"fuel_id"`
	FuelName        string          `json:"fuel_name"`
	QuantityGallons decimal.Decimal `json:"quantity_gallons"`
	Amount          decimal.Decimal `json:"amount"`
}

// DailyRevenueResult is one point of the revenue-over-days series
type DailyRevenueResult struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// ReportRepository defines aggregate queries over sales for reporting
type ReportRepository interface {
	GetDailySummary(ctx context.Context, date time.Time) (*DailySummaryResult, error)
	GetFuelBreakdown(ctx context.Context, date time.Time) ([]FuelSalesResult, error)
	GetRecentSales(ctx context.Context, limit int) ([]entity.Sale, error)
	GetDailyRevenue(ctx context.Context, days int) ([]DailyRevenueResult, error)
}
