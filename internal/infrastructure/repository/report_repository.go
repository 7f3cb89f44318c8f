package repository

import (
	"context"
	"time"

	"github.com/grifosur/grifo-api/internal/domain/entity"
	"github.com/grifosur/grifo-api/internal/domain/enum"
	domainRepo "github.com/grifosur/grifo-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetDailySummary(ctx context.Context, date time.Time) (*domainRepo.DailySummaryResult, error) {
	var result domainRepo.DailySummaryResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(s.id) AS sale_count,
			COALESCE(SUM(s.total), 0) AS total_revenue,
			COALESCE(SUM(d.gallons), 0) AS total_gallons
		FROM sales s
		LEFT JOIN (
			SELECT sale_id, SUM(quantity_gallons) AS gallons
			FROM sale_details
			GROUP BY sale_id
		) d ON d.sale_id = s.id
		WHERE s.sale_date = ? AND s.status = ?
	`, date.Format("2006-01-02"), enum.SaleStatusCompleted).Scan(&result).Error

	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *reportRepository) GetFuelBreakdown(ctx context.Context, date time.Time) ([]domainRepo.FuelSalesResult, error) {
	var results []domainRepo.FuelSalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			f.id AS fuel_id,
			f.name AS fuel_name,
			COALESCE(SUM(d.quantity_gallons), 0) AS quantity_gallons,
			COALESCE(SUM(d.subtotal), 0) AS amount
		FROM sale_details d
		JOIN sales s ON s.id = d.sale_id
		JOIN fuels f ON f.id = d.fuel_id
		WHERE s.sale_date = ? AND s.status = ?
		GROUP BY f.id, f.name
		ORDER BY amount DESC
	`, date.Format("2006-01-02"), enum.SaleStatusCompleted).Scan(&results).Error

	return results, err
}

func (r *reportRepository) GetRecentSales(ctx context.Context, limit int) ([]entity.Sale, error) {
	var sales []entity.Sale

	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Details").
		Preload("Details.Fuel").
		Where("status = ?", enum.SaleStatusCompleted).
		Order("created_at DESC").
		Limit(limit).
		Find(&sales).Error

	return sales, err
}

func (r *reportRepository) GetDailyRevenue(ctx context.Context, days int) ([]domainRepo.DailyRevenueResult, error) {
	var results []domainRepo.DailyRevenueResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			TO_CHAR(s.sale_date, 'YYYY-MM-DD') AS date,
			COALESCE(SUM(s.total), 0) AS revenue
		FROM sales s
		WHERE s.status = ? AND s.sale_date >= CURRENT_DATE - ?::int
		GROUP BY s.sale_date
		ORDER BY s.sale_date ASC
	`, enum.SaleStatusCompleted, days).Scan(&results).Error

	return results, err
}
