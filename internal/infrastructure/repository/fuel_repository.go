package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/grifosur/grifo-api/internal/domain/entity"
	domainRepo "github.com/grifosur/grifo-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fuelRepository struct {
	db *gorm.DB
}

// NewFuelRepository creates a new fuel repository
func NewFuelRepository(db *gorm.DB) domainRepo.FuelRepository {
	return &fuelRepository{db: db}
}

func (r *fuelRepository) Create(ctx context.Context, fuel *entity.Fuel) error {
	return r.db.WithContext(ctx).Create(fuel).Error
}

func (r *fuelRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Fuel, error) {
	var fuel entity.Fuel
	err := r.db.WithContext(ctx).First(&fuel, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fuel, nil
}

func (r *fuelRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Fuel, error) {
	var fuels []entity.Fuel
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&fuels).Error
	return fuels, err
}

func (r *fuelRepository) List(ctx context.Context) ([]entity.Fuel, error) {
	var fuels []entity.Fuel
	err := r.db.WithContext(ctx).Order("name ASC").Find(&fuels).Error
	return fuels, err
}

func (r *fuelRepository) Update(ctx context.Context, fuel *entity.Fuel) error {
	return r.db.WithContext(ctx).Save(fuel).Error
}

func (r *fuelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Fuel{}, "id = ?", id).Error
}

func (r *fuelRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Fuel{}).Count(&count).Error
	return count, err
}

// AtomicDecrementStock decrements stock for multiple fuels in one
// transaction. A fuel with insufficient stock makes the whole
// transaction roll back and its ID is reported back to the caller.
func (r *fuelRepository) AtomicDecrementStock(ctx context.Context, decrements map[uuid.UUID]decimal.Decimal) ([]uuid.UUID, error) {
	if len(decrements) == 0 {
		return nil, nil
	}

	var failedIDs []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, gallons := range decrements {
			result := tx.Model(&entity.Fuel{}).
				Where("id = ? AND stock_gallons >= ?", id, gallons).
				Update("stock_gallons", gorm.Expr("stock_gallons - ?", gallons))

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, id)
			}
		}

		if len(failedIDs) > 0 {
			return gorm.ErrInvalidTransaction
		}

		return nil
	})

	// Rolled back due to insufficient stock: report the failed IDs
	// without surfacing the sentinel transaction error
	if err == gorm.ErrInvalidTransaction && len(failedIDs) > 0 {
		return failedIDs, nil
	}

	return failedIDs, err
}

// AtomicIncrementStock restores stock for cancellations and rollbacks
func (r *fuelRepository) AtomicIncrementStock(ctx context.Context, increments map[uuid.UUID]decimal.Decimal) error {
	if len(increments) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, gallons := range increments {
			result := tx.Model(&entity.Fuel{}).
				Where("id = ?", id).
				Update("stock_gallons", gorm.Expr("stock_gallons + ?", gallons))

			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}
