package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/grifosur/grifo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// FuelRepository defines the interface for fuel product data access
type FuelRepository interface {
	Create(ctx context.Context, fuel *entity.Fuel) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Fuel, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Fuel, error)
	List(ctx context.Context) ([]entity.Fuel, error)
	Update(ctx context.Context, fuel *entity.Fuel) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	// AtomicDecrementStock decrements stock for multiple fuels in one
	// transaction. Fuels with insufficient stock are returned as failed
	// IDs and the whole transaction is rolled back.
	AtomicDecrementStock(ctx context.Context, decrements map[uuid.UUID]decimal.Decimal) ([]uuid.UUID, error)

	// AtomicIncrementStock restores stock, used for cancellations and
	// for rolling back a failed sale creation.
	AtomicIncrementStock(ctx context.Context, increments map[uuid.UUID]decimal.Decimal) error
}
