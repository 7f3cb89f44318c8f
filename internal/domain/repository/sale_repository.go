package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/grifosur/grifo-api/internal/domain/entity"
	"github.com/grifosur/grifo-api/internal/domain/enum"
	"github.com/grifosur/grifo-api/pkg/pagination"
)

// SaleFilterParams holds filters for listing sales
type SaleFilterParams struct {
	Pagination   *pagination.PaginationParams
	CustomerID   *uuid.UUID
	DocumentType *enum.DocumentType
	Status       *enum.SaleStatus
	StartDate    *time.Time
	EndDate      *time.Time
}

// SaleRepository defines the interface for sale data access
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.SaleStatus) error
}

// SaleDetailRepository defines the interface for sale line item data access
type SaleDetailRepository interface {
	CreateBatch(ctx context.Context, details []entity.SaleDetail) error
}

// SalePaymentRepository defines the interface for sale payment data access
type SalePaymentRepository interface {
	CreateBatch(ctx context.Context, payments []entity.SalePayment) error
}
