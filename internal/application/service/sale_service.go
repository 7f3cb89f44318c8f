package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/grifosur/grifo-api/internal/domain/entity"
	"github.com/grifosur/grifo-api/internal/domain/enum"
	"github.com/grifosur/grifo-api/internal/domain/repository"
	"github.com/grifosur/grifo-api/pkg/apperror"
	"github.com/grifosur/grifo-api/pkg/businessdate"
	"github.com/grifosur/grifo-api/pkg/fuelcalc"
	"github.com/grifosur/grifo-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// SaleService handles sale registration, lookup and cancellation
type SaleService struct {
	saleRepo     repository.SaleRepository
	detailRepo   repository.SaleDetailRepository
	paymentRepo  repository.SalePaymentRepository
	fuelRepo     repository.FuelRepository
	customerRepo repository.CustomerRepository
	display      fuelcalc.DisplayPolicy
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	detailRepo repository.SaleDetailRepository,
	paymentRepo repository.SalePaymentRepository,
	fuelRepo repository.FuelRepository,
	customerRepo repository.CustomerRepository,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		detailRepo:   detailRepo,
		paymentRepo:  paymentRepo,
		fuelRepo:     fuelRepo,
		customerRepo: customerRepo,
		display:      fuelcalc.DefaultDisplay(),
	}
}

// SaleItemInput represents one dispensed item. Exactly one of Amount or
// Quantity must be set: Amount means the customer named a charge and the
// quantity is derived, Quantity means the opposite.
type SaleItemInput struct {
	FuelID       uuid.UUID
	VehiclePlate *string
	Amount       *decimal.Decimal
	Quantity     *decimal.Decimal
	Unit         string
}

// PaymentInput represents one payment towards a sale
type PaymentInput struct {
	Method         string
	AmountReceived decimal.Decimal
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	UserID       uuid.UUID
	CustomerID   uuid.UUID
	DocumentType string
	RUC          string
	LegalName    string
	Items        []SaleItemInput
	Payments     []PaymentInput
}

// CreateSale registers a sale: it validates the fiscal document, derives
// each line with the fuel calculator, atomically decrements stock and
// persists the sale with its details and payments. Stock is restored if
// any later step fails.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	docType := enum.DocumentType(input.DocumentType)
	if !docType.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "document_type", Message: "Document type must be BOLETA or FACTURA"},
		})
	}

	if err := fuelcalc.ValidateDocument(fuelcalc.DocumentType(docType), input.RUC, input.LegalName); err != nil {
		var fieldErrors []apperror.FieldError
		if errors.Is(err, fuelcalc.ErrInvalidRUC) {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "ruc", Message: "RUC must be exactly 11 digits"})
		}
		if errors.Is(err, fuelcalc.ErrInvalidLegalName) {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "legal_name", Message: "Legal name is required for FACTURA"})
		}
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Sale must have at least one item")
	}
	if len(input.Payments) == 0 {
		return nil, apperror.NewBadRequestError("Sale must have at least one payment")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	// Batch fetch all fuels in one query (prevents N+1)
	fuelIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		fuelIDs[i] = item.FuelID
	}

	fuels, err := s.fuelRepo.GetByIDs(ctx, fuelIDs)
	if err != nil {
		return nil, err
	}

	fuelMap := make(map[uuid.UUID]*entity.Fuel, len(fuels))
	for i := range fuels {
		fuelMap[fuels[i].ID] = &fuels[i]
	}

	// Derive each line with the calculator and accumulate the stock
	// decrements per fuel
	total := decimal.Zero
	details := make([]entity.SaleDetail, 0, len(input.Items))
	stockDecrements := make(map[uuid.UUID]decimal.Decimal)

	for i, item := range input.Items {
		fuel, exists := fuelMap[item.FuelID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Fuel %s", item.FuelID))
		}

		calcInput, err := buildCalcInput(i, item)
		if err != nil {
			return nil, err
		}

		result, err := fuelcalc.Compute(fuel.PricePerGallon, calcInput)
		if err != nil {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: fmt.Sprintf("items[%d]", i), Message: err.Error()},
			})
		}

		gallons := s.display.RoundQuantity(result.Gallons)
		subtotal := s.display.RoundCurrency(result.Amount)
		total = total.Add(subtotal)

		details = append(details, entity.SaleDetail{
			FuelID:          item.FuelID,
			VehiclePlate:    item.VehiclePlate,
			QuantityGallons: gallons,
			UnitPrice:       fuel.PricePerGallon,
			Subtotal:        subtotal,
		})

		stockDecrements[fuel.ID] = stockDecrements[fuel.ID].Add(gallons)
	}

	totals := fuelcalc.ComputeTotals(total, fuelcalc.DocumentType(docType))

	payments, err := s.buildPayments(input.Payments, totals.Total)
	if err != nil {
		return nil, err
	}

	// Atomically decrement stock - this is race-condition safe.
	// If any fuel has insufficient stock, the entire operation fails.
	failedIDs, err := s.fuelRepo.AtomicDecrementStock(ctx, stockDecrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			if fuel, exists := fuelMap[id]; exists {
				failedNames = append(failedNames, fuel.Name)
			}
		}
		return nil, apperror.NewAppError(400, fmt.Sprintf("Insufficient stock for: %v", failedNames))
	}

	now := businessdate.Now()
	sale := &entity.Sale{
		UserID:       input.UserID,
		CustomerID:   input.CustomerID,
		SaleDate:     businessdate.Truncate(now),
		SaleTime:     businessdate.TimeOfDay(now),
		DocumentType: docType,
		Subtotal:     s.display.RoundCurrency(totals.Subtotal),
		IGV:          s.display.RoundCurrency(totals.IGV),
		Total:        totals.Total,
		Status:       enum.SaleStatusCompleted,
	}

	if docType.RequiresTaxData() {
		ruc := strings.TrimSpace(input.RUC)
		legalName := strings.TrimSpace(input.LegalName)
		sale.RUC = &ruc
		sale.LegalName = &legalName
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		// Stock was already decremented - restore it
		_ = s.fuelRepo.AtomicIncrementStock(ctx, stockDecrements)
		return nil, err
	}

	for i := range details {
		details[i].SaleID = sale.ID
	}
	if err := s.detailRepo.CreateBatch(ctx, details); err != nil {
		_ = s.fuelRepo.AtomicIncrementStock(ctx, stockDecrements)
		return nil, err
	}

	for i := range payments {
		payments[i].SaleID = sale.ID
	}
	if err := s.paymentRepo.CreateBatch(ctx, payments); err != nil {
		_ = s.fuelRepo.AtomicIncrementStock(ctx, stockDecrements)
		return nil, err
	}

	return s.saleRepo.GetWithDetails(ctx, sale.ID)
}

// buildCalcInput maps an item to the calculator's input mode
func buildCalcInput(index int, item SaleItemInput) (fuelcalc.Input, error) {
	if item.Amount != nil && item.Quantity != nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: fmt.Sprintf("items[%d]", index), Message: "Provide either amount or quantity, not both"},
		})
	}

	switch {
	case item.Amount != nil:
		return fuelcalc.AmountInput{Amount: *item.Amount}, nil
	case item.Quantity != nil:
		unit := fuelcalc.UnitGallon
		if item.Unit != "" {
			parsed, ok := fuelcalc.ParseUnit(item.Unit)
			if !ok {
				return nil, apperror.NewValidationError([]apperror.FieldError{
					{Field: fmt.Sprintf("items[%d].unit", index), Message: "Unit must be GALONES or LITROS"},
				})
			}
			unit = parsed
		}
		return fuelcalc.QuantityInput{Quantity: *item.Quantity, Unit: unit}, nil
	default:
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: fmt.Sprintf("items[%d]", index), Message: "Provide either amount or quantity"},
		})
	}
}

// buildPayments validates payments against the sale total and computes the
// change due. Change lands on the cash payment; insufficient payment and
// change with no cash tendered are both rejected before anything persists.
func (s *SaleService) buildPayments(inputs []PaymentInput, total decimal.Decimal) ([]entity.SalePayment, error) {
	received := decimal.Zero
	cashIndex := -1
	payments := make([]entity.SalePayment, 0, len(inputs))

	for i, p := range inputs {
		method := enum.PaymentMethod(p.Method)
		if !method.Valid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: fmt.Sprintf("payments[%d].method", i), Message: "Unknown payment method"},
			})
		}
		if !p.AmountReceived.IsPositive() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: fmt.Sprintf("payments[%d].amount_received", i), Message: "Amount received must be greater than zero"},
			})
		}

		received = received.Add(p.AmountReceived)
		if method.IsCash() && cashIndex < 0 {
			cashIndex = i
		}

		payments = append(payments, entity.SalePayment{
			Method:         method,
			AmountReceived: s.display.RoundCurrency(p.AmountReceived),
			ChangeDue:      decimal.Zero,
		})
	}

	change := fuelcalc.ComputeChange(total, received)
	if change.IsNegative() {
		return nil, apperror.NewBadRequestError(
			fmt.Sprintf("Insufficient payment: received %s, total is %s",
				s.display.Currency(received), s.display.Currency(total)))
	}
	if change.IsPositive() {
		if cashIndex < 0 {
			return nil, apperror.NewBadRequestError("Overpayment is only allowed for cash payments")
		}
		payments[cashIndex].ChangeDue = s.display.RoundCurrency(change)
	}

	return payments, nil
}

// GetSale retrieves a sale by ID with its details and payments
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// CancelSale cancels a sale and restores the dispensed stock. Vendors can
// only cancel their own sales; admins can cancel any.
func (s *SaleService) CancelSale(ctx context.Context, userID uuid.UUID, isAdmin bool, saleID uuid.UUID) error {
	sale, err := s.saleRepo.GetWithDetails(ctx, saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}

	if !isAdmin && sale.UserID != userID {
		return apperror.ErrForbidden
	}

	if sale.Status == enum.SaleStatusCancelled {
		return apperror.NewAppError(400, "Sale is already cancelled")
	}

	stockIncrements := make(map[uuid.UUID]decimal.Decimal)
	for _, detail := range sale.Details {
		stockIncrements[detail.FuelID] = stockIncrements[detail.FuelID].Add(detail.QuantityGallons)
	}

	if err := s.fuelRepo.AtomicIncrementStock(ctx, stockIncrements); err != nil {
		return err
	}

	return s.saleRepo.UpdateStatus(ctx, saleID, enum.SaleStatusCancelled)
}
