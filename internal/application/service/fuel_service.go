package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/grifosur/grifo-api/internal/domain/entity"
	"github.com/grifosur/grifo-api/internal/domain/repository"
	"github.com/grifosur/grifo-api/pkg/apperror"
	"github.com/grifosur/grifo-api/pkg/fuelcalc"
	"github.com/shopspring/decimal"
)

// FuelService handles fuel product operations and price calculations
type FuelService struct {
	fuelRepo repository.FuelRepository
	display  fuelcalc.DisplayPolicy
}

// NewFuelService creates a new fuel service
func NewFuelService(fuelRepo repository.FuelRepository) *FuelService {
	return &FuelService{
		fuelRepo: fuelRepo,
		display:  fuelcalc.DefaultDisplay(),
	}
}

// CreateFuelInput represents the create fuel input
type CreateFuelInput struct {
	Name           string
	PricePerGallon decimal.Decimal
	StockGallons   decimal.Decimal
}

// CreateFuel creates a new fuel product
func (s *FuelService) CreateFuel(ctx context.Context, input *CreateFuelInput) (*entity.Fuel, error) {
	if !input.PricePerGallon.IsPositive() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "price_per_gallon", Message: "Price must be greater than zero"},
		})
	}
	if input.StockGallons.IsNegative() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "stock_gallons", Message: "Stock cannot be negative"},
		})
	}

	fuel := &entity.Fuel{
		Name:           input.Name,
		PricePerGallon: input.PricePerGallon,
		StockGallons:   input.StockGallons,
	}

	if err := s.fuelRepo.Create(ctx, fuel); err != nil {
		return nil, err
	}
	return fuel, nil
}

// GetFuel retrieves a fuel by ID
func (s *FuelService) GetFuel(ctx context.Context, id uuid.UUID) (*entity.Fuel, error) {
	fuel, err := s.fuelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fuel == nil {
		return nil, apperror.NewNotFoundError("Fuel")
	}
	return fuel, nil
}

// ListFuels lists all fuel products
func (s *FuelService) ListFuels(ctx context.Context) ([]entity.Fuel, error) {
	return s.fuelRepo.List(ctx)
}

// UpdateFuelInput represents the update fuel input
type UpdateFuelInput struct {
	Name           *string
	PricePerGallon *decimal.Decimal
	StockGallons   *decimal.Decimal
}

// UpdateFuel updates a fuel product
func (s *FuelService) UpdateFuel(ctx context.Context, id uuid.UUID, input *UpdateFuelInput) (*entity.Fuel, error) {
	fuel, err := s.GetFuel(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		fuel.Name = *input.Name
	}
	if input.PricePerGallon != nil {
		if !input.PricePerGallon.IsPositive() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "price_per_gallon", Message: "Price must be greater than zero"},
			})
		}
		fuel.PricePerGallon = *input.PricePerGallon
	}
	if input.StockGallons != nil {
		if input.StockGallons.IsNegative() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "stock_gallons", Message: "Stock cannot be negative"},
			})
		}
		fuel.StockGallons = *input.StockGallons
	}

	if err := s.fuelRepo.Update(ctx, fuel); err != nil {
		return nil, err
	}
	return fuel, nil
}

// DeleteFuel deletes a fuel product
func (s *FuelService) DeleteFuel(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetFuel(ctx, id); err != nil {
		return err
	}
	return s.fuelRepo.Delete(ctx, id)
}

// Calculation is a calculator result rendered at display precision
type Calculation struct {
	FuelID    uuid.UUID       `json:"fuel_id"`
	FuelName  string          `json:"fuel_name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
	Gallons   decimal.Decimal `json:"gallons"`
	Liters    decimal.Decimal `json:"liters"`
}

// CalculateByAmount derives the quantity a currency amount buys of the
// given fuel
func (s *FuelService) CalculateByAmount(ctx context.Context, fuelID uuid.UUID, amount decimal.Decimal) (*Calculation, error) {
	fuel, err := s.GetFuel(ctx, fuelID)
	if err != nil {
		return nil, err
	}

	result, err := fuelcalc.ComputeByAmount(fuel.PricePerGallon, amount)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	return s.render(fuel, result), nil
}

// CalculateByQuantity derives the charge for a quantity of the given fuel
// entered in gallons or liters
func (s *FuelService) CalculateByQuantity(ctx context.Context, fuelID uuid.UUID, quantity decimal.Decimal, unitName string) (*Calculation, error) {
	fuel, err := s.GetFuel(ctx, fuelID)
	if err != nil {
		return nil, err
	}

	unit := fuelcalc.UnitGallon
	if unitName != "" {
		parsed, ok := fuelcalc.ParseUnit(unitName)
		if !ok {
			return nil, apperror.NewBadRequestError("Unit must be GALONES or LITROS")
		}
		unit = parsed
	}

	result, err := fuelcalc.ComputeByQuantity(fuel.PricePerGallon, quantity, unit)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	return s.render(fuel, result), nil
}

func (s *FuelService) render(fuel *entity.Fuel, result *fuelcalc.Result) *Calculation {
	return &Calculation{
		FuelID:    fuel.ID,
		FuelName:  fuel.Name,
		UnitPrice: result.UnitPrice,
		Amount:    s.display.RoundCurrency(result.Amount),
		Gallons:   s.display.RoundQuantity(result.Gallons),
		Liters:    s.display.RoundQuantity(result.Liters),
	}
}

// Conversion is a unit conversion rendered at display precision
type Conversion struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Input  decimal.Decimal `json:"input"`
	Output decimal.Decimal `json:"output"`
}

// ConvertGallonsToLiters converts a gallon quantity to liters
func (s *FuelService) ConvertGallonsToLiters(gallons decimal.Decimal) (*Conversion, error) {
	if !gallons.IsPositive() {
		return nil, apperror.NewBadRequestError("Quantity must be greater than zero")
	}
	return &Conversion{
		From:   fuelcalc.UnitGallon.String(),
		To:     fuelcalc.UnitLiter.String(),
		Input:  gallons,
		Output: s.display.RoundQuantity(fuelcalc.GallonsToLiters(gallons)),
	}, nil
}

// ConvertLitersToGallons converts a liter quantity to gallons
func (s *FuelService) ConvertLitersToGallons(liters decimal.Decimal) (*Conversion, error) {
	if !liters.IsPositive() {
		return nil, apperror.NewBadRequestError("Quantity must be greater than zero")
	}
	return &Conversion{
		From:   fuelcalc.UnitLiter.String(),
		To:     fuelcalc.UnitGallon.String(),
		Input:  liters,
		Output: s.display.RoundQuantity(fuelcalc.LitersToGallons(liters)),
	}, nil
}
