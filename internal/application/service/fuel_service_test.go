package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/grifosur/grifo-api/internal/domain/entity"
	"github.com/grifosur/grifo-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFuelFixture(t *testing.T) (*FuelService, uuid.UUID) {
	t.Helper()

	store := newMemStore()
	fuelRepo := &fakeFuelRepo{store: store}
	svc := NewFuelService(fuelRepo)

	fuel := &entity.Fuel{
		Name:           "Gasohol 90",
		PricePerGallon: dec("16.80"),
		StockGallons:   dec("800"),
	}
	require.NoError(t, fuelRepo.Create(context.Background(), fuel))

	return svc, fuel.ID
}

func TestCalculateByAmount(t *testing.T) {
	svc, fuelID := newFuelFixture(t)

	calc, err := svc.CalculateByAmount(context.Background(), fuelID, dec("100"))
	require.NoError(t, err)

	// 100 / 16.80 = 5.952 gal; 5.952380... x 3.785 = 22.530 L
	assert.True(t, calc.Amount.Equal(dec("100")))
	assert.True(t, calc.Gallons.Equal(dec("5.952")), "gallons = %s", calc.Gallons)
	assert.True(t, calc.Liters.Equal(dec("22.530")), "liters = %s", calc.Liters)
	assert.Equal(t, "Gasohol 90", calc.FuelName)
}

func TestCalculateByQuantityLiters(t *testing.T) {
	svc, fuelID := newFuelFixture(t)

	calc, err := svc.CalculateByQuantity(context.Background(), fuelID, dec("20"), "LITROS")
	require.NoError(t, err)

	// 20 L / 3.785 = 5.284 gal; x 16.80 = 88.77
	assert.True(t, calc.Gallons.Equal(dec("5.284")), "gallons = %s", calc.Gallons)
	assert.True(t, calc.Liters.Equal(dec("20.000")))
	assert.True(t, calc.Amount.Equal(dec("88.77")), "amount = %s", calc.Amount)
}

func TestCalculateUnknownFuel(t *testing.T) {
	svc, _ := newFuelFixture(t)

	_, err := svc.CalculateByAmount(context.Background(), uuid.New(), dec("100"))
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCalculateRejectsNonPositiveAmount(t *testing.T) {
	svc, fuelID := newFuelFixture(t)

	_, err := svc.CalculateByAmount(context.Background(), fuelID, dec("0"))
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCalculateRejectsUnknownUnit(t *testing.T) {
	svc, fuelID := newFuelFixture(t)

	_, err := svc.CalculateByQuantity(context.Background(), fuelID, dec("5"), "BARRILES")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestConversions(t *testing.T) {
	svc, _ := newFuelFixture(t)

	toLiters, err := svc.ConvertGallonsToLiters(dec("1"))
	require.NoError(t, err)
	assert.True(t, toLiters.Output.Equal(dec("3.785")))
	assert.Equal(t, "GALONES", toLiters.From)
	assert.Equal(t, "LITROS", toLiters.To)

	toGallons, err := svc.ConvertLitersToGallons(dec("3.785"))
	require.NoError(t, err)
	assert.True(t, toGallons.Output.Equal(dec("1.000")), "gallons = %s", toGallons.Output)

	_, err = svc.ConvertGallonsToLiters(dec("-1"))
	require.Error(t, err)
}
