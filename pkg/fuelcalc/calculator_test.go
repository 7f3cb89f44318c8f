package fuelcalc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGallonsToLiters(t *testing.T) {
	assert.True(t, GallonsToLiters(dec("1")).Equal(dec("3.785")))
	assert.True(t, GallonsToLiters(dec("0")).Equal(decimal.Zero))
	assert.True(t, GallonsToLiters(dec("10")).Equal(dec("37.85")))
}

func TestLitersToGallonsRoundTrip(t *testing.T) {
	tolerance := dec("0.000001")
	for _, s := range []string{"0", "1", "3.785", "10.5", "123.456"} {
		x := dec(s)
		back := LitersToGallons(GallonsToLiters(x))
		assert.True(t, back.Sub(x).Abs().LessThanOrEqual(tolerance),
			"round trip of %s drifted to %s", s, back)
	}
}

func TestComputeByQuantityGallons(t *testing.T) {
	res, err := ComputeByQuantity(dec("15.50"), dec("10"), UnitGallon)
	require.NoError(t, err)

	assert.True(t, res.Amount.Equal(dec("155.00")), "amount = %s", res.Amount)
	assert.True(t, res.Gallons.Equal(dec("10")))
	assert.True(t, res.Liters.Equal(dec("37.85")))
}

func TestComputeByQuantityLiters(t *testing.T) {
	res, err := ComputeByQuantity(dec("15.50"), dec("37.85"), UnitLiter)
	require.NoError(t, err)

	assert.True(t, res.Gallons.Equal(dec("10")), "gallons = %s", res.Gallons)
	assert.True(t, res.Liters.Equal(dec("37.85")))
	// amount == price * gallons within 0.01
	diff := res.Amount.Sub(dec("155.00")).Abs()
	assert.True(t, diff.LessThanOrEqual(dec("0.01")), "amount = %s", res.Amount)
}

func TestComputeByQuantityErrors(t *testing.T) {
	_, err := ComputeByQuantity(decimal.Zero, dec("10"), UnitGallon)
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = ComputeByQuantity(dec("-1"), dec("10"), UnitGallon)
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = ComputeByQuantity(dec("15.50"), decimal.Zero, UnitGallon)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = ComputeByQuantity(dec("15.50"), dec("-3"), UnitLiter)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestComputeByAmount(t *testing.T) {
	res, err := ComputeByAmount(dec("15.50"), dec("100"))
	require.NoError(t, err)

	// The charged amount is authoritative and exact.
	assert.True(t, res.Amount.Equal(dec("100")))

	// gallons * unitPrice recovers the amount within 0.01.
	diff := res.Gallons.Mul(res.UnitPrice).Sub(dec("100")).Abs()
	assert.True(t, diff.LessThanOrEqual(dec("0.01")), "recovered %s", res.Gallons.Mul(res.UnitPrice))

	assert.True(t, res.Liters.Equal(GallonsToLiters(res.Gallons)))
}

func TestComputeByAmountErrors(t *testing.T) {
	_, err := ComputeByAmount(decimal.Zero, dec("50"))
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = ComputeByAmount(dec("15.50"), decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ComputeByAmount(dec("15.50"), dec("-20"))
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestComputeDispatch(t *testing.T) {
	byAmount, err := Compute(dec("16.80"), AmountInput{Amount: dec("84")})
	require.NoError(t, err)
	assert.True(t, byAmount.Gallons.Equal(dec("5")))

	byQty, err := Compute(dec("16.80"), QuantityInput{Quantity: dec("5"), Unit: UnitGallon})
	require.NoError(t, err)
	assert.True(t, byQty.Amount.Equal(dec("84.00")))

	_, err = Compute(dec("16.80"), nil)
	assert.ErrorIs(t, err, ErrNoPendingInput)
}

func TestComputeTotalsFactura(t *testing.T) {
	totals := ComputeTotals(dec("118.00"), Factura)

	display := DefaultDisplay()
	assert.Equal(t, "100.00", display.Currency(totals.Subtotal))
	assert.Equal(t, "18.00", display.Currency(totals.IGV))
	assert.True(t, totals.Total.Equal(dec("118.00")))

	// subtotal + igv reassembles the total exactly
	assert.True(t, totals.Subtotal.Add(totals.IGV).Equal(totals.Total))
}

func TestComputeTotalsBoleta(t *testing.T) {
	totals := ComputeTotals(dec("50.00"), Boleta)

	assert.True(t, totals.Subtotal.Equal(dec("50.00")))
	assert.True(t, totals.IGV.IsZero())
	assert.True(t, totals.Total.Equal(dec("50.00")))
}

func TestComputeChange(t *testing.T) {
	assert.True(t, ComputeChange(dec("100.00"), dec("150.00")).Equal(dec("50.00")))

	// Insufficient payment surfaces as a negative value, never clamped.
	change := ComputeChange(dec("100.00"), dec("80.00"))
	assert.True(t, change.Equal(dec("-20.00")))
	assert.True(t, change.IsNegative())
}

func TestAmountQuantityInvariant(t *testing.T) {
	prices := []string{"12.09", "15.50", "16.80", "17.50"}
	amounts := []string{"10", "50.50", "100", "118", "333.33"}
	tolerance := dec("0.01")

	for _, p := range prices {
		for _, a := range amounts {
			res, err := ComputeByAmount(dec(p), dec(a))
			require.NoError(t, err)
			diff := res.Gallons.Mul(res.UnitPrice).Sub(res.Amount).Abs()
			assert.True(t, diff.LessThanOrEqual(tolerance),
				"price %s amount %s: invariant off by %s", p, a, diff)
		}
	}
}

func TestDisplayPolicy(t *testing.T) {
	display := DefaultDisplay()

	assert.Equal(t, "155.00", display.Currency(dec("155")))
	assert.Equal(t, "6.452", display.Quantity(dec("6.4516129032258064")))
	assert.True(t, display.RoundCurrency(dec("18.005")).Equal(dec("18.01")))
	assert.True(t, display.RoundQuantity(dec("1.23456")).Equal(dec("1.235")))
}
