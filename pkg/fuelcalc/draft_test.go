package fuelcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftModeSwitchDiscardsResult(t *testing.T) {
	var d Draft
	price := dec("15.50")

	d.UseQuantity(dec("10"), UnitGallon)
	res, err := d.Recalculate(price)
	require.NoError(t, err)
	assert.True(t, res.Amount.Equal(dec("155.00")))
	assert.NotNil(t, d.Result())

	// Switching to amount mode clears the prior result; no total is
	// available until a fresh amount is entered and recalculated.
	d.UseAmount(dec("100"))
	assert.Nil(t, d.Result())

	res, err = d.Recalculate(price)
	require.NoError(t, err)
	assert.True(t, res.Amount.Equal(dec("100")))
}

func TestDraftEmpty(t *testing.T) {
	var d Draft
	assert.Nil(t, d.Input())
	assert.Nil(t, d.Result())

	_, err := d.Recalculate(dec("15.50"))
	assert.ErrorIs(t, err, ErrNoPendingInput)
}

func TestDraftClear(t *testing.T) {
	var d Draft
	d.UseAmount(dec("50"))
	_, err := d.Recalculate(dec("15.50"))
	require.NoError(t, err)

	d.Clear()
	assert.Nil(t, d.Input())
	assert.Nil(t, d.Result())
}

func TestDraftRecalculateKeepsInputOnFailure(t *testing.T) {
	var d Draft
	d.UseAmount(dec("50"))

	// A product without a price fails but the pending entry survives.
	_, err := d.Recalculate(dec("0"))
	assert.ErrorIs(t, err, ErrInvalidProduct)
	assert.NotNil(t, d.Input())
	assert.Nil(t, d.Result())
}
