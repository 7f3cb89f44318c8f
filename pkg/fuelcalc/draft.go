package fuelcalc

import "github.com/shopspring/decimal"

// Draft holds the pending input of a sale-entry session and its derived
// result. It is the AMOUNT_MODE / QUANTITY_MODE toggle made explicit:
// switching modes discards the other mode's value and the stale result,
// so no total is shown until a fresh value is entered and recalculated.
// A Draft is not safe for concurrent use; each session owns its own.
type Draft struct {
	input  Input
	result *Result
}

// UseAmount switches the draft to amount-driven mode.
func (d *Draft) UseAmount(amount decimal.Decimal) {
	d.input = AmountInput{Amount: amount}
	d.result = nil
}

// UseQuantity switches the draft to quantity-driven mode.
func (d *Draft) UseQuantity(quantity decimal.Decimal, unit Unit) {
	d.input = QuantityInput{Quantity: quantity, Unit: unit}
	d.result = nil
}

// Clear resets the draft to its empty state.
func (d *Draft) Clear() {
	d.input = nil
	d.result = nil
}

// Input returns the pending input, or nil when the draft is empty.
func (d *Draft) Input() Input {
	return d.input
}

// Result returns the last computed result, or nil when none is current.
func (d *Draft) Result() *Result {
	return d.result
}

// Recalculate recomputes the result from the pending input against the
// given unit price. With no pending input it fails with ErrNoPendingInput.
func (d *Draft) Recalculate(unitPrice decimal.Decimal) (*Result, error) {
	if d.input == nil {
		return nil, ErrNoPendingInput
	}
	res, err := Compute(unitPrice, d.input)
	if err != nil {
		return nil, err
	}
	d.result = res
	return res, nil
}
