// Package fuelcalc implements the fuel-sale calculator: conversions between
// gallons and liters, quantity/amount derivation, IGV totals, change due and
// document-type validation. Every function is pure; arithmetic is done with
// shopspring decimals so chained operations keep full precision and rounding
// only happens at the display boundary.
package fuelcalc

import (
	"errors"

	"github.com/shopspring/decimal"
)

// LitersPerGallon is the conversion constant used throughout the station
// (1 gallon = 3.785 liters).
var LitersPerGallon = decimal.RequireFromString("3.785")

// IGVRate is the Peruvian value-added tax rate (18%), embedded in
// tax-inclusive FACTURA totals.
var IGVRate = decimal.RequireFromString("0.18")

// igvFactor divides a tax-inclusive total back into its subtotal (1 + IGVRate).
var igvFactor = decimal.RequireFromString("1.18")

// Calculator failure conditions. All of them are local, recoverable
// validation errors that callers map to field-level messages.
var (
	ErrInvalidProduct   = errors.New("unit price must be greater than zero")
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrInvalidRUC       = errors.New("RUC must be exactly 11 digits")
	ErrInvalidLegalName = errors.New("legal name is required")
	ErrNoPendingInput   = errors.New("no pending sale input")
)

// Unit is the unit of measure a quantity was entered in.
type Unit int

const (
	UnitGallon Unit = iota
	UnitLiter
)

func (u Unit) String() string {
	if u == UnitLiter {
		return "LITROS"
	}
	return "GALONES"
}

// ParseUnit parses the wire representation of a unit.
func ParseUnit(s string) (Unit, bool) {
	switch s {
	case "GALONES", "GALON":
		return UnitGallon, true
	case "LITROS", "LITRO":
		return UnitLiter, true
	}
	return UnitGallon, false
}

// Input is the tagged union of the two entry modes. Exactly one mode is
// active per computation; there is no implicit flag deciding which field
// is authoritative.
type Input interface {
	isInput()
}

// AmountInput is the amount-driven mode: the customer names a currency
// amount and the quantity is derived.
type AmountInput struct {
	Amount decimal.Decimal
}

// QuantityInput is the quantity-driven mode: the customer names a quantity
// in gallons or liters and the charge is derived.
type QuantityInput struct {
	Quantity decimal.Decimal
	Unit     Unit
}

func (AmountInput) isInput()   {}
func (QuantityInput) isInput() {}

// Result is the outcome of a quantity/amount computation. Values are kept
// at full precision; use DisplayPolicy for rendering.
type Result struct {
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
	Gallons   decimal.Decimal `json:"gallons"`
	Liters    decimal.Decimal `json:"liters"`
}

// GallonsToLiters converts gallons to liters.
func GallonsToLiters(gallons decimal.Decimal) decimal.Decimal {
	return gallons.Mul(LitersPerGallon)
}

// LitersToGallons converts liters to gallons.
func LitersToGallons(liters decimal.Decimal) decimal.Decimal {
	return liters.Div(LitersPerGallon)
}

// Compute dispatches on the active input mode.
func Compute(unitPrice decimal.Decimal, in Input) (*Result, error) {
	switch v := in.(type) {
	case AmountInput:
		return ComputeByAmount(unitPrice, v.Amount)
	case QuantityInput:
		return ComputeByQuantity(unitPrice, v.Quantity, v.Unit)
	default:
		return nil, ErrNoPendingInput
	}
}

// ComputeByQuantity derives the charge from a quantity entered in gallons
// or liters. unitPrice is the price per gallon.
func ComputeByQuantity(unitPrice, quantity decimal.Decimal, unit Unit) (*Result, error) {
	if !unitPrice.IsPositive() {
		return nil, ErrInvalidProduct
	}
	if !quantity.IsPositive() {
		return nil, ErrInvalidQuantity
	}

	gallons := quantity
	liters := GallonsToLiters(quantity)
	if unit == UnitLiter {
		gallons = LitersToGallons(quantity)
		liters = quantity
	}

	return &Result{
		UnitPrice: unitPrice,
		Amount:    unitPrice.Mul(gallons),
		Gallons:   gallons,
		Liters:    liters,
	}, nil
}

// ComputeByAmount derives the quantity from a currency amount. The amount
// the customer pays is authoritative and is returned exactly as given.
func ComputeByAmount(unitPrice, amount decimal.Decimal) (*Result, error) {
	if !unitPrice.IsPositive() {
		return nil, ErrInvalidProduct
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	gallons := amount.Div(unitPrice)
	return &Result{
		UnitPrice: unitPrice,
		Amount:    amount,
		Gallons:   gallons,
		Liters:    GallonsToLiters(gallons),
	}, nil
}

// Totals is the tax breakdown for a sale total.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	IGV      decimal.Decimal `json:"igv"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals splits a tax-inclusive total into subtotal and IGV.
// BOLETA carries no itemized tax; FACTURA embeds 18% IGV in the total.
func ComputeTotals(total decimal.Decimal, doc DocumentType) Totals {
	if doc == Factura {
		subtotal := total.Div(igvFactor)
		return Totals{
			Subtotal: subtotal,
			IGV:      total.Sub(subtotal),
			Total:    total,
		}
	}
	return Totals{
		Subtotal: total,
		IGV:      decimal.Zero,
		Total:    total,
	}
}

// ComputeChange returns amountReceived - total. A negative result means the
// payment is insufficient; it is never clamped here so the caller can reject
// the sale before submission.
func ComputeChange(total, amountReceived decimal.Decimal) decimal.Decimal {
	return amountReceived.Sub(total)
}
