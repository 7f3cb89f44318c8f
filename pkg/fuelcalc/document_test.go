package fuelcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDocumentBoleta(t *testing.T) {
	assert.NoError(t, ValidateDocument(Boleta, "", ""))
	assert.NoError(t, ValidateDocument(Boleta, "whatever", "ignored"))
}

func TestValidateDocumentFactura(t *testing.T) {
	assert.NoError(t, ValidateDocument(Factura, "12345678901", "Acme SAC"))

	// Surrounding whitespace is trimmed before checking.
	assert.NoError(t, ValidateDocument(Factura, " 12345678901 ", "  Acme SAC  "))

	err := ValidateDocument(Factura, "1234", "Acme SAC")
	assert.ErrorIs(t, err, ErrInvalidRUC)
	assert.NotErrorIs(t, err, ErrInvalidLegalName)

	err = ValidateDocument(Factura, "12345678901", "")
	assert.ErrorIs(t, err, ErrInvalidLegalName)
	assert.NotErrorIs(t, err, ErrInvalidRUC)

	err = ValidateDocument(Factura, "123456789ab", "Acme SAC")
	assert.ErrorIs(t, err, ErrInvalidRUC)
}

func TestValidateDocumentReportsAllViolations(t *testing.T) {
	err := ValidateDocument(Factura, "12", "   ")
	assert.ErrorIs(t, err, ErrInvalidRUC)
	assert.ErrorIs(t, err, ErrInvalidLegalName)
}

func TestParseDocumentType(t *testing.T) {
	doc, ok := ParseDocumentType("BOLETA")
	assert.True(t, ok)
	assert.Equal(t, Boleta, doc)

	doc, ok = ParseDocumentType("FACTURA")
	assert.True(t, ok)
	assert.Equal(t, Factura, doc)

	_, ok = ParseDocumentType("TICKET")
	assert.False(t, ok)
}
