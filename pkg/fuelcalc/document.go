package fuelcalc

import (
	"errors"
	"strings"
)

// DocumentType is the fiscal document issued for a sale.
type DocumentType string

const (
	// Boleta is the simplified receipt; no buyer tax data is required.
	Boleta DocumentType = "BOLETA"
	// Factura is the tax invoice; it requires the buyer's RUC and legal name.
	Factura DocumentType = "FACTURA"
)

// ParseDocumentType parses the wire representation of a document type.
func ParseDocumentType(s string) (DocumentType, bool) {
	switch DocumentType(s) {
	case Boleta:
		return Boleta, true
	case Factura:
		return Factura, true
	}
	return Boleta, false
}

// rucLength is the fixed length of a Peruvian taxpayer ID.
const rucLength = 11

// ValidateDocument checks the buyer fields a document type requires.
// BOLETA is always valid. For FACTURA both checks run so every violation
// is reported at once: the joined error matches ErrInvalidRUC and/or
// ErrInvalidLegalName under errors.Is.
func ValidateDocument(doc DocumentType, ruc, legalName string) error {
	if doc != Factura {
		return nil
	}

	var errs []error
	if !isValidRUC(strings.TrimSpace(ruc)) {
		errs = append(errs, ErrInvalidRUC)
	}
	if strings.TrimSpace(legalName) == "" {
		errs = append(errs, ErrInvalidLegalName)
	}
	return errors.Join(errs...)
}

func isValidRUC(ruc string) bool {
	if len(ruc) != rucLength {
		return false
	}
	for _, c := range ruc {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
