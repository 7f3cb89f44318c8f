package enum

// DocumentType is the fiscal document issued for a sale, stored and
// serialized with its SUNAT wire name.
type DocumentType string

const (
	DocumentBoleta  DocumentType = "BOLETA"
	DocumentFactura DocumentType = "FACTURA"
)

// Valid reports whether the value is a known document type
func (d DocumentType) Valid() bool {
	return d == DocumentBoleta || d == DocumentFactura
}

// RequiresTaxData reports whether the document needs buyer RUC and legal name
func (d DocumentType) RequiresTaxData() bool {
	return d == DocumentFactura
}
