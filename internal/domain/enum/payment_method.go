package enum

// PaymentMethod is how a sale was paid
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "EFECTIVO"
	PaymentCard     PaymentMethod = "TARJETA"
	PaymentYape     PaymentMethod = "YAPE"
	PaymentPlin     PaymentMethod = "PLIN"
	PaymentTransfer PaymentMethod = "TRANSFERENCIA"
)

// Valid reports whether the value is a known payment method
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentYape, PaymentPlin, PaymentTransfer:
		return true
	}
	return false
}

// IsCash reports whether the method involves physical change
func (m PaymentMethod) IsCash() bool {
	return m == PaymentCash
}
