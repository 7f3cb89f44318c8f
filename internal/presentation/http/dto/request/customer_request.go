package request

// CreateCustomerRequest represents a create customer request
type CreateCustomerRequest struct {
	DNI             string  `json:"dni" binding:"required,len=8,numeric"`
	Name            string  `json:"name" binding:"required,min=2,max=255"`
	PaternalSurname string  `json:"paternal_surname" binding:"required,min=2,max=255"`
	MaternalSurname string  `json:"maternal_surname" binding:"omitempty,max=255"`
	Phone           *string `json:"phone" binding:"omitempty,max=50"`
	Address         *string `json:"address"`
}

// UpdateCustomerRequest represents an update customer request. The DNI is
// immutable once registered.
type UpdateCustomerRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=2,max=255"`
	PaternalSurname *string `json:"paternal_surname" binding:"omitempty,min=2,max=255"`
	MaternalSurname *string `json:"maternal_surname" binding:"omitempty,max=255"`
	Phone           *string `json:"phone" binding:"omitempty,max=50"`
	Address         *string `json:"address"`
}
