package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/grifosur/grifo-api/internal/domain/entity"
	"github.com/grifosur/grifo-api/internal/domain/repository"
	"github.com/grifosur/grifo-api/pkg/apperror"
	"github.com/grifosur/grifo-api/pkg/pagination"
)

// CustomerService handles customer registry operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	DNI             string
	Name            string
	PaternalSurname string
	MaternalSurname string
	Phone           *string
	Address         *string
}

// CreateCustomer registers a new customer keyed by DNI
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	existing, err := s.customerRepo.GetByDNI(ctx, input.DNI)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A customer with this DNI already exists")
	}

	customer := &entity.Customer{
		DNI:             input.DNI,
		Name:            input.Name,
		PaternalSurname: input.PaternalSurname,
		MaternalSurname: input.MaternalSurname,
		Phone:           input.Phone,
		Address:         input.Address,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// GetCustomerByDNI retrieves a customer by DNI
func (s *CustomerService) GetCustomerByDNI(ctx context.Context, dni string) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByDNI(ctx, dni)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with optional search over DNI and names
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Name            *string
	PaternalSurname *string
	MaternalSurname *string
	Phone           *string
	Address         *string
}

// UpdateCustomer updates a customer's details. The DNI is immutable.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.PaternalSurname != nil {
		customer.PaternalSurname = *input.PaternalSurname
	}
	if input.MaternalSurname != nil {
		customer.MaternalSurname = *input.MaternalSurname
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Address != nil {
		customer.Address = input.Address
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer from the registry
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}
