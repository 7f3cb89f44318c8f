package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/grifosur/grifo-api/internal/domain/entity"
	"github.com/grifosur/grifo-api/internal/domain/enum"
	"github.com/grifosur/grifo-api/internal/domain/repository"
	"github.com/grifosur/grifo-api/pkg/apperror"
	"github.com/grifosur/grifo-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// memStore backs the in-memory fakes the sale service tests run against
type memStore struct {
	fuels     map[uuid.UUID]*entity.Fuel
	customers map[uuid.UUID]*entity.Customer
	sales     map[uuid.UUID]*entity.Sale
	details   []entity.SaleDetail
	payments  []entity.SalePayment
}

func newMemStore() *memStore {
	return &memStore{
		fuels:     make(map[uuid.UUID]*entity.Fuel),
		customers: make(map[uuid.UUID]*entity.Customer),
		sales:     make(map[uuid.UUID]*entity.Sale),
	}
}

type fakeFuelRepo struct{ store *memStore }

func (r *fakeFuelRepo) Create(ctx context.Context, fuel *entity.Fuel) error {
	if fuel.ID == uuid.Nil {
		fuel.ID = uuid.New()
	}
	r.store.fuels[fuel.ID] = fuel
	return nil
}

func (r *fakeFuelRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Fuel, error) {
	return r.store.fuels[id], nil
}

func (r *fakeFuelRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Fuel, error) {
	var fuels []entity.Fuel
	seen := make(map[uuid.UUID]bool)
	for _, id := range ids {
		if fuel, ok := r.store.fuels[id]; ok && !seen[id] {
			fuels = append(fuels, *fuel)
			seen[id] = true
		}
	}
	return fuels, nil
}

func (r *fakeFuelRepo) List(ctx context.Context) ([]entity.Fuel, error) { return nil, nil }
func (r *fakeFuelRepo) Update(ctx context.Context, fuel *entity.Fuel) error {
	r.store.fuels[fuel.ID] = fuel
	return nil
}
func (r *fakeFuelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.fuels, id)
	return nil
}
func (r *fakeFuelRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.store.fuels)), nil
}

func (r *fakeFuelRepo) AtomicDecrementStock(ctx context.Context, decrements map[uuid.UUID]decimal.Decimal) ([]uuid.UUID, error) {
	var failedIDs []uuid.UUID
	for id, qty := range decrements {
		fuel, ok := r.store.fuels[id]
		if !ok || fuel.StockGallons.LessThan(qty) {
			failedIDs = append(failedIDs, id)
		}
	}
	if len(failedIDs) > 0 {
		return failedIDs, nil
	}
	for id, qty := range decrements {
		r.store.fuels[id].StockGallons = r.store.fuels[id].StockGallons.Sub(qty)
	}
	return nil, nil
}

func (r *fakeFuelRepo) AtomicIncrementStock(ctx context.Context, increments map[uuid.UUID]decimal.Decimal) error {
	for id, qty := range increments {
		if fuel, ok := r.store.fuels[id]; ok {
			fuel.StockGallons = fuel.StockGallons.Add(qty)
		}
	}
	return nil
}

type fakeCustomerRepo struct{ store *memStore }

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.store.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.store.customers[id], nil
}

func (r *fakeCustomerRepo) GetByDNI(ctx context.Context, dni string) (*entity.Customer, error) {
	for _, c := range r.store.customers {
		if c.DNI == dni {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}
func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }
func (r *fakeCustomerRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.store.customers)), nil
}

type fakeSaleRepo struct{ store *memStore }

func (r *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	r.store.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.store.sales[id], nil
}

func (r *fakeSaleRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, ok := r.store.sales[id]
	if !ok {
		return nil, nil
	}
	loaded := *sale
	loaded.Details = nil
	loaded.Payments = nil
	for _, d := range r.store.details {
		if d.SaleID == id {
			loaded.Details = append(loaded.Details, d)
		}
	}
	for _, p := range r.store.payments {
		if p.SaleID == id {
			loaded.Payments = append(loaded.Payments, p)
		}
	}
	return &loaded, nil
}

func (r *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	return nil, 0, nil
}

func (r *fakeSaleRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.SaleStatus) error {
	if sale, ok := r.store.sales[id]; ok {
		sale.Status = status
	}
	return nil
}

type fakeDetailRepo struct{ store *memStore }

func (r *fakeDetailRepo) CreateBatch(ctx context.Context, details []entity.SaleDetail) error {
	r.store.details = append(r.store.details, details...)
	return nil
}

type fakePaymentRepo struct{ store *memStore }

func (r *fakePaymentRepo) CreateBatch(ctx context.Context, payments []entity.SalePayment) error {
	r.store.payments = append(r.store.payments, payments...)
	return nil
}

type saleFixture struct {
	store    *memStore
	service  *SaleService
	fuelRepo *fakeFuelRepo
	user     uuid.UUID
	customer uuid.UUID
	diesel   uuid.UUID
}

func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()

	store := newMemStore()
	fuelRepo := &fakeFuelRepo{store: store}
	customerRepo := &fakeCustomerRepo{store: store}
	saleRepo := &fakeSaleRepo{store: store}

	svc := NewSaleService(saleRepo, &fakeDetailRepo{store: store}, &fakePaymentRepo{store: store}, fuelRepo, customerRepo)

	diesel := &entity.Fuel{
		Name:           "Diesel B5",
		PricePerGallon: dec("15.50"),
		StockGallons:   dec("100"),
	}
	require.NoError(t, fuelRepo.Create(context.Background(), diesel))

	customer := &entity.Customer{
		DNI:             "45678912",
		Name:            "Carlos",
		PaternalSurname: "Quispe",
	}
	require.NoError(t, customerRepo.Create(context.Background(), customer))

	return &saleFixture{
		store:    store,
		service:  svc,
		fuelRepo: fuelRepo,
		user:     uuid.New(),
		customer: customer.ID,
		diesel:   diesel.ID,
	}
}

func (f *saleFixture) stock() decimal.Decimal {
	return f.store.fuels[f.diesel].StockGallons
}

func TestCreateSaleBoletaCashWithChange(t *testing.T) {
	f := newSaleFixture(t)
	quantity := dec("2")

	sale, err := f.service.CreateSale(context.Background(), &CreateSaleInput{
		UserID:       f.user,
		CustomerID:   f.customer,
		DocumentType: "BOLETA",
		Items: []SaleItemInput{
			{FuelID: f.diesel, Quantity: &quantity, Unit: "GALONES"},
		},
		Payments: []PaymentInput{
			{Method: "EFECTIVO", AmountReceived: dec("50.00")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, sale)

	// 2 gal x 15.50 = 31.00; BOLETA carries no itemized tax
	assert.True(t, sale.Total.Equal(dec("31.00")), "total = %s", sale.Total)
	assert.True(t, sale.Subtotal.Equal(dec("31.00")))
	assert.True(t, sale.IGV.IsZero())
	assert.Nil(t, sale.RUC)
	assert.Equal(t, enum.SaleStatusCompleted, sale.Status)

	require.Len(t, sale.Details, 1)
	assert.True(t, sale.Details[0].QuantityGallons.Equal(dec("2")))
	assert.True(t, sale.Details[0].Subtotal.Equal(dec("31.00")))

	require.Len(t, sale.Payments, 1)
	assert.True(t, sale.Payments[0].ChangeDue.Equal(dec("19.00")))

	assert.True(t, f.stock().Equal(dec("98")), "stock = %s", f.stock())
}

func TestCreateSaleFacturaSplitsIGV(t *testing.T) {
	f := newSaleFixture(t)
	amount := dec("118.00")

	sale, err := f.service.CreateSale(context.Background(), &CreateSaleInput{
		UserID:       f.user,
		CustomerID:   f.customer,
		DocumentType: "FACTURA",
		RUC:          "20123456789",
		LegalName:    "Transportes Andinos SAC",
		Items: []SaleItemInput{
			{FuelID: f.diesel, Amount: &amount},
		},
		Payments: []PaymentInput{
			{Method: "TRANSFERENCIA", AmountReceived: dec("118.00")},
		},
	})
	require.NoError(t, err)

	// 118 inclusive of 18% IGV: subtotal 100, tax 18
	assert.True(t, sale.Subtotal.Equal(dec("100.00")), "subtotal = %s", sale.Subtotal)
	assert.True(t, sale.IGV.Equal(dec("18.00")), "igv = %s", sale.IGV)
	assert.True(t, sale.Total.Equal(dec("118.00")))

	require.NotNil(t, sale.RUC)
	assert.Equal(t, "20123456789", *sale.RUC)
	require.NotNil(t, sale.LegalName)
	assert.Equal(t, "Transportes Andinos SAC", *sale.LegalName)

	// Amount mode: the paid amount is authoritative, quantity is derived
	require.Len(t, sale.Details, 1)
	assert.True(t, sale.Details[0].Subtotal.Equal(dec("118.00")))
	assert.True(t, sale.Details[0].QuantityGallons.Equal(dec("7.613")), "gallons = %s", sale.Details[0].QuantityGallons)
}

func TestCreateSaleQuantityInLiters(t *testing.T) {
	f := newSaleFixture(t)
	liters := dec("10")

	sale, err := f.service.CreateSale(context.Background(), &CreateSaleInput{
		UserID:       f.user,
		CustomerID:   f.customer,
		DocumentType: "BOLETA",
		Items: []SaleItemInput{
			{FuelID: f.diesel, Quantity: &liters, Unit: "LITROS"},
		},
		Payments: []PaymentInput{
			{Method: "YAPE", AmountReceived: dec("40.95")},
		},
	})
	require.NoError(t, err)

	// 10 L / 3.785 = 2.642 gal; 2.642007... x 15.50 = 40.95
	require.Len(t, sale.Details, 1)
	assert.True(t, sale.Details[0].QuantityGallons.Equal(dec("2.642")), "gallons = %s", sale.Details[0].QuantityGallons)
	assert.True(t, sale.Total.Equal(dec("40.95")), "total = %s", sale.Total)
}

func TestCreateSaleFacturaRequiresRUC(t *testing.T) {
	f := newSaleFixture(t)
	quantity := dec("1")

	_, err := f.service.CreateSale(context.Background(), &CreateSaleInput{
		UserID:       f.user,
		CustomerID:   f.customer,
		DocumentType: "FACTURA",
		RUC:          "123",
		LegalName:    "",
		Items: []SaleItemInput{
			{FuelID: f.diesel, Quantity: &quantity},
		},
		Payments: []PaymentInput{
			{Method: "EFECTIVO", AmountReceived: dec("20.00")},
		},
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 2)
	assert.Equal(t, "ruc", appErr.Errors[0].Field)
	assert.Equal(t, "legal_name", appErr.Errors[1].Field)

	// Nothing persisted, stock untouched
	assert.Empty(t, f.store.sales)
	assert.True(t, f.stock().Equal(dec("100")))
}

func TestCreateSaleInsufficientPayment(t *testing.T) {
	f := newSaleFixture(t)
	quantity := dec("2")

	_, err := f.service.CreateSale(context.Background(), &CreateSaleInput{
		UserID:       f.user,
		CustomerID:   f.customer,
		DocumentType: "BOLETA",
		Items: []SaleItemInput{
			{FuelID: f.diesel, Quantity: &quantity},
		},
		Payments: []PaymentInput{
			{Method: "EFECTIVO", AmountReceived: dec("30.00")},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient payment")
	assert.True(t, f.stock().Equal(dec("100")))
}

func TestCreateSaleChangeRequiresCash(t *testing.T) {
	f := newSaleFixture(t)
	quantity := dec("2")

	_, err := f.service.CreateSale(context.Background(), &CreateSaleInput{
		UserID:       f.user,
		CustomerID:   f.customer,
		DocumentType: "BOLETA",
		Items: []SaleItemInput{
			{FuelID: f.diesel, Quantity: &quantity},
		},
		Payments: []PaymentInput{
			{Method: "TARJETA", AmountReceived: dec("50.00")},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cash")
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	f := newSaleFixture(t)
	quantity := dec("500")

	_, err := f.service.CreateSale(context.Background(), &CreateSaleInput{
		UserID:       f.user,
		CustomerID:   f.customer,
		DocumentType: "BOLETA",
		Items: []SaleItemInput{
			{FuelID: f.diesel, Quantity: &quantity},
		},
		Payments: []PaymentInput{
			{Method: "EFECTIVO", AmountReceived: dec("8000.00")},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient stock")
	assert.Contains(t, err.Error(), "Diesel B5")
	assert.True(t, f.stock().Equal(dec("100")))
	assert.Empty(t, f.store.sales)
}

func TestCreateSaleRejectsAmountAndQuantityTogether(t *testing.T) {
	f := newSaleFixture(t)
	amount := dec("31.00")
	quantity := dec("2")

	_, err := f.service.CreateSale(context.Background(), &CreateSaleInput{
		UserID:       f.user,
		CustomerID:   f.customer,
		DocumentType: "BOLETA",
		Items: []SaleItemInput{
			{FuelID: f.diesel, Amount: &amount, Quantity: &quantity},
		},
		Payments: []PaymentInput{
			{Method: "EFECTIVO", AmountReceived: dec("31.00")},
		},
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
}

func TestCancelSaleRestoresStock(t *testing.T) {
	f := newSaleFixture(t)
	quantity := dec("3")

	sale, err := f.service.CreateSale(context.Background(), &CreateSaleInput{
		UserID:       f.user,
		CustomerID:   f.customer,
		DocumentType: "BOLETA",
		Items: []SaleItemInput{
			{FuelID: f.diesel, Quantity: &quantity},
		},
		Payments: []PaymentInput{
			{Method: "EFECTIVO", AmountReceived: dec("46.50")},
		},
	})
	require.NoError(t, err)
	require.True(t, f.stock().Equal(dec("97")))

	require.NoError(t, f.service.CancelSale(context.Background(), f.user, false, sale.ID))
	assert.True(t, f.stock().Equal(dec("100")))

	cancelled, err := f.service.GetSale(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.SaleStatusCancelled, cancelled.Status)

	// Cancelling again must not restore stock twice
	err = f.service.CancelSale(context.Background(), f.user, false, sale.ID)
	require.Error(t, err)
	assert.True(t, f.stock().Equal(dec("100")))
}

func TestCancelSaleOwnershipCheck(t *testing.T) {
	f := newSaleFixture(t)
	quantity := dec("1")

	sale, err := f.service.CreateSale(context.Background(), &CreateSaleInput{
		UserID:       f.user,
		CustomerID:   f.customer,
		DocumentType: "BOLETA",
		Items: []SaleItemInput{
			{FuelID: f.diesel, Quantity: &quantity},
		},
		Payments: []PaymentInput{
			{Method: "EFECTIVO", AmountReceived: dec("15.50")},
		},
	})
	require.NoError(t, err)

	otherUser := uuid.New()
	err = f.service.CancelSale(context.Background(), otherUser, false, sale.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	// An admin can cancel another employee's sale
	require.NoError(t, f.service.CancelSale(context.Background(), otherUser, true, sale.ID))
}
