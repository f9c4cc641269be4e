package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mrivas/bancario/internal/domain"
	"github.com/mrivas/bancario/internal/infrastructure/metrics"
)

// CustomerUseCase handles customer business logic for the clientes service.
// Every successful mutation publishes a lifecycle event for the cuentas
// service; publication is best-effort and never fails the operation.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	publisher    EventPublisher
}

// NewCustomerUseCase creates a new CustomerUseCase.
func NewCustomerUseCase(customerRepo CustomerRepository, publisher EventPublisher) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
		publisher:    publisher,
	}
}

// CreateCustomerInput represents input for creating a customer.
type CreateCustomerInput struct {
	CustomerID     string
	Name           string
	Gender         string
	Age            int
	Identification string
	Address        string
	Phone          string
	Password       string
	Active         *bool
}

// CreateCustomer creates a customer and publishes a CREATED event.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	return uc.create(ctx, input, nil)
}

// CreateCustomerWithAccounts creates a customer and publishes a CREATED
// event carrying account specs, so the cuentas service opens the accounts.
func (uc *CustomerUseCase) CreateCustomerWithAccounts(ctx context.Context, input CreateCustomerInput, accounts []domain.AccountSpec) (*domain.Customer, error) {
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: cuentas must not be empty", domain.ErrInvalidInput)
	}

	return uc.create(ctx, input, accounts)
}

func (uc *CustomerUseCase) create(ctx context.Context, input CreateCustomerInput, accounts []domain.AccountSpec) (*domain.Customer, error) {
	if input.CustomerID == "" {
		return nil, fmt.Errorf("%w: clienteId is required", domain.ErrInvalidInput)
	}

	if input.Identification == "" {
		return nil, fmt.Errorf("%w: identificacion is required", domain.ErrInvalidInput)
	}

	exists, err := uc.customerRepo.ExistsByCustomerID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, domain.ErrCustomerExists
	}

	exists, err = uc.customerRepo.ExistsByIdentification(ctx, input.Identification)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, domain.ErrCustomerExists
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	now := time.Now().UTC()

	customer := &domain.Customer{
		CustomerID:     input.CustomerID,
		Name:           input.Name,
		Gender:         input.Gender,
		Age:            input.Age,
		Identification: input.Identification,
		Address:        input.Address,
		Phone:          input.Phone,
		Password:       input.Password,
		Active:         active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	metrics.CustomersCreated.Inc()

	uc.publisher.Publish(ctx, &domain.CustomerEvent{
		CustomerID:     customer.CustomerID,
		Name:           customer.Name,
		Identification: customer.Identification,
		EventType:      domain.CustomerEventCreated,
		Accounts:       accounts,
	})

	return customer, nil
}

// GetCustomer retrieves a customer by ID.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return uc.customerRepo.GetByID(ctx, id)
}

// GetCustomerByCustomerID retrieves a customer by business customer ID.
func (uc *CustomerUseCase) GetCustomerByCustomerID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return uc.customerRepo.GetByCustomerID(ctx, customerID)
}

// ListCustomers lists all customers.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return uc.customerRepo.List(ctx)
}

// UpdateCustomerInput represents input for updating a customer. Zero-valued
// fields are left unchanged.
type UpdateCustomerInput struct {
	Name           string
	Gender         string
	Age            int
	Identification string
	Address        string
	Phone          string
	Password       string
	Active         *bool
}

// UpdateCustomer updates a customer and publishes an UPDATED event so the
// cuentas service re-syncs the denormalized owner name.
func (uc *CustomerUseCase) UpdateCustomer(ctx context.Context, id int64, input UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Identification != "" && input.Identification != customer.Identification {
		exists, err := uc.customerRepo.ExistsByIdentification(ctx, input.Identification)
		if err != nil {
			return nil, err
		}

		if exists {
			return nil, domain.ErrCustomerExists
		}

		customer.Identification = input.Identification
	}

	if input.Name != "" {
		customer.Name = input.Name
	}

	if input.Gender != "" {
		customer.Gender = input.Gender
	}

	if input.Age != 0 {
		customer.Age = input.Age
	}

	if input.Address != "" {
		customer.Address = input.Address
	}

	if input.Phone != "" {
		customer.Phone = input.Phone
	}

	if input.Password != "" {
		customer.Password = input.Password
	}

	if input.Active != nil {
		customer.Active = *input.Active
	}

	customer.UpdatedAt = time.Now().UTC()

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, &domain.CustomerEvent{
		CustomerID:     customer.CustomerID,
		Name:           customer.Name,
		Identification: customer.Identification,
		EventType:      domain.CustomerEventUpdated,
	})

	return customer, nil
}

// DeleteCustomer deletes a customer and publishes a DELETED event.
func (uc *CustomerUseCase) DeleteCustomer(ctx context.Context, id int64) error {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.customerRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.publisher.Publish(ctx, &domain.CustomerEvent{
		CustomerID: customer.CustomerID,
		EventType:  domain.CustomerEventDeleted,
	})

	return nil
}
