package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mrivas/bancario/internal/domain"
	"github.com/mrivas/bancario/internal/usecase"
	"github.com/mrivas/bancario/internal/usecase/mocks"
)

func newCustomerFixture() (*usecase.CustomerUseCase, *mocks.MockCustomerRepository, *mocks.MockEventPublisher) {
	customerRepo := mocks.NewMockCustomerRepository()
	publisher := &mocks.MockEventPublisher{}

	return usecase.NewCustomerUseCase(customerRepo, publisher), customerRepo, publisher
}

func validCustomerInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		CustomerID:     "cli-1",
		Name:           "Jose Lema",
		Gender:         "M",
		Age:            34,
		Identification: "098254785",
		Address:        "Otavalo sn y principal",
		Phone:          "098254785",
		Password:       "1234",
	}
}

func TestCustomerUseCase_CreateCustomer(t *testing.T) {
	uc, _, publisher := newCustomerFixture()

	customer, err := uc.CreateCustomer(context.Background(), validCustomerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if customer.ID == 0 {
		t.Fatal("expected an assigned ID")
	}

	if !customer.Active {
		t.Fatal("active must default to true")
	}

	event := publisher.Last()
	if event == nil {
		t.Fatal("expected a published event")
	}

	if event.EventType != domain.CustomerEventCreated {
		t.Fatalf("event type = %q, want %q", event.EventType, domain.CustomerEventCreated)
	}

	if event.CustomerID != "cli-1" || event.Name != "Jose Lema" {
		t.Fatalf("event payload = %+v", event)
	}

	if len(event.Accounts) != 0 {
		t.Fatalf("plain create must not carry account specs, got %d", len(event.Accounts))
	}
}

func TestCustomerUseCase_CreateCustomer_Duplicates(t *testing.T) {
	uc, _, _ := newCustomerFixture()

	if _, err := uc.CreateCustomer(context.Background(), validCustomerInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same business ID.
	dup := validCustomerInput()
	dup.Identification = "other-ident"
	if _, err := uc.CreateCustomer(context.Background(), dup); !errors.Is(err, domain.ErrCustomerExists) {
		t.Fatalf("expected ErrCustomerExists, got %v", err)
	}

	// Same identification.
	dup = validCustomerInput()
	dup.CustomerID = "cli-2"
	if _, err := uc.CreateCustomer(context.Background(), dup); !errors.Is(err, domain.ErrCustomerExists) {
		t.Fatalf("expected ErrCustomerExists, got %v", err)
	}
}

func TestCustomerUseCase_CreateCustomerWithAccounts(t *testing.T) {
	uc, _, publisher := newCustomerFixture()

	specs := []domain.AccountSpec{
		{Number: "478758", Type: "AHORRO", OpeningBalance: decimal.RequireFromString("2000")},
		{Number: "225487", Type: "CORRIENTE", OpeningBalance: decimal.RequireFromString("100")},
	}

	if _, err := uc.CreateCustomerWithAccounts(context.Background(), validCustomerInput(), specs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	event := publisher.Last()
	if event == nil || event.EventType != domain.CustomerEventCreated {
		t.Fatalf("expected CREATED event, got %+v", event)
	}

	if len(event.Accounts) != 2 {
		t.Fatalf("expected 2 account specs on the event, got %d", len(event.Accounts))
	}

	// Empty spec list is invalid for this endpoint.
	input := validCustomerInput()
	input.CustomerID = "cli-2"
	input.Identification = "other"
	if _, err := uc.CreateCustomerWithAccounts(context.Background(), input, nil); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCustomerUseCase_UpdateCustomer(t *testing.T) {
	uc, _, publisher := newCustomerFixture()

	customer, err := uc.CreateCustomer(context.Background(), validCustomerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := uc.UpdateCustomer(context.Background(), customer.ID, usecase.UpdateCustomerInput{
		Name: "Jose Lema Updated",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "Jose Lema Updated" {
		t.Fatalf("name = %q", updated.Name)
	}

	// Untouched fields keep their values.
	if updated.Identification != "098254785" {
		t.Fatalf("identification changed to %q", updated.Identification)
	}

	event := publisher.Last()
	if event == nil || event.EventType != domain.CustomerEventUpdated {
		t.Fatalf("expected UPDATED event, got %+v", event)
	}

	if event.Name != "Jose Lema Updated" {
		t.Fatalf("event name = %q", event.Name)
	}
}

func TestCustomerUseCase_DeleteCustomer(t *testing.T) {
	uc, customerRepo, publisher := newCustomerFixture()

	customer, err := uc.CreateCustomer(context.Background(), validCustomerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.DeleteCustomer(context.Background(), customer.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := customerRepo.GetByID(context.Background(), customer.ID); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected customer gone, got %v", err)
	}

	event := publisher.Last()
	if event == nil || event.EventType != domain.CustomerEventDeleted {
		t.Fatalf("expected DELETED event, got %+v", event)
	}

	if event.CustomerID != "cli-1" {
		t.Fatalf("event customer ID = %q", event.CustomerID)
	}

	if err := uc.DeleteCustomer(context.Background(), 999); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}
