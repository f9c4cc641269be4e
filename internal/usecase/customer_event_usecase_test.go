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

func TestCustomerEventUseCase_Apply_Created(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepository()
	uc := usecase.NewCustomerEventUseCase(accountRepo)

	event := &domain.CustomerEvent{
		CustomerID: "cli-1",
		Name:       "Jose Lema",
		EventType:  domain.CustomerEventCreated,
		Accounts: []domain.AccountSpec{
			{Number: "478758", Type: "ahorro", OpeningBalance: decimal.RequireFromString("2000")},
			{Number: "585545", Type: "corriente", OpeningBalance: decimal.RequireFromString("1000")},
		},
	}

	if err := uc.Apply(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	accounts, _ := accountRepo.ListByCustomer(context.Background(), "cli-1")
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}

	for _, account := range accounts {
		if !account.Active {
			t.Fatalf("account %s must start active", account.Number)
		}

		if !account.CurrentBalance.Equal(account.OpeningBalance) {
			t.Fatalf("account %s current balance %s != opening %s", account.Number, account.CurrentBalance, account.OpeningBalance)
		}

		if account.CustomerName != "Jose Lema" {
			t.Fatalf("account %s owner name = %q", account.Number, account.CustomerName)
		}
	}
}

func TestCustomerEventUseCase_Apply_CreatedRedelivery(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepository()
	uc := usecase.NewCustomerEventUseCase(accountRepo)

	event := &domain.CustomerEvent{
		CustomerID: "cli-1",
		Name:       "Jose Lema",
		EventType:  domain.CustomerEventCreated,
		Accounts: []domain.AccountSpec{
			{Number: "478758", Type: "AHORRO", OpeningBalance: decimal.RequireFromString("2000")},
		},
	}

	if err := uc.Apply(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Redelivering the same event must not open a second account.
	if err := uc.Apply(context.Background(), event); err != nil {
		t.Fatalf("redelivery must be harmless, got %v", err)
	}

	accounts, _ := accountRepo.ListByCustomer(context.Background(), "cli-1")
	if len(accounts) != 1 {
		t.Fatalf("expected 1 account after redelivery, got %d", len(accounts))
	}
}

func TestCustomerEventUseCase_Apply_CreatedPartialFailure(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepository()
	uc := usecase.NewCustomerEventUseCase(accountRepo)

	event := &domain.CustomerEvent{
		CustomerID: "cli-1",
		Name:       "Jose Lema",
		EventType:  domain.CustomerEventCreated,
		Accounts: []domain.AccountSpec{
			{Number: "bad", Type: "AHORRO", OpeningBalance: decimal.RequireFromString("-1")},
			{Number: "478758", Type: "AHORRO", OpeningBalance: decimal.RequireFromString("2000")},
		},
	}

	err := uc.Apply(context.Background(), event)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for the bad spec, got %v", err)
	}

	// The valid account still opens.
	accounts, _ := accountRepo.ListByCustomer(context.Background(), "cli-1")
	if len(accounts) != 1 || accounts[0].Number != "478758" {
		t.Fatalf("expected the valid account to open, got %+v", accounts)
	}
}

func TestCustomerEventUseCase_Apply_Updated(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepository()
	uc := usecase.NewCustomerEventUseCase(accountRepo)

	accountRepo.Seed(&domain.Account{Number: "478758", CustomerID: "cli-1", CustomerName: "Jose Lema", Active: true})
	accountRepo.Seed(&domain.Account{Number: "585545", CustomerID: "cli-1", CustomerName: "Jose Lema", Active: true})
	other := accountRepo.Seed(&domain.Account{Number: "225487", CustomerID: "cli-2", CustomerName: "Marianela Montalvo", Active: true})

	err := uc.Apply(context.Background(), &domain.CustomerEvent{
		CustomerID: "cli-1",
		Name:       "Jose Lema Updated",
		EventType:  domain.CustomerEventUpdated,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	accounts, _ := accountRepo.ListByCustomer(context.Background(), "cli-1")
	for _, account := range accounts {
		if account.CustomerName != "Jose Lema Updated" {
			t.Fatalf("account %s owner name = %q", account.Number, account.CustomerName)
		}
	}

	if other.CustomerName != "Marianela Montalvo" {
		t.Fatalf("other customer's accounts must be untouched, got %q", other.CustomerName)
	}
}

func TestCustomerEventUseCase_Apply_Deleted(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepository()
	uc := usecase.NewCustomerEventUseCase(accountRepo)

	accountRepo.Seed(&domain.Account{Number: "478758", CustomerID: "cli-1", Active: true})
	accountRepo.Seed(&domain.Account{Number: "585545", CustomerID: "cli-1", Active: true})

	err := uc.Apply(context.Background(), &domain.CustomerEvent{
		CustomerID: "cli-1",
		EventType:  domain.CustomerEventDeleted,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	accounts, _ := accountRepo.ListByCustomer(context.Background(), "cli-1")
	if len(accounts) != 2 {
		t.Fatalf("accounts must survive customer deletion, got %d", len(accounts))
	}

	for _, account := range accounts {
		if account.Active {
			t.Fatalf("account %s must be deactivated", account.Number)
		}
	}
}

func TestCustomerEventUseCase_Apply_UnknownType(t *testing.T) {
	uc := usecase.NewCustomerEventUseCase(mocks.NewMockAccountRepository())

	err := uc.Apply(context.Background(), &domain.CustomerEvent{
		CustomerID: "cli-1",
		EventType:  "ARCHIVED",
	})
	if !errors.Is(err, domain.ErrUnknownEventType) {
		t.Fatalf("expected ErrUnknownEventType, got %v", err)
	}
}
