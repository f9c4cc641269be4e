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

func TestAccountUseCase_CreateAccount(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateAccountInput
		expectedErr error
	}{
		{
			name: "valid account",
			input: usecase.CreateAccountInput{
				Number:         "478758",
				Type:           "ahorro",
				OpeningBalance: decimal.RequireFromString("2000"),
				CustomerID:     "cli-1",
				CustomerName:   "Jose Lema",
			},
		},
		{
			name: "missing number",
			input: usecase.CreateAccountInput{
				CustomerID: "cli-1",
			},
			expectedErr: domain.ErrInvalidInput,
		},
		{
			name: "missing customer",
			input: usecase.CreateAccountInput{
				Number: "478758",
			},
			expectedErr: domain.ErrInvalidInput,
		},
		{
			name: "negative opening balance",
			input: usecase.CreateAccountInput{
				Number:         "478758",
				OpeningBalance: decimal.RequireFromString("-1"),
				CustomerID:     "cli-1",
			},
			expectedErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accountRepo := mocks.NewMockAccountRepository()
			uc := usecase.NewAccountUseCase(accountRepo)

			account, err := uc.CreateAccount(context.Background(), tt.input)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if account.ID == 0 {
				t.Fatal("expected an assigned ID")
			}

			if account.Type != "AHORRO" {
				t.Fatalf("type = %q, want normalized %q", account.Type, "AHORRO")
			}

			if !account.CurrentBalance.Equal(account.OpeningBalance) {
				t.Fatalf("current balance %s must start at opening balance %s", account.CurrentBalance, account.OpeningBalance)
			}

			if !account.Active {
				t.Fatal("active must default to true")
			}
		})
	}
}

func TestAccountUseCase_CreateAccount_Duplicate(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepository()
	uc := usecase.NewAccountUseCase(accountRepo)

	input := usecase.CreateAccountInput{
		Number:     "478758",
		Type:       "AHORRO",
		CustomerID: "cli-1",
	}

	if _, err := uc.CreateAccount(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.CreateAccount(context.Background(), input); !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAccountUseCase_UpdateAccount(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepository()
	uc := usecase.NewAccountUseCase(accountRepo)

	account := accountRepo.Seed(&domain.Account{
		Number:         "478758",
		Type:           "AHORRO",
		OpeningBalance: decimal.RequireFromString("2000"),
		CurrentBalance: decimal.RequireFromString("1500"),
		Active:         true,
		CustomerID:     "cli-1",
	})

	inactive := false

	updated, err := uc.UpdateAccount(context.Background(), account.ID, usecase.UpdateAccountInput{
		Type:   "corriente",
		Active: &inactive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Type != "CORRIENTE" {
		t.Fatalf("type = %q, want %q", updated.Type, "CORRIENTE")
	}

	if updated.Active {
		t.Fatal("expected account to be inactive")
	}

	// Balances are immutable through updates.
	if !updated.CurrentBalance.Equal(decimal.RequireFromString("1500")) {
		t.Fatalf("balance changed to %s", updated.CurrentBalance)
	}

	if _, err := uc.UpdateAccount(context.Background(), 999, usecase.UpdateAccountInput{}); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
