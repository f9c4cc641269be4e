package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mrivas/bancario/internal/domain"
	"github.com/mrivas/bancario/internal/infrastructure/metrics"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Number         string
	Type           string
	OpeningBalance decimal.Decimal
	Active         *bool
	CustomerID     string
	CustomerName   string
}

// CreateAccount creates a new account. The current balance starts at the
// opening balance and the active flag defaults to true when unset.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if input.Number == "" {
		return nil, fmt.Errorf("%w: numeroCuenta is required", domain.ErrInvalidInput)
	}

	if input.CustomerID == "" {
		return nil, fmt.Errorf("%w: clienteId is required", domain.ErrInvalidInput)
	}

	if input.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("%w: saldoInicial must not be negative", domain.ErrInvalidInput)
	}

	exists, err := uc.accountRepo.ExistsByNumber(ctx, input.Number)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, domain.ErrAccountExists
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	now := time.Now().UTC()

	account := &domain.Account{
		Number:         input.Number,
		Type:           domain.NormalizeAccountType(input.Type),
		OpeningBalance: input.OpeningBalance,
		CurrentBalance: input.OpeningBalance,
		Active:         active,
		CustomerID:     input.CustomerID,
		CustomerName:   input.CustomerName,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	metrics.AccountsCreated.Inc()

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// GetAccountByNumber retrieves an account by its account number.
func (uc *AccountUseCase) GetAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	return uc.accountRepo.GetByNumber(ctx, number)
}

// ListAccounts lists all accounts.
func (uc *AccountUseCase) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return uc.accountRepo.List(ctx)
}

// ListAccountsByCustomer lists the accounts owned by a customer.
func (uc *AccountUseCase) ListAccountsByCustomer(ctx context.Context, customerID string) ([]*domain.Account, error) {
	return uc.accountRepo.ListByCustomer(ctx, customerID)
}

// UpdateAccountInput represents input for updating an account. The account
// number and balances are immutable through this path.
type UpdateAccountInput struct {
	Type   string
	Active *bool
}

// UpdateAccount updates an account's mutable attributes.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, id int64, input UpdateAccountInput) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Type != "" {
		account.Type = domain.NormalizeAccountType(input.Type)
	}

	if input.Active != nil {
		account.Active = *input.Active
	}

	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}
