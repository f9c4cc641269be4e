package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mrivas/bancario/internal/domain"
)

// CustomerEventUseCase applies inbound customer lifecycle events on the
// cuentas side. Handlers are idempotent: CREATED events dedupe on account
// number, so redelivery is harmless.
type CustomerEventUseCase struct {
	accountRepo AccountRepository
}

// NewCustomerEventUseCase creates a new CustomerEventUseCase.
func NewCustomerEventUseCase(accountRepo AccountRepository) *CustomerEventUseCase {
	return &CustomerEventUseCase{accountRepo: accountRepo}
}

// Apply dispatches a customer event to its handler. Unknown event types
// return ErrUnknownEventType; the caller decides whether that is fatal
// (the broker consumer only logs it).
func (uc *CustomerEventUseCase) Apply(ctx context.Context, event *domain.CustomerEvent) error {
	switch event.EventType {
	case domain.CustomerEventCreated:
		return uc.applyCreated(ctx, event)
	case domain.CustomerEventUpdated:
		return uc.accountRepo.UpdateCustomerName(ctx, event.CustomerID, event.Name)
	case domain.CustomerEventDeleted:
		// Accounts are deactivated, never deleted: the movement log must
		// survive the customer.
		return uc.accountRepo.DeactivateByCustomer(ctx, event.CustomerID)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownEventType, event.EventType)
	}
}

func (uc *CustomerEventUseCase) applyCreated(ctx context.Context, event *domain.CustomerEvent) error {
	var errs []error

	for _, spec := range event.Accounts {
		if err := uc.openAccount(ctx, event, spec); err != nil {
			errs = append(errs, fmt.Errorf("account %s: %w", spec.Number, err))
		}
	}

	return errors.Join(errs...)
}

func (uc *CustomerEventUseCase) openAccount(ctx context.Context, event *domain.CustomerEvent, spec domain.AccountSpec) error {
	exists, err := uc.accountRepo.ExistsByNumber(ctx, spec.Number)
	if err != nil {
		return err
	}

	if exists {
		// Already opened by an earlier delivery of the same event.
		return nil
	}

	if spec.OpeningBalance.IsNegative() {
		return fmt.Errorf("%w: saldoInicial must not be negative", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()

	return uc.accountRepo.Create(ctx, &domain.Account{
		Number:         spec.Number,
		Type:           domain.NormalizeAccountType(spec.Type),
		OpeningBalance: spec.OpeningBalance,
		CurrentBalance: spec.OpeningBalance,
		Active:         true,
		CustomerID:     event.CustomerID,
		CustomerName:   event.Name,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}
