package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mrivas/bancario/internal/domain"
	"github.com/mrivas/bancario/internal/infrastructure/metrics"
)

// MovementUseCase is the ledger engine: it applies deposits and withdrawals
// to one account atomically, enforcing the no-negative-balance rule.
type MovementUseCase struct {
	txManager    TransactionManager
	accountRepo  AccountRepository
	movementRepo MovementRepository
	retrier      Retrier
}

// NewMovementUseCase creates a new MovementUseCase.
func NewMovementUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	movementRepo MovementRepository,
	retrier Retrier,
) *MovementUseCase {
	return &MovementUseCase{
		txManager:    txManager,
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
		retrier:      retrier,
	}
}

// RegisterMovementInput represents input for registering a movement.
// Amount may carry either sign; the kind decides the canonical one.
type RegisterMovementInput struct {
	AccountNumber string
	Kind          string
	Amount        decimal.Decimal
}

// Register validates and applies a single movement. The balance update and
// the movement append commit as a unit; on any rule violation nothing is
// persisted. Concurrent movements on the same account serialize on a row
// lock, and the whole transaction retries on serialization conflicts.
func (uc *MovementUseCase) Register(ctx context.Context, input RegisterMovementInput) (*domain.Movement, error) {
	kind, err := domain.ParseMovementKind(input.Kind)
	if err != nil {
		metrics.MovementsRejected.WithLabelValues("invalid_kind").Inc()
		return nil, err
	}

	amount := kind.Canonicalize(input.Amount)

	var movement *domain.Movement

	err = uc.retrier.Retry(ctx, func() error {
		m, err := uc.registerTx(ctx, input.AccountNumber, kind, amount)
		if err != nil {
			return err
		}

		movement = m

		return nil
	})
	if err != nil {
		metrics.MovementsRejected.WithLabelValues(rejectionReason(err)).Inc()
		return nil, err
	}

	metrics.MovementsRegistered.Inc()

	return movement, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrAccountInactive):
		return "account_inactive"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	default:
		return "error"
	}
}

func (uc *MovementUseCase) registerTx(ctx context.Context, number string, kind domain.MovementKind, amount decimal.Decimal) (*domain.Movement, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.accountRepo.GetByNumberForUpdate(ctx, tx, number)
	if err != nil {
		return nil, err
	}

	if err := account.ValidateMovement(kind, amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newBalance := account.ApplyMovement(amount)

	movement := &domain.Movement{
		AccountID:     account.ID,
		AccountNumber: account.Number,
		Kind:          kind,
		Amount:        amount,
		Balance:       newBalance,
		OccurredAt:    now,
	}

	if err := uc.movementRepo.Create(ctx, tx, movement); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return movement, nil
}

// GetMovement retrieves a movement by ID.
func (uc *MovementUseCase) GetMovement(ctx context.Context, id int64) (*domain.Movement, error) {
	return uc.movementRepo.GetByID(ctx, id)
}

// ListMovements lists all movements.
func (uc *MovementUseCase) ListMovements(ctx context.Context) ([]*domain.Movement, error) {
	return uc.movementRepo.List(ctx)
}

// ListMovementsByAccount lists an account's movements, newest-first.
func (uc *MovementUseCase) ListMovementsByAccount(ctx context.Context, accountNumber string) ([]*domain.Movement, error) {
	account, err := uc.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	return uc.movementRepo.ListByAccount(ctx, account.ID)
}
