package usecase

import (
	"context"
	"time"

	"github.com/mrivas/bancario/internal/domain"
	"github.com/mrivas/bancario/internal/infrastructure/metrics"
)

// StatementUseCase builds date-ranged account statements for a customer.
// It only reads; no state is mutated.
type StatementUseCase struct {
	accountRepo  AccountRepository
	movementRepo MovementRepository
}

// NewStatementUseCase creates a new StatementUseCase.
func NewStatementUseCase(accountRepo AccountRepository, movementRepo MovementRepository) *StatementUseCase {
	return &StatementUseCase{
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
	}
}

// Build assembles the statement for a customer over the inclusive date range
// [from, to]. The range expands to full-day bounds, so movements recorded at
// any time on the end date are included. A customer with no accounts yields
// an empty statement, not an error.
func (uc *StatementUseCase) Build(ctx context.Context, customerID string, from, to time.Time) (*domain.Statement, error) {
	accounts, err := uc.accountRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	fromAt := startOfDay(from)
	toAt := endOfDay(to)

	statement := &domain.Statement{
		From:       from,
		To:         to,
		CustomerID: customerID,
		Accounts:   make([]domain.StatementAccount, 0, len(accounts)),
	}

	if len(accounts) > 0 {
		statement.CustomerName = accounts[0].CustomerName
	}

	for _, account := range accounts {
		movements, err := uc.movementRepo.ListByAccountBetween(ctx, account.ID, fromAt, toAt)
		if err != nil {
			return nil, err
		}

		entry := domain.StatementAccount{
			Number:         account.Number,
			Type:           account.Type,
			OpeningBalance: account.OpeningBalance,
			CurrentBalance: account.CurrentBalance,
			Active:         account.Active,
			Movements:      make([]domain.StatementMovement, 0, len(movements)),
		}

		for _, m := range movements {
			entry.Movements = append(entry.Movements, domain.StatementMovement{
				Date:    m.OccurredAt,
				Kind:    m.Kind,
				Amount:  m.Amount,
				Balance: m.Balance,
			})
		}

		statement.Accounts = append(statement.Accounts, entry)
	}

	metrics.StatementsBuilt.Inc()

	return statement, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
