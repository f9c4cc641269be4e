package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mrivas/bancario/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByNumber(ctx context.Context, number string) (*domain.Account, error)
	// GetByNumberForUpdate locks the account row for the duration of tx.
	GetByNumberForUpdate(ctx context.Context, tx Transaction, number string) (*domain.Account, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	List(ctx context.Context) ([]*domain.Account, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	UpdateBalance(ctx context.Context, tx Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error
	UpdateCustomerName(ctx context.Context, customerID, name string) error
	DeactivateByCustomer(ctx context.Context, customerID string) error
}

// MovementRepository defines data access for ledger movements.
type MovementRepository interface {
	Create(ctx context.Context, tx Transaction, movement *domain.Movement) error
	GetByID(ctx context.Context, id int64) (*domain.Movement, error)
	List(ctx context.Context) ([]*domain.Movement, error)
	// ListByAccount returns movements newest-first.
	ListByAccount(ctx context.Context, accountID int64) ([]*domain.Movement, error)
	// ListByAccountBetween returns movements within [from, to], newest-first.
	ListByAccountBetween(ctx context.Context, accountID int64, from, to time.Time) ([]*domain.Movement, error)
}

// CustomerRepository defines data access for customers (clientes service).
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByCustomerID(ctx context.Context, customerID string) (*domain.Customer, error)
	ExistsByCustomerID(ctx context.Context, customerID string) (bool, error)
	ExistsByIdentification(ctx context.Context, identification string) (bool, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-executes an operation on transient conflicts (deadlock,
// serialization failure).
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// EventPublisher delivers customer lifecycle events to the broker.
// Delivery is best-effort: implementations log failures and never block the
// calling operation.
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.CustomerEvent)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
