package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mrivas/bancario/internal/domain"
	"github.com/mrivas/bancario/internal/usecase"
)

// MockAccountRepository is an in-memory AccountRepository. Behavior can be
// overridden per method via the *Func fields.
type MockAccountRepository struct {
	mu       sync.RWMutex
	nextID   int64
	accounts map[string]*domain.Account

	CreateFunc               func(ctx context.Context, account *domain.Account) error
	GetByNumberForUpdateFunc func(ctx context.Context, tx usecase.Transaction, number string) (*domain.Account, error)
	UpdateBalanceFunc        func(ctx context.Context, tx usecase.Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error
	ListByCustomerFunc       func(ctx context.Context, customerID string) ([]*domain.Account, error)
}

// NewMockAccountRepository creates an empty MockAccountRepository.
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{accounts: make(map[string]*domain.Account)}
}

// Seed adds an account directly, assigning an ID if unset.
func (m *MockAccountRepository) Seed(account *domain.Account) *domain.Account {
	m.mu.Lock()
	defer m.mu.Unlock()

	if account.ID == 0 {
		m.nextID++
		account.ID = m.nextID
	}

	m.accounts[account.Number] = account

	return account
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[account.Number]; ok {
		return domain.ErrAccountExists
	}

	m.nextID++
	account.ID = m.nextID
	m.accounts[account.Number] = account

	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.accounts {
		if a.ID == id {
			return a, nil
		}
	}

	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByNumber(ctx context.Context, number string) (*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.accounts[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return a, nil
}

func (m *MockAccountRepository) GetByNumberForUpdate(ctx context.Context, tx usecase.Transaction, number string) (*domain.Account, error) {
	if m.GetByNumberForUpdateFunc != nil {
		return m.GetByNumberForUpdateFunc(ctx, tx, number)
	}

	return m.GetByNumber(ctx, number)
}

func (m *MockAccountRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.accounts[number]

	return ok, nil
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		accounts = append(accounts, a)
	}

	return accounts, nil
}

func (m *MockAccountRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Account, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var accounts []*domain.Account
	for _, a := range m.accounts {
		if a.CustomerID == customerID {
			accounts = append(accounts, a)
		}
	}

	return accounts, nil
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.accounts[account.Number] = account

	return nil
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.accounts {
		if a.ID == id {
			a.CurrentBalance = balance
			a.UpdatedAt = updatedAt

			return nil
		}
	}

	return domain.ErrAccountNotFound
}

func (m *MockAccountRepository) UpdateCustomerName(ctx context.Context, customerID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.accounts {
		if a.CustomerID == customerID {
			a.CustomerName = name
		}
	}

	return nil
}

func (m *MockAccountRepository) DeactivateByCustomer(ctx context.Context, customerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.accounts {
		if a.CustomerID == customerID {
			a.Active = false
		}
	}

	return nil
}

// MockMovementRepository is an in-memory MovementRepository storing
// movements in insertion order.
type MockMovementRepository struct {
	mu        sync.RWMutex
	nextID    int64
	movements []*domain.Movement

	CreateFunc func(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error

	// LastRange records the bounds of the most recent ListByAccountBetween call.
	LastRange struct {
		From, To time.Time
	}
}

// NewMockMovementRepository creates an empty MockMovementRepository.
func NewMockMovementRepository() *MockMovementRepository {
	return &MockMovementRepository{}
}

// Seed adds a movement directly, assigning an ID if unset.
func (m *MockMovementRepository) Seed(movement *domain.Movement) *domain.Movement {
	m.mu.Lock()
	defer m.mu.Unlock()

	if movement.ID == 0 {
		m.nextID++
		movement.ID = m.nextID
	}

	m.movements = append(m.movements, movement)

	return movement
}

func (m *MockMovementRepository) Create(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, movement)
	}

	m.Seed(movement)

	return nil
}

func (m *MockMovementRepository) GetByID(ctx context.Context, id int64) (*domain.Movement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, mv := range m.movements {
		if mv.ID == id {
			return mv, nil
		}
	}

	return nil, domain.ErrMovementNotFound
}

func (m *MockMovementRepository) List(ctx context.Context) ([]*domain.Movement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]*domain.Movement(nil), m.movements...), nil
}

func (m *MockMovementRepository) ListByAccount(ctx context.Context, accountID int64) ([]*domain.Movement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*domain.Movement
	for i := len(m.movements) - 1; i >= 0; i-- {
		if m.movements[i].AccountID == accountID {
			out = append(out, m.movements[i])
		}
	}

	return out, nil
}

func (m *MockMovementRepository) ListByAccountBetween(ctx context.Context, accountID int64, from, to time.Time) ([]*domain.Movement, error) {
	m.mu.Lock()
	m.LastRange.From = from
	m.LastRange.To = to
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*domain.Movement
	for i := len(m.movements) - 1; i >= 0; i-- {
		mv := m.movements[i]
		if mv.AccountID != accountID {
			continue
		}

		if mv.OccurredAt.Before(from) || mv.OccurredAt.After(to) {
			continue
		}

		out = append(out, mv)
	}

	return out, nil
}

// MockCustomerRepository is an in-memory CustomerRepository.
type MockCustomerRepository struct {
	mu        sync.RWMutex
	nextID    int64
	customers map[int64]*domain.Customer
}

// NewMockCustomerRepository creates an empty MockCustomerRepository.
func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{customers: make(map[int64]*domain.Customer)}
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	customer.ID = m.nextID
	m.customers[customer.ID] = customer

	return nil
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}

	return c, nil
}

func (m *MockCustomerRepository) GetByCustomerID(ctx context.Context, customerID string) (*domain.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.customers {
		if c.CustomerID == customerID {
			return c, nil
		}
	}

	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerRepository) ExistsByCustomerID(ctx context.Context, customerID string) (bool, error) {
	_, err := m.GetByCustomerID(ctx, customerID)
	if err != nil {
		return false, nil
	}

	return true, nil
}

func (m *MockCustomerRepository) ExistsByIdentification(ctx context.Context, identification string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.customers {
		if c.Identification == identification {
			return true, nil
		}
	}

	return false, nil
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	customers := make([]*domain.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		customers = append(customers, c)
	}

	return customers, nil
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.customers[customer.ID]; !ok {
		return domain.ErrCustomerNotFound
	}

	m.customers[customer.ID] = customer

	return nil
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}

	delete(m.customers, id)

	return nil
}

// MockTransaction is a no-op Transaction that counts commits and rollbacks.
type MockTransaction struct {
	Commits   int
	Rollbacks int

	CommitFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.Commits++

	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}

	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	t.Rollbacks++
	return nil
}

// MockTransactionManager hands out MockTransactions and remembers them.
type MockTransactionManager struct {
	mu           sync.Mutex
	Transactions []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)

	return tx, nil
}

// PassthroughRetrier runs the operation once with no retry.
type PassthroughRetrier struct{}

func (PassthroughRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}

// MockEventPublisher records published events.
type MockEventPublisher struct {
	mu     sync.Mutex
	Events []*domain.CustomerEvent
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *domain.CustomerEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Events = append(m.Events, event)
}

// Last returns the most recently published event, or nil.
func (m *MockEventPublisher) Last() *domain.CustomerEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Events) == 0 {
		return nil
	}

	return m.Events[len(m.Events)-1]
}
