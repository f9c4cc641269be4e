package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mrivas/bancario/internal/domain"
	"github.com/mrivas/bancario/internal/usecase"
)

const pgErrUniqueViolation = "23505"

const accountColumns = `id, numero_cuenta, tipo_cuenta, saldo_inicial, saldo_actual, estado,
	cliente_id, cliente_nombre, created_at, updated_at`

// AccountRepository implements usecase.AccountRepository on PostgreSQL.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create inserts a new account and fills in its generated ID.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO cuentas (numero_cuenta, tipo_cuenta, saldo_inicial, saldo_actual, estado,
			cliente_id, cliente_nombre, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		account.Number,
		account.Type,
		decimalToNumeric(account.OpeningBalance),
		decimalToNumeric(account.CurrentBalance),
		account.Active,
		account.CustomerID,
		account.CustomerName,
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	).Scan(&account.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrAccountExists
		}

		return err
	}

	return nil
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM cuentas WHERE id = $1`, id)

	return scanAccount(row)
}

// GetByNumber retrieves an account by account number.
func (r *AccountRepository) GetByNumber(ctx context.Context, number string) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM cuentas WHERE numero_cuenta = $1`, number)

	return scanAccount(row)
}

// GetByNumberForUpdate retrieves an account by number with a FOR UPDATE lock.
func (r *AccountRepository) GetByNumberForUpdate(ctx context.Context, tx usecase.Transaction, number string) (*domain.Account, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM cuentas WHERE numero_cuenta = $1 FOR UPDATE`, number)

	return scanAccount(row)
}

// ExistsByNumber reports whether an account with the given number exists.
func (r *AccountRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var exists bool

	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM cuentas WHERE numero_cuenta = $1)`, number).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// List lists all accounts ordered by ID.
func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+accountColumns+` FROM cuentas ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAccounts(rows)
}

// ListByCustomer lists the accounts owned by a customer, ordered by ID.
func (r *AccountRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+accountColumns+` FROM cuentas WHERE cliente_id = $1 ORDER BY id`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAccounts(rows)
}

// Update updates an account's mutable attributes.
func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE cuentas
		SET tipo_cuenta = $2, estado = $3, cliente_nombre = $4, updated_at = $5
		WHERE id = $1`,
		account.ID,
		account.Type,
		account.Active,
		account.CustomerName,
		timeToPgTimestamptz(account.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// UpdateBalance updates the current balance of an account inside a transaction.
func (r *AccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE cuentas SET saldo_actual = $2, updated_at = $3 WHERE id = $1`,
		id, decimalToNumeric(balance), timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// UpdateCustomerName re-syncs the denormalized owner name on every account
// of a customer.
func (r *AccountRepository) UpdateCustomerName(ctx context.Context, customerID, name string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE cuentas SET cliente_nombre = $2, updated_at = now() WHERE cliente_id = $1`,
		customerID, name)

	return err
}

// DeactivateByCustomer marks every account of a customer inactive.
func (r *AccountRepository) DeactivateByCustomer(ctx context.Context, customerID string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE cuentas SET estado = false, updated_at = now() WHERE cliente_id = $1`,
		customerID)

	return err
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account   domain.Account
		opening   pgtype.Numeric
		current   pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&account.ID,
		&account.Number,
		&account.Type,
		&opening,
		&current,
		&account.Active,
		&account.CustomerID,
		&account.CustomerName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	account.OpeningBalance = numericToDecimal(opening)
	account.CurrentBalance = numericToDecimal(current)
	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}

func scanAccounts(rows pgx.Rows) ([]*domain.Account, error) {
	var accounts []*domain.Account

	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}
