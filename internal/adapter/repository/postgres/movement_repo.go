package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrivas/bancario/internal/domain"
	"github.com/mrivas/bancario/internal/usecase"
)

const movementColumns = `m.id, m.cuenta_id, c.numero_cuenta, m.tipo_movimiento, m.valor, m.saldo, m.fecha`

// MovementRepository implements usecase.MovementRepository on PostgreSQL.
type MovementRepository struct {
	pool *pgxpool.Pool
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{pool: pool}
}

// Create inserts a movement inside a transaction and fills in its generated ID.
// The write shares the transaction that locked and updated the account row.
func (r *MovementRepository) Create(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	pgxTx := tx.(*Tx).PgxTx()

	return pgxTx.QueryRow(ctx, `
		INSERT INTO movimientos (cuenta_id, tipo_movimiento, valor, saldo, fecha)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		movement.AccountID,
		string(movement.Kind),
		decimalToNumeric(movement.Amount),
		decimalToNumeric(movement.Balance),
		timeToPgTimestamptz(movement.OccurredAt),
	).Scan(&movement.ID)
}

// GetByID retrieves a movement by ID.
func (r *MovementRepository) GetByID(ctx context.Context, id int64) (*domain.Movement, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+movementColumns+`
		FROM movimientos m JOIN cuentas c ON c.id = m.cuenta_id
		WHERE m.id = $1`, id)

	return scanMovement(row)
}

// List lists all movements, newest first.
func (r *MovementRepository) List(ctx context.Context) ([]*domain.Movement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+movementColumns+`
		FROM movimientos m JOIN cuentas c ON c.id = m.cuenta_id
		ORDER BY m.fecha DESC, m.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovements(rows)
}

// ListByAccount lists an account's movements, newest first.
func (r *MovementRepository) ListByAccount(ctx context.Context, accountID int64) ([]*domain.Movement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+movementColumns+`
		FROM movimientos m JOIN cuentas c ON c.id = m.cuenta_id
		WHERE m.cuenta_id = $1
		ORDER BY m.fecha DESC, m.id DESC`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovements(rows)
}

// ListByAccountBetween lists an account's movements inside [from, to],
// newest first.
func (r *MovementRepository) ListByAccountBetween(ctx context.Context, accountID int64, from, to time.Time) ([]*domain.Movement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+movementColumns+`
		FROM movimientos m JOIN cuentas c ON c.id = m.cuenta_id
		WHERE m.cuenta_id = $1 AND m.fecha BETWEEN $2 AND $3
		ORDER BY m.fecha DESC, m.id DESC`,
		accountID, timeToPgTimestamptz(from), timeToPgTimestamptz(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovements(rows)
}

func scanMovement(row pgx.Row) (*domain.Movement, error) {
	var (
		movement domain.Movement
		kind     string
		amount   pgtype.Numeric
		balance  pgtype.Numeric
		fecha    pgtype.Timestamptz
	)

	err := row.Scan(
		&movement.ID,
		&movement.AccountID,
		&movement.AccountNumber,
		&kind,
		&amount,
		&balance,
		&fecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovementNotFound
		}

		return nil, err
	}

	movement.Kind = domain.MovementKind(kind)
	movement.Amount = numericToDecimal(amount)
	movement.Balance = numericToDecimal(balance)
	movement.OccurredAt = fecha.Time

	return &movement, nil
}

func scanMovements(rows pgx.Rows) ([]*domain.Movement, error) {
	var movements []*domain.Movement

	for rows.Next() {
		movement, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}

		movements = append(movements, movement)
	}

	return movements, rows.Err()
}
