package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrivas/bancario/internal/domain"
)

const customerColumns = `id, cliente_id, nombre, genero, edad, identificacion, direccion,
	telefono, contrasena, estado, created_at, updated_at`

// CustomerRepository implements usecase.CustomerRepository on PostgreSQL.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// Create inserts a new customer and fills in its generated ID.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO clientes (cliente_id, nombre, genero, edad, identificacion, direccion,
			telefono, contrasena, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		customer.CustomerID,
		customer.Name,
		customer.Gender,
		customer.Age,
		customer.Identification,
		customer.Address,
		customer.Phone,
		customer.Password,
		customer.Active,
		timeToPgTimestamptz(customer.CreatedAt),
		timeToPgTimestamptz(customer.UpdatedAt),
	).Scan(&customer.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrCustomerExists
		}

		return err
	}

	return nil
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM clientes WHERE id = $1`, id)

	return scanCustomer(row)
}

// GetByCustomerID retrieves a customer by business customer ID.
func (r *CustomerRepository) GetByCustomerID(ctx context.Context, customerID string) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM clientes WHERE cliente_id = $1`, customerID)

	return scanCustomer(row)
}

// ExistsByCustomerID reports whether a customer with the given business ID exists.
func (r *CustomerRepository) ExistsByCustomerID(ctx context.Context, customerID string) (bool, error) {
	var exists bool

	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM clientes WHERE cliente_id = $1)`, customerID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// ExistsByIdentification reports whether a customer with the given national
// identification exists.
func (r *CustomerRepository) ExistsByIdentification(ctx context.Context, identification string) (bool, error) {
	var exists bool

	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM clientes WHERE identificacion = $1)`, identification).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// List lists all customers ordered by ID.
func (r *CustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+customerColumns+` FROM clientes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domain.Customer

	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}

		customers = append(customers, customer)
	}

	return customers, rows.Err()
}

// Update updates a customer.
func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE clientes
		SET nombre = $2, genero = $3, edad = $4, identificacion = $5, direccion = $6,
			telefono = $7, contrasena = $8, estado = $9, updated_at = $10
		WHERE id = $1`,
		customer.ID,
		customer.Name,
		customer.Gender,
		customer.Age,
		customer.Identification,
		customer.Address,
		customer.Phone,
		customer.Password,
		customer.Active,
		timeToPgTimestamptz(customer.UpdatedAt),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrCustomerExists
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}

	return nil
}

// Delete removes a customer.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}

	return nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var (
		customer  domain.Customer
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&customer.ID,
		&customer.CustomerID,
		&customer.Name,
		&customer.Gender,
		&customer.Age,
		&customer.Identification,
		&customer.Address,
		&customer.Phone,
		&customer.Password,
		&customer.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}

		return nil, err
	}

	customer.CreatedAt = createdAt.Time
	customer.UpdatedAt = updatedAt.Time

	return &customer, nil
}
