package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mrivas/bancario/internal/domain"
)

const dateLayout = "2006-01-02"

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID            int64           `json:"id"`
	NumeroCuenta  string          `json:"numeroCuenta"`
	TipoCuenta    string          `json:"tipoCuenta"`
	SaldoInicial  decimal.Decimal `json:"saldoInicial"`
	SaldoActual   decimal.Decimal `json:"saldoActual"`
	Estado        bool            `json:"estado"`
	ClienteID     string          `json:"clienteId"`
	ClienteNombre string          `json:"clienteNombre"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:            a.ID,
		NumeroCuenta:  a.Number,
		TipoCuenta:    a.Type,
		SaldoInicial:  a.OpeningBalance,
		SaldoActual:   a.CurrentBalance,
		Estado:        a.Active,
		ClienteID:     a.CustomerID,
		ClienteNombre: a.CustomerName,
	}
}

// AccountsFromDomain converts a slice of domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, AccountFromDomain(a))
	}

	return out
}

// MovementResponse represents a movement in API responses.
type MovementResponse struct {
	ID             int64           `json:"id"`
	NumeroCuenta   string          `json:"numeroCuenta"`
	TipoMovimiento string          `json:"tipoMovimiento"`
	Valor          decimal.Decimal `json:"valor"`
	Saldo          decimal.Decimal `json:"saldo"`
	Fecha          time.Time       `json:"fecha"`
}

// MovementFromDomain converts a domain movement to a response.
func MovementFromDomain(m *domain.Movement) MovementResponse {
	return MovementResponse{
		ID:             m.ID,
		NumeroCuenta:   m.AccountNumber,
		TipoMovimiento: string(m.Kind),
		Valor:          m.Amount,
		Saldo:          m.Balance,
		Fecha:          m.OccurredAt,
	}
}

// MovementsFromDomain converts a slice of domain movements to responses.
func MovementsFromDomain(movements []*domain.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, MovementFromDomain(m))
	}

	return out
}

// StatementMovementResponse is one movement line of a statement.
type StatementMovementResponse struct {
	Fecha          string          `json:"fecha"`
	TipoMovimiento string          `json:"tipoMovimiento"`
	Valor          decimal.Decimal `json:"valor"`
	Saldo          decimal.Decimal `json:"saldo"`
}

// StatementAccountResponse is one account section of a statement.
type StatementAccountResponse struct {
	NumeroCuenta string                      `json:"numeroCuenta"`
	TipoCuenta   string                      `json:"tipoCuenta"`
	SaldoInicial decimal.Decimal             `json:"saldoInicial"`
	SaldoActual  decimal.Decimal             `json:"saldoActual"`
	Estado       bool                        `json:"estado"`
	Movimientos  []StatementMovementResponse `json:"movimientos"`
}

// StatementResponse represents a customer statement in API responses.
type StatementResponse struct {
	FechaInicio   string                     `json:"fechaInicio"`
	FechaFin      string                     `json:"fechaFin"`
	ClienteID     string                     `json:"clienteId"`
	ClienteNombre string                     `json:"clienteNombre"`
	Cuentas       []StatementAccountResponse `json:"cuentas"`
}

// StatementFromDomain converts a domain statement to a response.
func StatementFromDomain(s *domain.Statement) StatementResponse {
	cuentas := make([]StatementAccountResponse, 0, len(s.Accounts))

	for _, account := range s.Accounts {
		movimientos := make([]StatementMovementResponse, 0, len(account.Movements))
		for _, m := range account.Movements {
			movimientos = append(movimientos, StatementMovementResponse{
				Fecha:          m.Date.Format(dateLayout),
				TipoMovimiento: string(m.Kind),
				Valor:          m.Amount,
				Saldo:          m.Balance,
			})
		}

		cuentas = append(cuentas, StatementAccountResponse{
			NumeroCuenta: account.Number,
			TipoCuenta:   account.Type,
			SaldoInicial: account.OpeningBalance,
			SaldoActual:  account.CurrentBalance,
			Estado:       account.Active,
			Movimientos:  movimientos,
		})
	}

	return StatementResponse{
		FechaInicio:   s.From.Format(dateLayout),
		FechaFin:      s.To.Format(dateLayout),
		ClienteID:     s.CustomerID,
		ClienteNombre: s.CustomerName,
		Cuentas:       cuentas,
	}
}

// CustomerResponse represents a customer in API responses. The password is
// never serialized.
type CustomerResponse struct {
	ID             int64  `json:"id"`
	ClienteID      string `json:"clienteId"`
	Nombre         string `json:"nombre"`
	Genero         string `json:"genero"`
	Edad           int    `json:"edad"`
	Identificacion string `json:"identificacion"`
	Direccion      string `json:"direccion"`
	Telefono       string `json:"telefono"`
	Estado         bool   `json:"estado"`
}

// CustomerFromDomain converts a domain customer to a response.
func CustomerFromDomain(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		ClienteID:      c.CustomerID,
		Nombre:         c.Name,
		Genero:         c.Gender,
		Edad:           c.Age,
		Identificacion: c.Identification,
		Direccion:      c.Address,
		Telefono:       c.Phone,
		Estado:         c.Active,
	}
}

// CustomersFromDomain converts a slice of domain customers to responses.
func CustomersFromDomain(customers []*domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerFromDomain(c))
	}

	return out
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
