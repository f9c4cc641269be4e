package dto

import (
	"github.com/shopspring/decimal"

	"github.com/mrivas/bancario/internal/domain"
	"github.com/mrivas/bancario/internal/usecase"
)

// CreateAccountRequest is the request body for creating an account.
type CreateAccountRequest struct {
	NumeroCuenta  string          `json:"numeroCuenta"`
	TipoCuenta    string          `json:"tipoCuenta"`
	SaldoInicial  decimal.Decimal `json:"saldoInicial"`
	Estado        *bool           `json:"estado,omitempty"`
	ClienteID     string          `json:"clienteId"`
	ClienteNombre string          `json:"clienteNombre"`
}

// ToUseCaseInput converts the request to a use case input.
func (r CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Number:         r.NumeroCuenta,
		Type:           r.TipoCuenta,
		OpeningBalance: r.SaldoInicial,
		Active:         r.Estado,
		CustomerID:     r.ClienteID,
		CustomerName:   r.ClienteNombre,
	}
}

// UpdateAccountRequest is the request body for updating an account. Omitted
// fields are left unchanged.
type UpdateAccountRequest struct {
	TipoCuenta string `json:"tipoCuenta,omitempty"`
	Estado     *bool  `json:"estado,omitempty"`
}

// ToUseCaseInput converts the request to a use case input.
func (r UpdateAccountRequest) ToUseCaseInput() usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		Type:   r.TipoCuenta,
		Active: r.Estado,
	}
}

// RegisterMovementRequest is the request body for registering a movement.
type RegisterMovementRequest struct {
	NumeroCuenta   string          `json:"numeroCuenta"`
	TipoMovimiento string          `json:"tipoMovimiento"`
	Valor          decimal.Decimal `json:"valor"`
}

// ToUseCaseInput converts the request to a use case input.
func (r RegisterMovementRequest) ToUseCaseInput() usecase.RegisterMovementInput {
	return usecase.RegisterMovementInput{
		AccountNumber: r.NumeroCuenta,
		Kind:          r.TipoMovimiento,
		Amount:        r.Valor,
	}
}

// CreateCustomerRequest is the request body for creating a customer.
type CreateCustomerRequest struct {
	ClienteID      string `json:"clienteId"`
	Nombre         string `json:"nombre"`
	Genero         string `json:"genero"`
	Edad           int    `json:"edad"`
	Identificacion string `json:"identificacion"`
	Direccion      string `json:"direccion"`
	Telefono       string `json:"telefono"`
	Contrasena     string `json:"contrasena"`
	Estado         *bool  `json:"estado,omitempty"`
}

// ToUseCaseInput converts the request to a use case input.
func (r CreateCustomerRequest) ToUseCaseInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		CustomerID:     r.ClienteID,
		Name:           r.Nombre,
		Gender:         r.Genero,
		Age:            r.Edad,
		Identification: r.Identificacion,
		Address:        r.Direccion,
		Phone:          r.Telefono,
		Password:       r.Contrasena,
		Active:         r.Estado,
	}
}

// AccountSpecRequest describes an account to open alongside a new customer.
type AccountSpecRequest struct {
	NumeroCuenta string          `json:"numeroCuenta"`
	TipoCuenta   string          `json:"tipoCuenta"`
	SaldoInicial decimal.Decimal `json:"saldoInicial"`
}

// CreateCustomerWithAccountsRequest is the request body for creating a
// customer together with its initial accounts.
type CreateCustomerWithAccountsRequest struct {
	Cliente CreateCustomerRequest `json:"cliente"`
	Cuentas []AccountSpecRequest  `json:"cuentas"`
}

// AccountSpecs converts the account specs to domain form.
func (r CreateCustomerWithAccountsRequest) AccountSpecs() []domain.AccountSpec {
	specs := make([]domain.AccountSpec, 0, len(r.Cuentas))
	for _, c := range r.Cuentas {
		specs = append(specs, domain.AccountSpec{
			Number:         c.NumeroCuenta,
			Type:           c.TipoCuenta,
			OpeningBalance: c.SaldoInicial,
		})
	}

	return specs
}

// UpdateCustomerRequest is the request body for updating a customer. Omitted
// fields are left unchanged.
type UpdateCustomerRequest struct {
	Nombre         string `json:"nombre,omitempty"`
	Genero         string `json:"genero,omitempty"`
	Edad           int    `json:"edad,omitempty"`
	Identificacion string `json:"identificacion,omitempty"`
	Direccion      string `json:"direccion,omitempty"`
	Telefono       string `json:"telefono,omitempty"`
	Contrasena     string `json:"contrasena,omitempty"`
	Estado         *bool  `json:"estado,omitempty"`
}

// ToUseCaseInput converts the request to a use case input.
func (r UpdateCustomerRequest) ToUseCaseInput() usecase.UpdateCustomerInput {
	return usecase.UpdateCustomerInput{
		Name:           r.Nombre,
		Gender:         r.Genero,
		Age:            r.Edad,
		Identification: r.Identificacion,
		Address:        r.Direccion,
		Phone:          r.Telefono,
		Password:       r.Contrasena,
		Active:         r.Estado,
	}
}
