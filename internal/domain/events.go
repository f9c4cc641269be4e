package domain

import "github.com/shopspring/decimal"

// Customer lifecycle event types published by the clientes service.
const (
	CustomerEventCreated = "CREATED"
	CustomerEventUpdated = "UPDATED"
	CustomerEventDeleted = "DELETED"
)

// AccountSpec describes an account to be opened for a customer, attached to
// CREATED events.
type AccountSpec struct {
	Number         string          `json:"numeroCuenta"`
	Type           string          `json:"tipoCuenta"`
	OpeningBalance decimal.Decimal `json:"saldoInicial"`
}

// CustomerEvent is the message exchanged between the clientes and cuentas
// services over the broker. The JSON shape is the original wire contract.
type CustomerEvent struct {
	CustomerID     string        `json:"clienteId"`
	Name           string        `json:"nombre"`
	Identification string        `json:"identificacion"`
	EventType      string        `json:"eventType"`
	Accounts       []AccountSpec `json:"cuentas,omitempty"`
}
