package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement is a read-only, date-ranged reconstruction of one customer's
// accounts and their movements. CurrentBalance on each account is the live
// balance at build time, not a point-in-time balance as of the end date.
type Statement struct {
	From         time.Time
	To           time.Time
	CustomerID   string
	CustomerName string
	Accounts     []StatementAccount
}

// StatementAccount is one account's slice of a statement.
type StatementAccount struct {
	Number         string
	Type           string
	OpeningBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	Active         bool
	Movements      []StatementMovement
}

// StatementMovement is a movement as reported in a statement; the timestamp
// is rendered date-only at the transport layer.
type StatementMovement struct {
	Date    time.Time
	Kind    MovementKind
	Amount  decimal.Decimal
	Balance decimal.Decimal
}
