package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind is the canonical kind of a ledger movement. The stored values
// keep the Spanish wire vocabulary of the original system.
type MovementKind string

const (
	MovementDeposit    MovementKind = "DEPOSITO"
	MovementWithdrawal MovementKind = "RETIRO"
)

// ParseMovementKind parses a caller-supplied kind string. Input is
// case-insensitive and both the Spanish and English spellings are accepted.
func ParseMovementKind(s string) (MovementKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEPOSITO", "DEPOSIT":
		return MovementDeposit, nil
	case "RETIRO", "WITHDRAWAL":
		return MovementWithdrawal, nil
	default:
		return "", ErrInvalidMovementKind
	}
}

// Canonicalize forces the canonical sign for the kind: deposits are always
// positive, withdrawals always negative, regardless of the caller's sign.
func (k MovementKind) Canonicalize(amount decimal.Decimal) decimal.Decimal {
	if k == MovementWithdrawal {
		return amount.Abs().Neg()
	}

	return amount.Abs()
}

// Movement is a single signed entry in an account's ledger. Movements are
// append-only: never updated or deleted once written. Balance snapshots the
// account's current balance immediately after this movement was applied.
type Movement struct {
	ID            int64
	AccountID     int64
	AccountNumber string
	Kind          MovementKind
	Amount        decimal.Decimal
	Balance       decimal.Decimal
	OccurredAt    time.Time
}
