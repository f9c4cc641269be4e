package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Account is a bank account with a running balance, owned by one customer.
// CustomerName is a denormalized copy of the owner's display name, kept in
// sync by the customer-event handler; it is never the source of truth for
// the customer's current name.
type Account struct {
	ID             int64
	Number         string
	Type           string
	OpeningBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	Active         bool
	CustomerID     string
	CustomerName   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NormalizeAccountType canonicalizes an account type label ("ahorros" -> "AHORROS").
func NormalizeAccountType(t string) string {
	return strings.ToUpper(strings.TrimSpace(t))
}

// ValidateMovement checks whether a signed movement amount can be applied.
// Only withdrawals are subject to the no-negative-balance rule: a deposit
// moves the balance upward and always succeeds, even when the balance is
// already negative.
func (a *Account) ValidateMovement(kind MovementKind, amount decimal.Decimal) error {
	if !a.Active {
		return ErrAccountInactive
	}

	if kind == MovementWithdrawal && a.CurrentBalance.Add(amount).IsNegative() {
		return ErrInsufficientFunds
	}

	return nil
}

// ApplyMovement returns the balance after applying a signed movement amount.
func (a *Account) ApplyMovement(amount decimal.Decimal) decimal.Decimal {
	return a.CurrentBalance.Add(amount)
}
