package domain

import "time"

// Customer is a bank customer managed by the clientes service.
type Customer struct {
	ID             int64
	CustomerID     string
	Name           string
	Gender         string
	Age            int
	Identification string
	Address        string
	Phone          string
	Password       string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
