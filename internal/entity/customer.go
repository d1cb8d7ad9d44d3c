package entity

import "github.com/uptrace/bun"

// Customer is an independent aggregate referenced by orders and payments.
type Customer struct {
	bun.BaseModel `bun:"table:customers"`

	Number           int64    `bun:"customerNumber,pk,autoincrement"`
	Name             string   `bun:"customerName,notnull"`
	ContactLastName  string   `bun:"contactLastName"`
	ContactFirstName string   `bun:"contactFirstName"`
	Phone            string   `bun:"phone"`
	AddressLine1     string   `bun:"addressLine1"`
	AddressLine2     string   `bun:"addressLine2"`
	City             string   `bun:"city"`
	State            string   `bun:"state"`
	PostalCode       string   `bun:"postalCode"`
	Country          string   `bun:"country"`
	SalesRepNumber   *int64   `bun:"salesRepEmployeeNumber"`
	CreditLimit      *float64 `bun:"creditLimit"`
}
