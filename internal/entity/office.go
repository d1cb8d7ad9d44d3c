package entity

import "github.com/uptrace/bun"

// Office is a physical sales location.
type Office struct {
	bun.BaseModel `bun:"table:offices"`

	Code         string `bun:"officeCode,pk"`
	City         string `bun:"city,notnull"`
	Phone        string `bun:"phone"`
	AddressLine1 string `bun:"addressLine1"`
	AddressLine2 string `bun:"addressLine2"`
	State        string `bun:"state"`
	Country      string `bun:"country"`
	PostalCode   string `bun:"postalCode"`
	Territory    string `bun:"territory"`
}
