package entity

import "github.com/uptrace/bun"

// Employee is a staff member assigned to an office.
type Employee struct {
	bun.BaseModel `bun:"table:employees"`

	Number     int64  `bun:"employeeNumber,pk,autoincrement"`
	LastName   string `bun:"lastName,notnull"`
	FirstName  string `bun:"firstName,notnull"`
	Extension  string `bun:"extension"`
	Email      string `bun:"email,notnull"`
	OfficeCode string `bun:"officeCode"`
	ReportsTo  *int64 `bun:"reportsTo"`
	JobTitle   string `bun:"jobTitle"`
}
