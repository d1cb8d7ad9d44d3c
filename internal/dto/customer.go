package dto

// CustomerResponse represents a customer record.
type CustomerResponse struct {
	CustomerNumber         int64    `json:"customerNumber"`
	CustomerName           string   `json:"customerName"`
	ContactLastName        string   `json:"contactLastName"`
	ContactFirstName       string   `json:"contactFirstName"`
	Phone                  string   `json:"phone"`
	AddressLine1           string   `json:"addressLine1"`
	AddressLine2           string   `json:"addressLine2"`
	City                   string   `json:"city"`
	State                  string   `json:"state"`
	PostalCode             string   `json:"postalCode"`
	Country                string   `json:"country"`
	SalesRepEmployeeNumber *int64   `json:"salesRepEmployeeNumber"`
	CreditLimit            *float64 `json:"creditLimit"`
}
