package dto

// EmployeeResponse represents an employee, optionally annotated with the
// office city on list views.
type EmployeeResponse struct {
	EmployeeNumber int64  `json:"employeeNumber"`
	LastName       string `json:"lastName"`
	FirstName      string `json:"firstName"`
	Extension      string `json:"extension"`
	Email          string `json:"email"`
	OfficeCode     string `json:"officeCode"`
	OfficeName     string `json:"officeName,omitempty"`
	ReportsTo      *int64 `json:"reportsTo"`
	JobTitle       string `json:"jobTitle"`
}
