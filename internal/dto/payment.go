package dto

// PaymentResponse represents a recorded payment, optionally annotated with
// the customer's name on list views.
type PaymentResponse struct {
	CustomerNumber int64   `json:"customerNumber"`
	CustomerName   string  `json:"customerName,omitempty"`
	CheckNumber    string  `json:"checkNumber"`
	PaymentDate    string  `json:"paymentDate"`
	Amount         float64 `json:"amount"`
}
