package dto

// OrderResponse represents an order header, optionally annotated with the
// owning customer's name and the order total.
type OrderResponse struct {
	OrderNumber    int64   `json:"orderNumber"`
	OrderDate      string  `json:"orderDate"`
	RequiredDate   string  `json:"requiredDate"`
	ShippedDate    string  `json:"shippedDate,omitempty"`
	Status         string  `json:"status"`
	Comments       string  `json:"comments"`
	CustomerNumber int64   `json:"customerNumber"`
	CustomerName   string  `json:"customerName,omitempty"`
	TotalAmount    float64 `json:"totalAmount"`
}

// OrderContactResponse is the single-order view joined with customer
// contact details.
type OrderContactResponse struct {
	OrderResponse
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
}

// OrderDetailResponse is one order line joined with the product name.
type OrderDetailResponse struct {
	OrderNumber     int64   `json:"orderNumber"`
	ProductCode     string  `json:"productCode"`
	ProductName     string  `json:"productName"`
	QuantityOrdered int     `json:"quantityOrdered"`
	PriceEach       float64 `json:"priceEach"`
	OrderLineNumber int     `json:"orderLineNumber"`
}

// OrderCreatedResponse is returned once an order commits.
type OrderCreatedResponse struct {
	OrderNumber int64 `json:"orderNumber"`
}
