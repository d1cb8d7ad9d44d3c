package dto

// ProductResponse represents a product as exposed via transport layers.
type ProductResponse struct {
	ProductCode        string  `json:"productCode"`
	ProductName        string  `json:"productName"`
	ProductLine        string  `json:"productLine"`
	ProductScale       string  `json:"productScale"`
	ProductVendor      string  `json:"productVendor"`
	ProductDescription string  `json:"productDescription"`
	QuantityInStock    int     `json:"quantityInStock"`
	BuyPrice           float64 `json:"buyPrice"`
	MSRP               float64 `json:"MSRP"`
}

// ProductLineResponse represents a catalog category.
type ProductLineResponse struct {
	ProductLine     string `json:"productLine"`
	TextDescription string `json:"textDescription"`
}
