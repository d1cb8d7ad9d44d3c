package dto

// RevenueByMonth is one row of the monthly revenue report.
type RevenueByMonth struct {
	Month       string  `json:"month"`
	TotalOrders int64   `json:"totalOrders"`
	Revenue     float64 `json:"revenue"`
}

// TopProduct is one row of the best-sellers report.
type TopProduct struct {
	ProductCode string  `json:"productCode"`
	ProductName string  `json:"productName"`
	TotalSold   int64   `json:"totalSold"`
	Revenue     float64 `json:"revenue"`
}

// EmployeePerformance is one row of the sales staff report.
type EmployeePerformance struct {
	EmployeeNumber int64   `json:"employeeNumber"`
	EmployeeName   string  `json:"employeeName"`
	TotalOrders    int64   `json:"totalOrders"`
	TotalSales     float64 `json:"totalSales"`
}

// InventoryStatus is one row of the stock availability report: stock on
// hand minus quantity reserved by in-process and on-hold orders.
type InventoryStatus struct {
	ProductCode     string `json:"productCode"`
	ProductName     string `json:"productName"`
	ProductLine     string `json:"productLine"`
	QuantityInStock int    `json:"quantityInStock"`
	Reserved        int    `json:"reserved"`
	Available       int    `json:"available"`
}

// DashboardStats aggregates the landing-page counters.
type DashboardStats struct {
	TotalOrders    int64   `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalCustomers int64   `json:"totalCustomers"`
	LowStock       int64   `json:"lowStock"`
}
