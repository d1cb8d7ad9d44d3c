package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Order is the header of a purchase order. Status is an open string set
// ("In Process", "Shipped", "On Hold", "Cancelled", ...); no state machine
// is enforced at this layer.
type Order struct {
	bun.BaseModel `bun:"table:orders"`

	Number         int64      `bun:"orderNumber,pk,autoincrement"`
	OrderDate      time.Time  `bun:"orderDate,notnull"`
	RequiredDate   time.Time  `bun:"requiredDate,notnull"`
	ShippedDate    *time.Time `bun:"shippedDate"`
	Status         string     `bun:"status,notnull"`
	Comments       string     `bun:"comments"`
	CustomerNumber int64      `bun:"customerNumber,notnull"`
}

// OrderDetail is one line of an order. A line exists only as a child of
// exactly one order; LineNumber is unique within its order and assigned by
// insertion order, 1-based.
type OrderDetail struct {
	bun.BaseModel `bun:"table:orderdetails"`

	OrderNumber int64   `bun:"orderNumber,pk"`
	ProductCode string  `bun:"productCode,pk"`
	Quantity    int     `bun:"quantityOrdered,notnull"`
	PriceEach   float64 `bun:"priceEach,notnull"`
	LineNumber  int     `bun:"orderLineNumber,notnull"`
}
