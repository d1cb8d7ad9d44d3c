package entity

import "github.com/uptrace/bun"

// Product represents a catalog item. The product code is immutable once
// created; update paths never touch it.
type Product struct {
	bun.BaseModel `bun:"table:products"`

	Code        string  `bun:"productCode,pk"`
	Name        string  `bun:"productName,notnull"`
	Line        string  `bun:"productLine"`
	Scale       string  `bun:"productScale"`
	Vendor      string  `bun:"productVendor"`
	Description string  `bun:"productDescription"`
	Stock       int     `bun:"quantityInStock"`
	BuyPrice    float64 `bun:"buyPrice"`
	MSRP        float64 `bun:"MSRP"`
}

// ProductLine groups products into catalog categories.
type ProductLine struct {
	bun.BaseModel `bun:"table:productlines"`

	Line        string `bun:"productLine,pk"`
	Description string `bun:"textDescription"`
}
