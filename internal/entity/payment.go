package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Payment records money received from a customer. Payments are append-only;
// there is no update or delete path.
type Payment struct {
	bun.BaseModel `bun:"table:payments"`

	CustomerNumber int64     `bun:"customerNumber,pk"`
	CheckNumber    string    `bun:"checkNumber,pk"`
	PaymentDate    time.Time `bun:"paymentDate,notnull"`
	Amount         float64   `bun:"amount,notnull"`
}
