package model

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// OrderLine is one detail row of an order: a customer bought a quantity
// of one item at a unit price. Many rows may exist per customer and item.
type OrderLine struct {
	CustomerID string          `db:"cid" json:"cid"`
	ItemID     string          `db:"item_id" json:"item_id"`
	Quantity   int             `db:"quantity" json:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price" json:"unit_price"`
	OrderedAt  sql.NullTime    `db:"ordered_at" json:"-"`
}
