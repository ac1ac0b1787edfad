package model

import "github.com/shopspring/decimal"

type InventoryItem struct {
	ID    string `db:"item_id" json:"item_id"`
	Name  string `db:"name" json:"name"`
	Stock int    `db:"stock" json:"stock"`
}

type PriceListEntry struct {
	ItemID string          `db:"item_id" json:"item_id"`
	Price  decimal.Decimal `db:"baseprice" json:"baseprice"`
}
