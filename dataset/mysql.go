package dataset

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/erin-james/ai-query-interface/model"
)

// MySQLProvider loads the four datasets from MySQL tables created by the
// migrations in migration/.
type MySQLProvider struct {
	db *sqlx.DB
}

func NewMySQLProvider(db *sqlx.DB) *MySQLProvider {
	return &MySQLProvider{db: db}
}

var selectCustomersQuery = "SELECT cid, name FROM customers"

var selectOrderLinesQuery = "SELECT cid, item_id, quantity, unit_price, ordered_at FROM order_lines"

var selectInventoryQuery = "SELECT item_id, name, stock FROM inventory"

var selectPriceListQuery = "SELECT item_id, baseprice FROM pricelist"

func (p *MySQLProvider) Load(ctx context.Context) (*model.Snapshot, error) {
	snap := &model.Snapshot{}

	if err := p.db.SelectContext(ctx, &snap.Customers, selectCustomersQuery); err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	if err := p.db.SelectContext(ctx, &snap.OrderLines, selectOrderLinesQuery); err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}
	if err := p.db.SelectContext(ctx, &snap.Inventory, selectInventoryQuery); err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	if err := p.db.SelectContext(ctx, &snap.PriceList, selectPriceListQuery); err != nil {
		return nil, fmt.Errorf("load pricelist: %w", err)
	}
	return snap, nil
}
