package query

import (
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/erin-james/ai-query-interface/model"
)

// PricedItem is one joined (item id, display name, price) row.
type PricedItem struct {
	ItemID string
	Name   string
	Price  decimal.Decimal
}

// dataAccess exposes read-only joined views over one snapshot. Joins are
// best-effort: a dangling reference or a malformed numeric field drops
// that row from the aggregate, with a log note, instead of failing the
// whole computation.
type dataAccess struct {
	snap      *model.Snapshot
	customers map[string]model.Customer
	items     map[string]model.InventoryItem
	logger    *zap.Logger
}

func newDataAccess(snap *model.Snapshot, logger *zap.Logger) *dataAccess {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &dataAccess{
		snap:      snap,
		customers: snap.CustomerByID(),
		items:     snap.ItemByID(),
		logger:    logger,
	}
}

// customerSpend sums quantity x unit price per customer over all order
// lines that join to a known customer.
func (a *dataAccess) customerSpend() map[string]decimal.Decimal {
	res := make(map[string]decimal.Decimal)
	for _, line := range a.snap.OrderLines {
		if line.Quantity < 0 || line.UnitPrice.IsNegative() {
			a.dropRow("order line", "negative quantity or unit price", line.CustomerID, line.ItemID)
			continue
		}
		if _, ok := a.customers[line.CustomerID]; !ok {
			a.dropRow("order line", "unknown customer", line.CustomerID, line.ItemID)
			continue
		}
		spend := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		res[line.CustomerID] = res[line.CustomerID].Add(spend)
	}
	return res
}

// itemSalesCount sums sold quantity per item over all order lines that
// join to a known inventory item.
func (a *dataAccess) itemSalesCount() map[string]int {
	res := make(map[string]int)
	for _, line := range a.snap.OrderLines {
		if line.Quantity < 0 {
			a.dropRow("order line", "negative quantity", line.CustomerID, line.ItemID)
			continue
		}
		if _, ok := a.items[line.ItemID]; !ok {
			a.dropRow("order line", "unknown item", line.CustomerID, line.ItemID)
			continue
		}
		res[line.ItemID] += line.Quantity
	}
	return res
}

// listedPrices joins positive-priced price-list entries to inventory for
// display names. Zero and negative prices are placeholder rows in the
// source exports and are excluded from every price aggregate.
func (a *dataAccess) listedPrices() []PricedItem {
	var res []PricedItem
	for _, entry := range a.snap.PriceList {
		if !entry.Price.IsPositive() {
			continue
		}
		item, ok := a.items[entry.ItemID]
		if !ok {
			a.dropRow("pricelist entry", "unknown item", "", entry.ItemID)
			continue
		}
		res = append(res, PricedItem{ItemID: entry.ItemID, Name: item.Name, Price: entry.Price})
	}
	return res
}

// itemsUnderPrice returns listed items with price strictly below the
// threshold, cheapest first.
func (a *dataAccess) itemsUnderPrice(threshold decimal.Decimal) []PricedItem {
	var res []PricedItem
	for _, it := range a.listedPrices() {
		if it.Price.LessThan(threshold) {
			res = append(res, it)
		}
	}
	sortByPrice(res, true)
	return res
}

// itemsOverPrice returns listed items with price strictly above the
// threshold, most expensive first.
func (a *dataAccess) itemsOverPrice(threshold decimal.Decimal) []PricedItem {
	var res []PricedItem
	for _, it := range a.listedPrices() {
		if it.Price.GreaterThan(threshold) {
			res = append(res, it)
		}
	}
	sortByPrice(res, false)
	return res
}

func (a *dataAccess) outOfStock() []model.InventoryItem {
	var res []model.InventoryItem
	for _, item := range a.snap.Inventory {
		if item.Stock == 0 {
			res = append(res, item)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

// sortByPrice orders items by price, with the item identifier as a
// deterministic tie-break.
func sortByPrice(items []PricedItem, ascending bool) {
	sort.Slice(items, func(i, j int) bool {
		switch items[i].Price.Cmp(items[j].Price) {
		case -1:
			return ascending
		case 1:
			return !ascending
		default:
			return items[i].ItemID < items[j].ItemID
		}
	})
}

func (a *dataAccess) dropRow(kind, reason, customerID, itemID string) {
	a.logger.Warn("dropping row from aggregate",
		zap.String("kind", kind),
		zap.String("reason", reason),
		zap.String("cid", customerID),
		zap.String("item_id", itemID),
	)
}
