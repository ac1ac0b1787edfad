package query

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/erin-james/ai-query-interface/model"
)

// ErrNoData reports that the table backing the requested aggregate is
// empty. It never escapes the service boundary.
var ErrNoData = errors.New("no data to answer")

type TopCustomerResult struct {
	CustomerID string
	Name       string
	Total      decimal.Decimal
}

type TopItemResult struct {
	ItemID string
	Name   string
	Units  int
}

type PriceFilterResult struct {
	Threshold decimal.Decimal
	Items     []PricedItem
}

type AveragePriceResult struct {
	Average decimal.Decimal
	Listed  int
}

type OutOfStockResult struct {
	Items []model.InventoryItem
}

// resolveTopCustomer picks the customer with the highest total spend.
// Ties go to the lexicographically smallest identifier so repeated runs
// give the same answer.
func resolveTopCustomer(a *dataAccess) (TopCustomerResult, error) {
	spend := a.customerSpend()
	if len(spend) == 0 {
		return TopCustomerResult{}, ErrNoData
	}

	var topID string
	var topTotal decimal.Decimal
	found := false
	for id, total := range spend {
		if !found || total.GreaterThan(topTotal) || (total.Equal(topTotal) && id < topID) {
			topID = id
			topTotal = total
			found = true
		}
	}

	return TopCustomerResult{
		CustomerID: topID,
		Name:       a.customers[topID].Name,
		Total:      topTotal,
	}, nil
}

// resolveTopItem picks the item with the most units sold, with the same
// tie-break rule as resolveTopCustomer.
func resolveTopItem(a *dataAccess) (TopItemResult, error) {
	sales := a.itemSalesCount()
	if len(sales) == 0 {
		return TopItemResult{}, ErrNoData
	}

	var topID string
	var topUnits int
	found := false
	for id, units := range sales {
		if !found || units > topUnits || (units == topUnits && id < topID) {
			topID = id
			topUnits = units
			found = true
		}
	}

	return TopItemResult{
		ItemID: topID,
		Name:   a.items[topID].Name,
		Units:  topUnits,
	}, nil
}

// resolveItemsUnderPrice never fails: an empty list is a valid answer.
func resolveItemsUnderPrice(a *dataAccess, threshold decimal.Decimal) PriceFilterResult {
	return PriceFilterResult{Threshold: threshold, Items: a.itemsUnderPrice(threshold)}
}

func resolveItemsOverPrice(a *dataAccess, threshold decimal.Decimal) PriceFilterResult {
	return PriceFilterResult{Threshold: threshold, Items: a.itemsOverPrice(threshold)}
}

func resolveAveragePrice(a *dataAccess) (AveragePriceResult, error) {
	listed := a.listedPrices()
	if len(listed) == 0 {
		return AveragePriceResult{}, ErrNoData
	}

	sum := decimal.Zero
	for _, it := range listed {
		sum = sum.Add(it.Price)
	}
	return AveragePriceResult{
		Average: sum.Div(decimal.NewFromInt(int64(len(listed)))),
		Listed:  len(listed),
	}, nil
}

func resolveMostExpensiveItem(a *dataAccess) (PricedItem, error) {
	listed := a.listedPrices()
	if len(listed) == 0 {
		return PricedItem{}, ErrNoData
	}
	sortByPrice(listed, false)
	return listed[0], nil
}

func resolveCheapestItem(a *dataAccess) (PricedItem, error) {
	listed := a.listedPrices()
	if len(listed) == 0 {
		return PricedItem{}, ErrNoData
	}
	sortByPrice(listed, true)
	return listed[0], nil
}

func resolveOutOfStockItems(a *dataAccess) (OutOfStockResult, error) {
	if len(a.snap.Inventory) == 0 {
		return OutOfStockResult{}, ErrNoData
	}
	return OutOfStockResult{Items: a.outOfStock()}, nil
}
