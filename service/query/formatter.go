package query

import (
	"fmt"
	"strings"
)

// maxListedAnswers caps list-valued answers; anything beyond it becomes
// a truncation notice.
const maxListedAnswers = 20

const (
	noDataAnswer        = "Sorry, I don't have enough data to answer that yet."
	internalErrorAnswer = "Sorry, something went wrong while answering that."
)

func formatTopCustomer(r TopCustomerResult) string {
	name := r.Name
	if name == "" {
		name = r.CustomerID
	}
	return fmt.Sprintf("%s is the top customer with $%s.", name, r.Total.StringFixed(2))
}

func formatTopItem(r TopItemResult) string {
	name := r.Name
	if name == "" {
		name = r.ItemID
	}
	return fmt.Sprintf("%s is the top item with %d units sold.", name, r.Units)
}

func formatPriceFilter(direction string, r PriceFilterResult) string {
	threshold := r.Threshold.StringFixed(2)
	if len(r.Items) == 0 {
		return fmt.Sprintf("No items found with price %s $%s.", direction, threshold)
	}

	listed := r.Items
	truncated := 0
	if len(listed) > maxListedAnswers {
		truncated = len(listed) - maxListedAnswers
		listed = listed[:maxListedAnswers]
	}

	parts := make([]string, 0, len(listed))
	for _, it := range listed {
		parts = append(parts, fmt.Sprintf("%s ($%s)", it.Name, it.Price.StringFixed(2)))
	}

	answer := fmt.Sprintf("Items priced %s $%s: %s", direction, threshold, strings.Join(parts, ", "))
	if truncated > 0 {
		answer += fmt.Sprintf(" (and %d more)", truncated)
	}
	return answer + "."
}

func formatAveragePrice(r AveragePriceResult) string {
	return fmt.Sprintf("The average price of listed items is $%s.", r.Average.StringFixed(2))
}

func formatMostExpensiveItem(it PricedItem) string {
	return fmt.Sprintf("The most expensive item is %s at $%s.", it.Name, it.Price.StringFixed(2))
}

func formatCheapestItem(it PricedItem) string {
	return fmt.Sprintf("The cheapest item is %s at $%s.", it.Name, it.Price.StringFixed(2))
}

func formatOutOfStock(r OutOfStockResult) string {
	if len(r.Items) == 0 {
		return "All items are currently in stock."
	}

	items := r.Items
	truncated := 0
	if len(items) > maxListedAnswers {
		truncated = len(items) - maxListedAnswers
		items = items[:maxListedAnswers]
	}

	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}

	answer := "Out of stock items: " + strings.Join(names, ", ")
	if truncated > 0 {
		answer += fmt.Sprintf(" (and %d more)", truncated)
	}
	return answer + "."
}

func formatUnrecognized(question string) string {
	return fmt.Sprintf("Sorry, I couldn't understand %q.", question)
}
