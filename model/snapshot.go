package model

// Snapshot is an immutable point-in-time view of the four datasets.
// A snapshot is built once by a dataset provider and never mutated;
// every question is answered against exactly one snapshot.
type Snapshot struct {
	Customers  []Customer
	OrderLines []OrderLine
	Inventory  []InventoryItem
	PriceList  []PriceListEntry
}

// CustomerByID returns a lookup map keyed by customer identifier.
func (s *Snapshot) CustomerByID() map[string]Customer {
	res := make(map[string]Customer, len(s.Customers))
	for _, c := range s.Customers {
		res[c.ID] = c
	}
	return res
}

// ItemByID returns a lookup map keyed by item identifier.
func (s *Snapshot) ItemByID() map[string]InventoryItem {
	res := make(map[string]InventoryItem, len(s.Inventory))
	for _, it := range s.Inventory {
		res[it.ID] = it
	}
	return res
}
