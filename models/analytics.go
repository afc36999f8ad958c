package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

type QRCodeScan struct {
	ID          int64     `db:"id" json:"id"`
	TableNumber string    `db:"table_number" json:"table_number"`
	ScannedAt   time.Time `db:"scanned_at" json:"scanned_at"`
}

type PopularItem struct {
	MenuItem      MenuItem `json:"menu_item"`
	TotalQuantity int      `json:"total_quantity"`
	TotalRevenue  float64  `json:"total_revenue"`
}

type RevenueStats struct {
	TotalOrders       int     `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// AggregatePopularItems groups order lines by menu item and sums quantity and
// revenue, using the unit price stored on each line rather than the current
// menu price. Results are sorted by quantity descending; ties keep
// first-encountered order. Lines without an attached MenuItem are skipped.
func AggregatePopularItems(items []OrderItem) []PopularItem {
	index := make(map[uuid.UUID]int)
	stats := make([]PopularItem, 0)

	for _, item := range items {
		if item.MenuItem == nil {
			continue
		}
		i, ok := index[item.MenuItemID]
		if !ok {
			i = len(stats)
			index[item.MenuItemID] = i
			stats = append(stats, PopularItem{MenuItem: *item.MenuItem})
		}
		stats[i].TotalQuantity += item.Quantity
		stats[i].TotalRevenue += item.Price * float64(item.Quantity)
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].TotalQuantity > stats[b].TotalQuantity
	})
	return stats
}

// ComputeRevenueStats sums final amounts over the given orders. The caller is
// expected to have excluded cancelled orders already; an empty input yields
// zeroed stats rather than an error.
func ComputeRevenueStats(orders []Order) RevenueStats {
	stats := RevenueStats{TotalOrders: len(orders)}
	for _, order := range orders {
		stats.TotalRevenue += order.FinalAmount
	}
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}
	return stats
}
