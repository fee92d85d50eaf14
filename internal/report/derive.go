// Package report computes dashboard and report figures from products and
// orders. Nothing here is stored; every call recomputes from its inputs.
package report

import (
	"fmt"
	"sort"

	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/report/dto"
	"github.com/shopspring/decimal"
)

const (
	DashboardSeriesLength = 7
	SummarySeriesLength   = 8
	TopProductsLimit      = 5
	RecentOrdersLimit     = 5
)

func Revenue(orders []model.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalPrice)
	}
	return total
}

// AvgOrder is revenue over order count, zero when there are no orders.
func AvgOrder(orders []model.Order) decimal.Decimal {
	if len(orders) == 0 {
		return decimal.Zero
	}
	return Revenue(orders).DivRound(decimal.NewFromInt(int64(len(orders))), 2)
}

// StockCounts splits products into in stock (> lowStock), low (0 < stock <=
// lowStock) and out of stock (<= 0).
func StockCounts(products []model.Product, lowStock int) (inStock, low, out int) {
	for _, p := range products {
		switch {
		case p.Stock <= 0:
			out++
		case p.Stock <= lowStock:
			low++
		default:
			inStock++
		}
	}
	return inStock, low, out
}

func ActiveAlerts(products []model.Product) int {
	sum := 0
	for _, p := range products {
		if p.Alerts > 0 {
			sum += p.Alerts
		}
	}
	return sum
}

// RevenueSeries sums order totals per date, sorted by date, keeping the last n
// dates. With no dated orders it returns n zero points labelled "Day i".
func RevenueSeries(orders []model.Order, n int) []dto.SeriesPoint {
	byDate := map[string]decimal.Decimal{}
	for _, o := range orders {
		if o.Date == "" {
			continue
		}
		byDate[o.Date] = byDate[o.Date].Add(o.TotalPrice)
	}

	if len(byDate) == 0 {
		points := make([]dto.SeriesPoint, n)
		for i := range points {
			points[i] = dto.SeriesPoint{Date: fmt.Sprintf("Day %d", i+1), Value: decimal.Zero}
		}
		return points
	}

	points := make([]dto.SeriesPoint, 0, len(byDate))
	for date, value := range byDate {
		points = append(points, dto.SeriesPoint{Date: date, Value: value})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	if len(points) > n {
		points = points[len(points)-n:]
	}
	return points
}

// StatusBreakdown always lists the four known statuses first. A blank status
// counts as Pending.
func StatusBreakdown(orders []model.Order) dto.StatusBreakdown {
	counts := make([]dto.StatusCount, 0, len(model.OrderStatuses))
	index := map[model.OrderStatus]int{}
	for _, s := range model.OrderStatuses {
		index[s] = len(counts)
		counts = append(counts, dto.StatusCount{Status: s})
	}

	for _, o := range orders {
		status := o.Status
		if status == "" {
			status = model.OrderPending
		}
		i, ok := index[status]
		if !ok {
			i = len(counts)
			index[status] = i
			counts = append(counts, dto.StatusCount{Status: status})
		}
		counts[i].Count++
	}

	total := len(orders)
	if total == 0 {
		total = 1
	}
	return dto.StatusBreakdown{Counts: counts, Total: total}
}

// TopProducts ranks revenue by product name, falling back to product id and
// then "Unknown".
func TopProducts(orders []model.Order, limit int) []dto.ProductRevenue {
	var keys []string
	byName := map[string]decimal.Decimal{}
	for _, o := range orders {
		key := o.ProductName
		if key == "" {
			key = o.ProductID
		}
		if key == "" {
			key = "Unknown"
		}
		if _, ok := byName[key]; !ok {
			keys = append(keys, key)
		}
		byName[key] = byName[key].Add(o.TotalPrice)
	}

	ranked := make([]dto.ProductRevenue, 0, len(keys))
	for _, k := range keys {
		ranked = append(ranked, dto.ProductRevenue{Name: k, Revenue: byName[k]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Revenue.GreaterThan(ranked[j].Revenue) })
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func RecentOrders(orders []model.Order, limit int) []model.Order {
	recent := append([]model.Order(nil), orders...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

func BuildDashboard(products []model.Product, orders []model.Order, lowStock int) *dto.Dashboard {
	inStock, low, out := StockCounts(products, lowStock)
	return &dto.Dashboard{
		Revenue:       Revenue(orders),
		TotalOrders:   len(orders),
		AvgOrder:      AvgOrder(orders),
		InStock:       inStock,
		LowStock:      low,
		OutOfStock:    out,
		ActiveAlerts:  ActiveAlerts(products),
		DevicesOnline: len(products) - out,
		RevenueSeries: RevenueSeries(orders, DashboardSeriesLength),
		Status:        StatusBreakdown(orders),
	}
}

// BuildSummary counts every product with stock > 0 as in stock.
func BuildSummary(products []model.Product, orders []model.Order) *dto.Summary {
	inStock, low, out := StockCounts(products, 0)
	return &dto.Summary{
		TotalRevenue:  Revenue(orders),
		TotalOrders:   len(orders),
		AvgOrder:      AvgOrder(orders),
		InStock:       inStock + low,
		OutOfStock:    out,
		RevenueSeries: RevenueSeries(orders, SummarySeriesLength),
		Status:        StatusBreakdown(orders),
		TopProducts:   TopProducts(orders, TopProductsLimit),
		RecentOrders:  RecentOrders(orders, RecentOrdersLimit),
	}
}
