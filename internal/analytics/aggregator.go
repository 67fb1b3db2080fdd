// Package analytics derives the dashboard views from order and product
// snapshots. Everything here is pure computation, recomputed on every
// call; nothing is cached or persisted.
package analytics

import (
	"strings"

	"github.com/gyanbakery/storefront/internal/catalog"
	"github.com/gyanbakery/storefront/internal/order"
	"github.com/gyanbakery/storefront/pkg/money"
)

// Categories is the fixed set the revenue chart breaks down by.
func Categories() []string {
	return []string{"cakes", "breads", "pastries", "cookies"}
}

// Point is one sample of a chart series.
type Point struct {
	Label string
	Value int
}

type Stats struct {
	Orders  int
	Revenue string
	Pending int
}

// seriesWindow bounds the order-value time series.
const seriesWindow = 7

// OrderSeries returns the last orders as a time series of numeric
// totals. Totals are stored currency-formatted, so values come from
// stripping the formatting; labels are the date up to the first comma.
func OrderSeries(orders []order.Order) []Point {
	start := 0
	if len(orders) > seriesWindow {
		start = len(orders) - seriesWindow
	}

	points := make([]Point, 0, len(orders)-start)
	for _, o := range orders[start:] {
		label := o.Date
		if idx := strings.Index(label, ","); idx >= 0 {
			label = label[:idx]
		}
		points = append(points, Point{
			Label: label,
			Value: money.Parse(o.Total),
		})
	}
	return points
}

// RevenueByCategory attributes line-item revenue to catalog categories.
// Items are matched to products by name: historical orders persist only
// the item name, so there is no id to join on. A product renamed after
// the fact therefore drops its old orders from the breakdown.
func RevenueByCategory(orders []order.Order, products []catalog.Product) []Point {
	categoryByName := make(map[string]string, len(products))
	for _, p := range products {
		// first product with a given name wins
		if _, ok := categoryByName[p.Name]; ok {
			continue
		}
		categoryByName[p.Name] = p.Category
	}

	totals := make(map[string]int)
	for _, o := range orders {
		for _, item := range o.Items {
			cat, ok := categoryByName[item.Name]
			if !ok {
				continue
			}
			qty := item.Qty
			if qty == 0 {
				qty = 1
			}
			totals[cat] += item.Price * qty
		}
	}

	points := make([]Point, 0, len(Categories()))
	for _, cat := range Categories() {
		points = append(points, Point{
			Label: titleCase(cat),
			Value: totals[cat],
		})
	}
	return points
}

// ComputeStats summarizes the order collection for the dashboard
// header: count, formatted revenue, and the derived pending count
// (anything not yet delivered).
func ComputeStats(orders []order.Order) Stats {
	revenue := 0
	pending := 0
	for _, o := range orders {
		revenue += money.Parse(o.Total)
		if o.Pending() {
			pending++
		}
	}
	return Stats{
		Orders:  len(orders),
		Revenue: money.Format(revenue),
		Pending: pending,
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
