package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gyanbakery/storefront/internal/analytics"
	"github.com/gyanbakery/storefront/internal/catalog"
	"github.com/gyanbakery/storefront/internal/order"
	"github.com/gyanbakery/storefront/pkg/money"
)

// ConsoleConfirmer answers delete prompts from an input stream. Any
// answer starting with y is affirmative.
type ConsoleConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsoleConfirmer(in io.Reader, out io.Writer) *ConsoleConfirmer {
	return &ConsoleConfirmer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (c *ConsoleConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N] ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")
}

// ConsoleRenderer is the plain-text rendering surface for the admin
// overview. Controllers hand it display rows; any other surface could
// take its place.
type ConsoleRenderer struct {
	out io.Writer
}

func NewConsoleRenderer(out io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{
		out: out,
	}
}

func (r *ConsoleRenderer) RenderStats(stats analytics.Stats) {
	fmt.Fprintf(r.out, "Orders: %d  Revenue: %s  Pending: %d\n", stats.Orders, stats.Revenue, stats.Pending)
}

func (r *ConsoleRenderer) RenderOrders(rows []order.Row) {
	if len(rows) == 0 {
		fmt.Fprintln(r.out, "No orders found.")
		return
	}
	for _, row := range rows {
		fmt.Fprintf(r.out, "%s  %s  %s  %s  %s  %s  %s\n",
			row.ID, row.Date, row.Customer, row.Items, row.Total, row.Payment, row.Status)
	}
}

func (r *ConsoleRenderer) RenderProducts(products []catalog.Product) {
	for _, p := range products {
		fmt.Fprintf(r.out, "%d  %s  %s  %s\n", p.ID, p.Name, p.Category, money.Format(p.Price))
	}
}

func (r *ConsoleRenderer) RenderSeries(title string, points []analytics.Point) {
	fmt.Fprintln(r.out, title)
	for _, pt := range points {
		fmt.Fprintf(r.out, "  %s: %d\n", pt.Label, pt.Value)
	}
}
