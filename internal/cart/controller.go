package cart

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gyanbakery/storefront/internal/catalog"
	"github.com/gyanbakery/storefront/internal/order"
	"github.com/gyanbakery/storefront/pkg/money"
)

// CheckoutInput carries the checkout form fields.
type CheckoutInput struct {
	CustomerName  string
	CustomerEmail string
	Payment       string
}

type Controller struct {
	repo   Repository
	orders order.Repository
	log    *logrus.Entry
}

func NewController(repo Repository, orders order.Repository, log *logrus.Entry) *Controller {
	return &Controller{
		repo:   repo,
		orders: orders,
		log:    log,
	}
}

func (c *Controller) Items() []Item {
	return c.repo.Items()
}

// AddToCart merges repeat adds of the same product into one line,
// bumping its quantity.
func (c *Controller) AddToCart(p catalog.Product) {
	items := c.repo.Items()
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Qty++
			c.repo.Save(items)
			return
		}
	}

	c.repo.Save(append(items, Item{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
		Qty:         1,
	}))
}

// AddCustomCake always appends a distinct line, custom cakes are never
// merged.
func (c *Controller) AddCustomCake(cake CustomCake) Item {
	item := Item{
		ID:          time.Now().UnixMilli(),
		Name:        "Custom Cake",
		Price:       cake.Price,
		Description: fmt.Sprintf("%s, %gkg, Msg: %s", cake.Flavor, cake.Weight, cake.Message),
		Image:       customCakeImage,
		Qty:         1,
		IsCustom:    true,
	}
	c.repo.Save(append(c.repo.Items(), item))
	return item
}

func (c *Controller) SetQty(id int64, qty int) {
	if qty < 1 {
		qty = 1
	}
	items := c.repo.Items()
	for i := range items {
		if items[i].ID == id {
			items[i].Qty = qty
			c.repo.Save(items)
			return
		}
	}
}

func (c *Controller) Remove(id int64) {
	items := c.repo.Items()
	kept := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.repo.Save(kept)
}

// Count sums quantities across all lines, the cart badge number.
func (c *Controller) Count() int {
	count := 0
	for _, it := range c.repo.Items() {
		count += it.Qty
	}
	return count
}

// Badge returns the rendered badge text, empty when the cart is.
func (c *Controller) Badge() string {
	count := c.Count()
	if count == 0 {
		return ""
	}
	return strconv.Itoa(count)
}

// Checkout turns the cart into an order and clears it.
func (c *Controller) Checkout(in CheckoutInput) (order.Order, error) {
	items := c.repo.Items()
	if len(items) == 0 {
		return order.Order{}, errEmptyCart
	}

	total := 0
	lines := make([]order.Item, 0, len(items))
	for _, it := range items {
		total += it.Price * it.Qty
		lines = append(lines, order.Item{
			Name:  it.Name,
			Price: it.Price,
			Qty:   it.Qty,
		})
	}

	now := time.Now()
	o := order.Order{
		ID:            strconv.FormatInt(now.UnixMilli(), 10),
		Date:          now.Format("1/2/2006, 3:04:05 PM"),
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Items:         lines,
		Total:         money.Format(total),
		Payment:       in.Payment,
		Status:        order.StatusReceived,
	}

	c.orders.Create(o)
	c.repo.Clear()

	c.log.Infof("Checkout: order %s placed, total %s", o.ID, o.Total)
	return o, nil
}
