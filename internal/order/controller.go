package order

import (
	"strings"

	"github.com/sirupsen/logrus"
)

type Confirmer interface {
	Confirm(prompt string) bool
}

// Row is the admin table view of one order.
type Row struct {
	ID       string
	Date     string
	Customer string
	Email    string
	Items    string
	Total    string
	Payment  string
	Status   Status
}

type Controller struct {
	repo    Repository
	confirm Confirmer
	log     *logrus.Entry
}

func NewController(repo Repository, confirm Confirmer, log *logrus.Entry) *Controller {
	return &Controller{
		repo:    repo,
		confirm: confirm,
		log:     log,
	}
}

func (c *Controller) List() []Row {
	orders := c.repo.List()
	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		names := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			names = append(names, it.Name)
		}

		customer := o.CustomerName
		if customer == "" {
			customer = "N/A"
		}
		payment := o.Payment
		if payment == "" {
			payment = "N/A"
		}

		rows = append(rows, Row{
			ID:       o.ID,
			Date:     o.Date,
			Customer: customer,
			Email:    o.CustomerEmail,
			Items:    strings.Join(names, ", "),
			Total:    o.Total,
			Payment:  payment,
			Status:   o.Status,
		})
	}
	return rows
}

func (c *Controller) UpdateStatus(id string, status Status) bool {
	ok := c.repo.UpdateStatus(id, status)
	if !ok {
		c.log.Debugf("UpdateStatus: order %s not found", id)
	}
	return ok
}

// Invoice returns the full record for invoice rendering.
func (c *Controller) Invoice(id string) (Order, error) {
	o, ok := c.repo.Find(id)
	if !ok {
		return Order{}, errOrderNotFound
	}
	return o, nil
}

func (c *Controller) Delete(id string) bool {
	if !c.confirm.Confirm("Delete this order?") {
		return false
	}
	return c.repo.Delete(id)
}
