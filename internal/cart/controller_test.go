package cart

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyanbakery/storefront/internal/catalog"
	"github.com/gyanbakery/storefront/internal/order"
	"github.com/gyanbakery/storefront/pkg/kvstore"
)

func newTestController() (*Controller, Repository, order.Repository) {
	store := kvstore.NewMemory()
	repo := NewRepository(store)
	orders := order.NewRepository(store)
	return NewController(repo, orders, logrus.NewEntry(logrus.New())), repo, orders
}

var croissant = catalog.Product{ID: 301, Name: "Croissant", Price: 80, Description: "Buttery flaky croissant.", Category: "pastries"}

func TestAddToCart_RepeatAddMergesIntoOneLine(t *testing.T) {
	ctl, repo, _ := newTestController()

	ctl.AddToCart(croissant)
	ctl.AddToCart(croissant)

	items := repo.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Qty)
	assert.Equal(t, 2, ctl.Count())
}

func TestAddCustomCake_AlwaysDistinctLines(t *testing.T) {
	ctl, repo, _ := newTestController()

	cake := CustomCake{Flavor: "Chocolate", Weight: 1.5, Message: "Happy Birthday", Price: 900}
	ctl.AddCustomCake(cake)
	ctl.AddCustomCake(cake)

	items := repo.Items()
	require.Len(t, items, 2)
	for _, it := range items {
		assert.True(t, it.IsCustom)
		assert.Equal(t, 1, it.Qty)
		assert.Equal(t, 900, it.Price)
		assert.Equal(t, "Chocolate, 1.5kg, Msg: Happy Birthday", it.Description)
	}
}

func TestBadge(t *testing.T) {
	ctl, _, _ := newTestController()

	assert.Equal(t, "", ctl.Badge())

	ctl.AddToCart(croissant)
	ctl.AddToCart(croissant)
	ctl.AddToCart(catalog.Product{ID: 401, Name: "Choco Chip Cookies", Price: 150})

	assert.Equal(t, "3", ctl.Badge())
}

func TestSetQtyAndRemove(t *testing.T) {
	ctl, repo, _ := newTestController()

	ctl.AddToCart(croissant)
	ctl.SetQty(croissant.ID, 5)
	assert.Equal(t, 5, repo.Items()[0].Qty)

	ctl.SetQty(croissant.ID, 0)
	assert.Equal(t, 1, repo.Items()[0].Qty)

	ctl.Remove(croissant.ID)
	assert.Empty(t, repo.Items())
}

func TestCheckout(t *testing.T) {
	ctl, repo, orders := newTestController()

	ctl.AddToCart(croissant)
	ctl.AddToCart(croissant)
	ctl.AddToCart(catalog.Product{ID: 403, Name: "Macarons", Price: 350})

	o, err := ctl.Checkout(CheckoutInput{CustomerName: "Priya", CustomerEmail: "priya@example.com", Payment: "UPI"})
	require.NoError(t, err)

	assert.Equal(t, "₹510", o.Total)
	assert.Equal(t, order.StatusReceived, o.Status)
	assert.Equal(t, "Priya", o.CustomerName)
	require.Len(t, o.Items, 2)
	assert.Equal(t, 2, o.Items[0].Qty)

	assert.Empty(t, repo.Items())
	require.Len(t, orders.List(), 1)
	assert.Equal(t, o.ID, orders.List()[0].ID)
}

func TestCheckout_EmptyCart(t *testing.T) {
	ctl, _, orders := newTestController()

	_, err := ctl.Checkout(CheckoutInput{CustomerName: "Priya"})
	assert.Error(t, err)
	assert.Empty(t, orders.List())
}
