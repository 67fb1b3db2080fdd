package order

import (
	"github.com/gyanbakery/storefront/pkg/kvstore"
)

type Repository interface {
	List() []Order
	Find(id string) (Order, bool)
	Create(o Order)
	UpdateStatus(id string, status Status) bool
	Delete(id string) bool
}

type orderRepository struct {
	store kvstore.Store
}

func NewRepository(store kvstore.Store) Repository {
	return &orderRepository{
		store: store,
	}
}

func (r *orderRepository) List() []Order {
	return kvstore.GetJSON(r.store, StoreKey, []Order{})
}

func (r *orderRepository) Find(id string) (Order, bool) {
	for _, o := range r.List() {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

func (r *orderRepository) Create(o Order) {
	kvstore.SetJSON(r.store, StoreKey, append(r.List(), o))
}

func (r *orderRepository) UpdateStatus(id string, status Status) bool {
	orders := r.List()
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			kvstore.SetJSON(r.store, StoreKey, orders)
			return true
		}
	}
	return false
}

func (r *orderRepository) Delete(id string) bool {
	orders := r.List()
	kept := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(orders) {
		return false
	}
	kvstore.SetJSON(r.store, StoreKey, kept)
	return true
}
