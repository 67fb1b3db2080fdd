package cart

import (
	"github.com/gyanbakery/storefront/pkg/kvstore"
)

type Repository interface {
	Items() []Item
	Save(items []Item)
	Clear()
}

type cartRepository struct {
	store kvstore.Store
}

func NewRepository(store kvstore.Store) Repository {
	return &cartRepository{
		store: store,
	}
}

func (r *cartRepository) Items() []Item {
	return kvstore.GetJSON(r.store, StoreKey, []Item{})
}

func (r *cartRepository) Save(items []Item) {
	kvstore.SetJSON(r.store, StoreKey, items)
}

func (r *cartRepository) Clear() {
	kvstore.SetJSON(r.store, StoreKey, []Item{})
}
