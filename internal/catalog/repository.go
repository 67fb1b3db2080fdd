package catalog

import (
	"github.com/gyanbakery/storefront/pkg/kvstore"
)

type Repository interface {
	List() []Product
	Find(id int64) (Product, bool)
	Save(p Product)
	Delete(id int64) bool
}

type productRepository struct {
	store kvstore.Store
	seed  func() []Product
}

// NewRepository wraps the store for the products collection. seed is
// evaluated on every read that misses, per the fail-open contract.
func NewRepository(store kvstore.Store, seed func() []Product) Repository {
	return &productRepository{
		store: store,
		seed:  seed,
	}
}

func (r *productRepository) List() []Product {
	return kvstore.GetJSON(r.store, StoreKey, r.seed())
}

func (r *productRepository) Find(id int64) (Product, bool) {
	for _, p := range r.List() {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (r *productRepository) Save(p Product) {
	products := r.List()
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			kvstore.SetJSON(r.store, StoreKey, products)
			return
		}
	}
	kvstore.SetJSON(r.store, StoreKey, append(products, p))
}

func (r *productRepository) Delete(id int64) bool {
	products := r.List()
	kept := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return false
	}
	kvstore.SetJSON(r.store, StoreKey, kept)
	return true
}
