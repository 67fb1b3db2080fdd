package content

import (
	"github.com/gyanbakery/storefront/pkg/kvstore"
)

// Entity is implemented by every feed record type. The identifier is
// generated once at creation and stays stable across edits, so
// deleting one record never invalidates references to the others.
type Entity interface {
	EntityID() string
}

// Feed is the shared engine behind the gallery, blog, review and video
// collections: one persisted array, newest-first ordering, id-based
// update and delete.
type Feed[T Entity] struct {
	store kvstore.Store
	key   string
	seed  func() []T
}

func NewFeed[T Entity](store kvstore.Store, key string, seed func() []T) *Feed[T] {
	return &Feed[T]{
		store: store,
		key:   key,
		seed:  seed,
	}
}

func (f *Feed[T]) List() []T {
	return kvstore.GetJSON(f.store, f.key, f.seed())
}

func (f *Feed[T]) Find(id string) (T, bool) {
	for _, v := range f.List() {
		if v.EntityID() == id {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Prepend inserts at the front, newest-first.
func (f *Feed[T]) Prepend(v T) {
	f.save(append([]T{v}, f.List()...))
}

// Append inserts at the back; the gallery grows this way.
func (f *Feed[T]) Append(v T) {
	f.save(append(f.List(), v))
}

func (f *Feed[T]) Update(id string, v T) bool {
	items := f.List()
	for i := range items {
		if items[i].EntityID() == id {
			items[i] = v
			f.save(items)
			return true
		}
	}
	return false
}

func (f *Feed[T]) Delete(id string) bool {
	items := f.List()
	kept := make([]T, 0, len(items))
	for _, v := range items {
		if v.EntityID() != id {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(items) {
		return false
	}
	f.save(kept)
	return true
}

func (f *Feed[T]) save(items []T) {
	kvstore.SetJSON(f.store, f.key, items)
}
