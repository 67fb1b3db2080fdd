package user

import (
	"github.com/gyanbakery/storefront/pkg/kvstore"
)

type Repository interface {
	List() []User
	FindByEmail(email string) (User, bool)
	Create(u User) error
	Credit(email string, amount int) error
	Delete(email string) error
}

type userRepository struct {
	store kvstore.Store
	seed  func() []User
}

func NewRepository(store kvstore.Store, seed func() []User) Repository {
	return &userRepository{
		store: store,
		seed:  seed,
	}
}

func (r *userRepository) List() []User {
	return kvstore.GetJSON(r.store, StoreKey, r.seed())
}

func (r *userRepository) FindByEmail(email string) (User, bool) {
	for _, u := range r.List() {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

func (r *userRepository) Create(u User) error {
	users := r.List()
	for _, existing := range users {
		if existing.Email == u.Email {
			return errEmailTaken
		}
	}
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	kvstore.SetJSON(r.store, StoreKey, append(users, u))
	return nil
}

func (r *userRepository) Credit(email string, amount int) error {
	users := r.List()
	for i := range users {
		if users[i].Email == email {
			users[i].Wallet += amount
			kvstore.SetJSON(r.store, StoreKey, users)
			return nil
		}
	}
	return errUserNotFound
}

// Delete removes the user with the given email. Admin accounts are
// protected regardless of who asks.
func (r *userRepository) Delete(email string) error {
	users := r.List()
	kept := make([]User, 0, len(users))
	found := false
	for _, u := range users {
		if u.Email == email {
			if u.Role == RoleAdmin {
				return ErrAdminProtected
			}
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return errUserNotFound
	}
	kvstore.SetJSON(r.store, StoreKey, kept)
	return nil
}
