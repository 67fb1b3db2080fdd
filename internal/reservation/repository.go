package reservation

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gyanbakery/storefront/pkg/kvstore"
)

type Repository interface {
	List() []Reservation
	Submit(in Input) (Reservation, error)
}

type reservationRepository struct {
	store kvstore.Store
	log   *logrus.Entry
}

func NewRepository(store kvstore.Store, log *logrus.Entry) Repository {
	return &reservationRepository{
		store: store,
		log:   log,
	}
}

func (r *reservationRepository) List() []Reservation {
	return kvstore.GetJSON(r.store, StoreKey, []Reservation{})
}

// Submit appends a reservation. This is the one validated flow: any
// missing field aborts the submission with no user-visible message.
func (r *reservationRepository) Submit(in Input) (Reservation, error) {
	res := Reservation{
		Name:   strings.TrimSpace(in.Name),
		Phone:  strings.TrimSpace(in.Phone),
		Guests: strings.TrimSpace(in.Guests),
		Date:   strings.TrimSpace(in.Date),
		Time:   strings.TrimSpace(in.Time),
	}

	if res.Name == "" || res.Phone == "" || res.Guests == "" || res.Date == "" || res.Time == "" {
		return Reservation{}, ErrMissingField
	}

	now := time.Now()
	res.ID = now.UnixMilli()
	res.CreatedAt = now.UTC().Format(time.RFC3339)

	kvstore.SetJSON(r.store, StoreKey, append(r.List(), res))
	r.log.Debugf("Submit: reservation for %s guests on %s at %s", res.Guests, res.Date, res.Time)
	return res, nil
}
