package kvstore

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// Store is a flat key -> JSON document namespace. Every implementation
// is fail-open: a read that cannot be served reports ok = false and a
// write that cannot be persisted is dropped without surfacing an error.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Has(key string) bool
}

type StoreLogHook struct{}

func (h *StoreLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Store: " + entry.Message
	return nil
}

func (h *StoreLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// GetJSON reads and decodes the collection stored under key. A missing
// key, an unreadable backend or an undecodable value all yield def.
func GetJSON[T any](s Store, key string, def T) T {
	raw, ok := s.Get(key)
	if !ok {
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

// SetJSON encodes value and persists it under key. Failures are
// swallowed, matching the Store contract.
func SetJSON[T any](s Store, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.Set(key, raw)
}
