package kvstore

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenStore refuses every operation, standing in for disabled or
// corrupted storage.
type brokenStore struct{}

func (brokenStore) Get(string) ([]byte, bool) { return nil, false }
func (brokenStore) Set(string, []byte)        {}
func (brokenStore) Has(string) bool           { return false }

type record struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

func TestGetJSON_RoundTrip(t *testing.T) {
	store := NewMemory()

	want := []record{{Name: "Croissant", Qty: 2}, {Name: "Macarons", Qty: 1}}
	SetJSON(store, "cart", want)

	got := GetJSON(store, "cart", []record{})
	assert.Equal(t, want, got)
}

func TestGetJSON_DefaultOnMissingKey(t *testing.T) {
	store := NewMemory()

	def := []record{{Name: "seed"}}
	got := GetJSON(store, "orders", def)
	assert.Equal(t, def, got)
}

func TestGetJSON_DefaultOnCorruptValue(t *testing.T) {
	store := NewMemory()
	store.Set("orders", []byte("{not json"))

	def := []record{{Name: "seed"}}
	got := GetJSON(store, "orders", def)
	assert.Equal(t, def, got)
}

func TestGetJSON_DefaultOnBrokenBackend(t *testing.T) {
	def := []record{{Name: "seed"}}
	got := GetJSON(brokenStore{}, "orders", def)
	assert.Equal(t, def, got)

	// writes are silently dropped, never an error
	SetJSON(brokenStore{}, "orders", def)
}

func TestMemory_Has(t *testing.T) {
	store := NewMemory()
	assert.False(t, store.Has("users"))

	SetJSON(store, "users", []record{})
	assert.True(t, store.Has("users"))
}

func TestFile_RoundTrip(t *testing.T) {
	log := logrus.NewEntry(logrus.New())
	store, err := NewFile(t.TempDir(), log)
	require.NoError(t, err)

	want := []record{{Name: "Sourdough Loaf", Qty: 3}}
	SetJSON(store, "bakeryProducts", want)

	assert.True(t, store.Has("bakeryProducts"))
	assert.Equal(t, want, GetJSON(store, "bakeryProducts", []record{}))
}

func TestFile_DefaultOnMissingKey(t *testing.T) {
	log := logrus.NewEntry(logrus.New())
	store, err := NewFile(t.TempDir(), log)
	require.NoError(t, err)

	def := []record{{Name: "seed"}}
	assert.Equal(t, def, GetJSON(store, "orders", def))
	assert.False(t, store.Has("orders"))
}
