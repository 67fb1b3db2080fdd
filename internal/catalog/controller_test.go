package catalog

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyanbakery/storefront/internal/media"
	"github.com/gyanbakery/storefront/pkg/kvstore"
)

type stubConfirm bool

func (s stubConfirm) Confirm(string) bool { return bool(s) }

func newTestController(confirm bool) (*Controller, Repository) {
	log := logrus.NewEntry(logrus.New())
	repo := NewRepository(kvstore.NewMemory(), StorefrontSeed)
	return NewController(repo, media.NewDecoder(log), stubConfirm(confirm), log), repo
}

func TestSeedSets(t *testing.T) {
	assert.Len(t, AdminSeed(), 3)
	assert.Len(t, StorefrontSeed(), 17)
}

func TestBrowse_CategoryFilter(t *testing.T) {
	ctl, _ := newTestController(true)

	cakes := ctl.Browse("cakes", "", SortNone)
	require.NotEmpty(t, cakes)
	for _, p := range cakes {
		assert.Equal(t, "cakes", p.Category)
	}
	assert.Len(t, cakes, 5)
}

func TestBrowse_SearchIsCaseInsensitive(t *testing.T) {
	ctl, _ := newTestController(true)

	found := ctl.Browse("", "SOURDOUGH", SortNone)
	require.Len(t, found, 1)
	assert.Equal(t, "Sourdough Loaf", found[0].Name)
}

func TestBrowse_PriceSort(t *testing.T) {
	ctl, _ := newTestController(true)

	low := ctl.Browse("", "", SortLow)
	for i := 1; i < len(low); i++ {
		assert.LessOrEqual(t, low[i-1].Price, low[i].Price)
	}

	high := ctl.Browse("", "", SortHigh)
	for i := 1; i < len(high); i++ {
		assert.GreaterOrEqual(t, high[i-1].Price, high[i].Price)
	}
}

func TestSave_NewProductGetsIDAndPlaceholder(t *testing.T) {
	ctl, repo := newTestController(true)

	p, err := ctl.Save(context.Background(), SaveInput{
		Name:     "Banana Bread",
		Category: "breads",
		Price:    90,
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, placeholderImage, p.Image)

	saved, ok := repo.Find(p.ID)
	require.True(t, ok)
	assert.Equal(t, "Banana Bread", saved.Name)
}

func TestSave_EditWithoutImageKeepsPrevious(t *testing.T) {
	ctl, repo := newTestController(true)

	created, err := ctl.Save(context.Background(), SaveInput{
		Name:     "Banana Bread",
		Category: "breads",
		Price:    90,
		ImageURL: "https://example.com/banana.jpg",
	})
	require.NoError(t, err)

	edited, err := ctl.Save(context.Background(), SaveInput{
		ID:       created.ID,
		Name:     "Banana Bread",
		Category: "breads",
		Price:    95,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/banana.jpg", edited.Image)

	replaced, err := ctl.Save(context.Background(), SaveInput{
		ID:       created.ID,
		Name:     "Banana Bread",
		Category: "breads",
		Price:    95,
		ImageURL: "https://example.com/other.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/other.jpg", replaced.Image)

	saved, ok := repo.Find(created.ID)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/other.jpg", saved.Image)
}

func TestSave_EditUnknownID(t *testing.T) {
	ctl, _ := newTestController(true)

	_, err := ctl.Save(context.Background(), SaveInput{ID: 999, Name: "Ghost"})
	assert.Error(t, err)
}

func TestDelete_RemovesExactlyOneKeepingOrder(t *testing.T) {
	ctl, repo := newTestController(true)

	before := repo.List()
	require.True(t, ctl.Delete(103))

	after := repo.List()
	assert.Len(t, after, len(before)-1)

	// relative order of survivors is untouched
	idx := 0
	for _, p := range before {
		if p.ID == 103 {
			continue
		}
		assert.Equal(t, p.ID, after[idx].ID)
		idx++
	}
}

func TestDelete_DeclinedConfirmationIsNoop(t *testing.T) {
	ctl, repo := newTestController(false)

	before := len(repo.List())
	assert.False(t, ctl.Delete(103))
	assert.Len(t, repo.List(), before)
}
