package app

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyanbakery/storefront/config"
	"github.com/gyanbakery/storefront/internal/catalog"
	"github.com/gyanbakery/storefront/internal/content"
	"github.com/gyanbakery/storefront/internal/user"
	"github.com/gyanbakery/storefront/pkg/kvstore"
)

var testLog = logrus.NewEntry(logrus.New())

func TestEnsureSeeded(t *testing.T) {
	store := kvstore.NewMemory()
	env := config.AppEnv{AdminName: "Admin", AdminEmail: "admin@gyan.com"}

	EnsureSeeded(store, env, testLog)

	products := kvstore.GetJSON(store, catalog.StoreKey, []catalog.Product{})
	assert.Len(t, products, 17)

	users := kvstore.GetJSON(store, user.StoreKey, []user.User{})
	require.Len(t, users, 1)
	assert.Equal(t, user.RoleAdmin, users[0].Role)
	assert.Equal(t, "admin@gyan.com", users[0].Email)

	assert.Len(t, kvstore.GetJSON(store, content.GalleryKey, []content.GalleryImage{}), 4)
	assert.Len(t, kvstore.GetJSON(store, content.BlogsKey, []content.BlogPost{}), 5)
	assert.Len(t, kvstore.GetJSON(store, content.ReviewsKey, []content.Review{}), 5)
	assert.Len(t, kvstore.GetJSON(store, content.VideosKey, []content.Video{}), 5)
}

func TestEnsureSeeded_RunsOnce(t *testing.T) {
	store := kvstore.NewMemory()
	env := config.AppEnv{AdminName: "Admin", AdminEmail: "admin@gyan.com"}

	EnsureSeeded(store, env, testLog)
	kvstore.SetJSON(store, catalog.StoreKey, []catalog.Product{{ID: 1, Name: "Only"}})

	EnsureSeeded(store, env, testLog)
	assert.Len(t, kvstore.GetJSON(store, catalog.StoreKey, []catalog.Product{}), 1)
}

func TestOpenStore(t *testing.T) {
	env := config.AppEnv{}

	st := OpenStore(config.StoreConfig{Backend: "memory"}, env, testLog)
	_, ok := st.(*kvstore.Memory)
	assert.True(t, ok)

	st = OpenStore(config.StoreConfig{Backend: "file", DataDir: t.TempDir()}, env, testLog)
	_, ok = st.(*kvstore.File)
	assert.True(t, ok)
}
