package app

import (
	"github.com/sirupsen/logrus"

	"github.com/gyanbakery/storefront/config"
	"github.com/gyanbakery/storefront/internal/catalog"
	"github.com/gyanbakery/storefront/internal/content"
	"github.com/gyanbakery/storefront/internal/user"
	"github.com/gyanbakery/storefront/pkg/kvstore"
)

// EnsureSeeded writes the default collections for keys that were never
// written, once, at startup. Reads still fall back to the same
// defaults, so a store that drops these writes behaves identically.
func EnsureSeeded(store kvstore.Store, env config.AppEnv, log *logrus.Entry) {
	seedIfAbsent(store, catalog.StoreKey, catalog.StorefrontSeed, log)
	seedIfAbsent(store, user.StoreKey, func() []user.User { return user.Seed(env.AdminName, env.AdminEmail) }, log)
	seedIfAbsent(store, content.GalleryKey, content.GallerySeed, log)
	seedIfAbsent(store, content.BlogsKey, content.BlogSeed, log)
	seedIfAbsent(store, content.ReviewsKey, content.ReviewSeed, log)
	seedIfAbsent(store, content.VideosKey, content.VideoSeed, log)
}

func seedIfAbsent[T any](store kvstore.Store, key string, seed func() []T, log *logrus.Entry) {
	if store.Has(key) {
		return
	}
	items := seed()
	kvstore.SetJSON(store, key, items)
	log.Debugf("seeded %s with %d records", key, len(items))
}
