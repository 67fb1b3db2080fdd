package app

import (
	"github.com/sirupsen/logrus"

	"github.com/gyanbakery/storefront/config"
	"github.com/gyanbakery/storefront/pkg/database"
	"github.com/gyanbakery/storefront/pkg/kvstore"
)

type AppLogHook struct{}

func (h *AppLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "App: " + entry.Message
	return nil
}

func (h *AppLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// OpenStore builds the configured store backend. A backend that cannot
// be opened degrades to the in-memory store rather than failing the
// start; the worst case is an empty-looking shop.
func OpenStore(cfg config.StoreConfig, env config.AppEnv, log *logrus.Entry) kvstore.Store {
	switch cfg.Backend {
	case "file":
		st, err := kvstore.NewFile(cfg.DataDir, log)
		if err != nil {
			log.Warnf("file store unavailable, falling back to memory: %v", err)
			return kvstore.NewMemory()
		}
		return st
	case "db":
		db, err := database.Open(database.Config{
			Driver:   cfg.Driver,
			Path:     cfg.Path,
			Host:     env.PgHost,
			Port:     env.PgPort,
			Username: env.PgUser,
			Password: env.PgPassword,
			DBName:   env.PgDbName,
			SSLMode:  env.SSLMode,
			TimeZone: env.TimeZone,
		})
		if err != nil {
			log.Warnf("database unavailable, falling back to memory: %v", err)
			return kvstore.NewMemory()
		}
		st, err := kvstore.NewDB(db, log)
		if err != nil {
			log.Warnf("database store unavailable, falling back to memory: %v", err)
			return kvstore.NewMemory()
		}
		return st
	default:
		return kvstore.NewMemory()
	}
}
