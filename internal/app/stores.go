// Package app wires configuration to a concrete store backend. Both the
// server and the backup command open their stores through here.
package app

import (
	"fmt"
	"log"

	"learnquest/internal/config"
	"learnquest/internal/database"
	"learnquest/internal/repository"
	"learnquest/internal/store"
	"learnquest/internal/store/memory"
	"learnquest/internal/store/remote"
)

// OpenStores builds the store bundle named by cfg.StoreBackend. The
// returned closer releases backend resources; it is a no-op for the
// remote and memory backends.
func OpenStores(cfg *config.Config) (store.Stores, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreBackend {
	case "remote":
		if cfg.RecordServiceURL == "" {
			return store.Stores{}, nil, fmt.Errorf("STORE_BACKEND=remote requires RECORD_SERVICE_URL")
		}
		client := remote.NewClient(cfg.RecordServiceURL, cfg.RecordProjectID, cfg.RecordPublicKey, cfg.RecordRequestTimeout)
		log.Printf("Using remote record service at %s", cfg.RecordServiceURL)
		return client.Stores(), noop, nil

	case "memory":
		log.Println("Using in-memory record store (data is not persisted)")
		return memory.New().Stores(), noop, nil

	case "sqlite", "sqlite3", "postgres", "postgresql", "mysql":
		dsn := cfg.DatabaseURL
		if cfg.StoreBackend == "sqlite" || cfg.StoreBackend == "sqlite3" {
			dsn = cfg.DatabasePath
		}
		db, err := database.Open(cfg.StoreBackend, dsn)
		if err != nil {
			return store.Stores{}, nil, err
		}
		if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
			db.Close()
			return store.Stores{}, nil, err
		}
		log.Printf("Using %s record store", cfg.StoreBackend)
		return store.Stores{
			Activities: repository.NewActivityRepository(db),
			Children:   repository.NewChildRepository(db),
			Levels:     repository.NewLevelRepository(db),
			Progress:   repository.NewProgressRepository(db),
			Questions:  repository.NewQuestionRepository(db),
		}, db.Close, nil

	default:
		return store.Stores{}, nil, fmt.Errorf("unsupported store backend: %s", cfg.StoreBackend)
	}
}
