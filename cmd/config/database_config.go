package config

import (
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	migration "pixelpantry/cmd/database/migrate"
	"pixelpantry/internal/flatstore"
	"pixelpantry/internal/utils"
)

const (
	defaultDBPath        = "data/pixelpantry.db"
	defaultFlatStorePath = "data/pixelpantry.json"
)

// Storage holds whichever backend came up. Exactly one of DB and Flat
// is non-nil after ConnectStorage.
type Storage struct {
	DB   *gorm.DB
	Flat *flatstore.Store
}

// ConnectStorage opens the embedded SQLite database and falls back to
// the flat document store when the database cannot be opened or
// migrated. Both backends serve the same repository interfaces.
func ConnectStorage() (*Storage, error) {
	dbPath := utils.GetConfig("DB_PATH")
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	db, err := openDatabase(dbPath)
	if err == nil {
		return &Storage{DB: db}, nil
	}
	log.Printf("database unavailable, falling back to flat store: %v", err)

	flatPath := utils.GetConfig("FLAT_STORE_PATH")
	if flatPath == "" {
		flatPath = defaultFlatStorePath
	}

	store := flatstore.New(flatPath)
	if err := store.Init(); err != nil {
		return nil, err
	}
	return &Storage{Flat: store}, nil
}

func openDatabase(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := migration.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
