package db

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// Connect opens the database selected by DB_DRIVER: "postgres" (the default,
// DSN from DB_DSN) or "sqlite" (file path from DB_PATH, cgo-free driver).
func Connect() (*gorm.DB, error) {
	// Load environment variables from .env file, if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	switch driver := os.Getenv("DB_DRIVER"); driver {
	case "", "postgres":
		dsn := os.Getenv("DB_DSN")
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Println("Error connecting to the database:", err)
			return nil, err
		}
		return db, nil
	case "sqlite":
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "vehicles.db"
		}
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// OpenSQLite opens a sqlite database at the given path. Foreign keys are
// enabled so cascades behave the same as on postgres.
func OpenSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path + "?_pragma=foreign_keys(1)",
	}, &gorm.Config{})
}
