package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"unihub/config"
)

// DB is the global database connection
var DB *sql.DB

// InitDatabaseConnection opens the configured database and applies the schema
func InitDatabaseConnection() error {
	cfg := config.ConfigInstance

	var err error
	DB, err = sql.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %v", err)
	}

	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(time.Minute * 3)

	if err := DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %v", err)
	}

	if err := Migrate(DB, cfg.DatabaseDriver); err != nil {
		return fmt.Errorf("failed to apply schema: %v", err)
	}

	return nil
}

// CloseConnection closes the database connection
func CloseConnection() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
