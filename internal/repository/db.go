package repository

import (
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc.org/sqlite registers itself as "sqlite", which sqlx does
	// not know a bind type for out of the box.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open connects to the database described by the URL. Two schemes are
// supported: postgres://... (pgx) and sqlite://<path> (modernc.org/sqlite).
func Open(databaseURL string) (*sqlx.DB, error) {
	driver, dsn, err := parseDatabaseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if driver == "pgx" {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	} else {
		// SQLite handles concurrent writers poorly; a single connection
		// avoids SQLITE_BUSY under parallel requests.
		db.SetMaxOpenConns(1)
	}

	return db, nil
}

func parseDatabaseURL(databaseURL string) (driver, dsn string, err error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return "pgx", databaseURL, nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return "sqlite", strings.TrimPrefix(databaseURL, "sqlite://"), nil
	default:
		return "", "", fmt.Errorf("unsupported database URL %q", databaseURL)
	}
}
