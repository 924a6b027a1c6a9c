package sqldb

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// NewClient opens the legacy setup database through database/sql. The
// store_setup resource historically lived on a separate SQL server with
// its own DSN, so it gets its own connection instead of the shared pool.
func NewClient(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to open sql connection: %v", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("unable to ping sql database: %v", err)
	}

	return db, nil
}
