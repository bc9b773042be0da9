package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider provides access to the settings database.
// Implementations may open the database lazily on first access.
type DatabaseProvider interface {
	// DB returns the database connection, opening it if necessary.
	DB(ctx context.Context) (*sql.DB, error)

	// Close closes the database connection if it was opened.
	Close() error

	// IsInitialized reports whether the database has been opened.
	IsInitialized() bool
}
