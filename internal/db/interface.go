package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Conn is the single process-lifetime handle to the backing database
// server. It is created once at startup, shared read-only by every
// request, and torn down only on process exit. Implementations must be
// safe for concurrent use.
type Conn interface {
	// Database returns a handle scoped to the named logical sub-database.
	// The handle borrows the connection; closing it is not the caller's job.
	Database(name string) *mongo.Database

	// Ping verifies the server is reachable
	Ping(ctx context.Context) error

	// Disconnect closes the underlying connection
	Disconnect(ctx context.Context) error
}

// Config represents database connection configuration
type Config struct {
	URI      string
	Database string
}
