package mongodb

import (
	"context"
	"fmt"
	"net/url"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moehq/moe/internal/db"
)

// MongoDB implements the db.Conn interface for MongoDB
type MongoDB struct {
	client *mongo.Client
	config *db.Config
}

// displayMongoDB is the displayable variant of the connection: identical
// read/write behavior, plus a human-readable rendering used by the debug
// toolbar. The variant is chosen once at startup, never per call.
type displayMongoDB struct {
	MongoDB
}

// Open creates the shared connection from configuration. The driver
// connects lazily, so no server round trip happens here; callers that
// need to fail fast ping explicitly after Open. When displayable is
// true the returned connection additionally implements fmt.Stringer.
func Open(ctx context.Context, config *db.Config, displayable bool) (db.Conn, error) {
	clientOptions := options.Client().ApplyURI(config.URI)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to open MongoDB connection: %w", err)
	}

	conn := MongoDB{client: client, config: config}
	if displayable {
		return &displayMongoDB{MongoDB: conn}, nil
	}
	return &conn, nil
}

// Database returns a handle scoped to the named logical sub-database
func (m *MongoDB) Database(name string) *mongo.Database {
	return m.client.Database(name)
}

// Ping checks the database connection
func (m *MongoDB) Ping(ctx context.Context) error {
	if m.client == nil {
		return fmt.Errorf("not connected to database")
	}
	return m.client.Ping(ctx, nil)
}

// Disconnect closes the MongoDB connection
func (m *MongoDB) Disconnect(ctx context.Context) error {
	if m.client != nil {
		return m.client.Disconnect(ctx)
	}
	return nil
}

// String renders the connection identity for display
func (m *displayMongoDB) String() string {
	host := m.config.URI
	if u, err := url.Parse(m.config.URI); err == nil && u.Host != "" {
		host = u.Host
	}
	return fmt.Sprintf("MongoDB: %s", host)
}
