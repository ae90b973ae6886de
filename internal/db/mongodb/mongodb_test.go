package mongodb

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moehq/moe/internal/db"
)

// Open never contacts the server (the driver connects lazily), so the
// factory and the variant selection are testable without a running mongod.

func testConfig() *db.Config {
	return &db.Config{
		URI:      "mongodb://h:27017",
		Database: "moe",
	}
}

func TestOpenPlain(t *testing.T) {
	t.Parallel()

	conn, err := Open(context.Background(), testConfig(), false)
	require.NoError(t, err)

	_, ok := conn.(fmt.Stringer)
	require.False(t, ok, "plain variant must not render itself")
}

func TestOpenDisplayable(t *testing.T) {
	t.Parallel()

	conn, err := Open(context.Background(), testConfig(), true)
	require.NoError(t, err)

	str, ok := conn.(fmt.Stringer)
	require.True(t, ok, "displayable variant must implement fmt.Stringer")
	require.Contains(t, str.String(), "MongoDB:")
	require.Contains(t, str.String(), "h:27017")
}

func TestDatabaseHandle(t *testing.T) {
	t.Parallel()

	conn, err := Open(context.Background(), testConfig(), false)
	require.NoError(t, err)

	handle := conn.Database("moe")
	require.NotNil(t, handle)
	require.Equal(t, "moe", handle.Name())

	// The same logical name always resolves against the same connection.
	require.Same(t, handle.Client(), conn.Database("moe").Client())
}

func TestVariantsShareBehavior(t *testing.T) {
	t.Parallel()

	plain, err := Open(context.Background(), testConfig(), false)
	require.NoError(t, err)
	display, err := Open(context.Background(), testConfig(), true)
	require.NoError(t, err)

	// Display is purely additive: both variants expose the same handle surface.
	require.Equal(t, plain.Database("moe").Name(), display.Database("moe").Name())
}
