package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUseMongo(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"true":  true,
		"TRUE":  false,
		"True":  false,
		"1":     false,
		"yes":   false,
		"false": false,
		"":      false,
	}

	for value, want := range cases {
		m := MongoConfig{Enabled: value}
		require.Equal(t, want, m.UseMongo(), "enabled=%q", value)
	}
}

func TestMongoURI(t *testing.T) {
	t.Parallel()

	t.Run("joins url and port", func(t *testing.T) {
		m := MongoConfig{URL: "mongodb://h", Port: "27017"}
		uri, err := m.URI()
		require.NoError(t, err)
		require.Equal(t, "mongodb://h:27017", uri)
	})

	t.Run("keeps explicit port in url", func(t *testing.T) {
		m := MongoConfig{URL: "mongodb://h:9999", Port: "27017"}
		uri, err := m.URI()
		require.NoError(t, err)
		require.Equal(t, "mongodb://h:9999", uri)
	})

	t.Run("adds scheme when missing", func(t *testing.T) {
		m := MongoConfig{URL: "h", Port: "27017"}
		uri, err := m.URI()
		require.NoError(t, err)
		require.Equal(t, "mongodb://h:27017", uri)
	})

	t.Run("rejects malformed port", func(t *testing.T) {
		m := MongoConfig{URL: "mongodb://h", Port: "not-a-port"}
		_, err := m.URI()
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("disabled mongo skips mongo checks", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MongoDB = MongoConfig{Enabled: "false"}
		require.NoError(t, cfg.Validate())
	})

	t.Run("enabled mongo requires url", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MongoDB = MongoConfig{Enabled: "true", Port: "27017", Database: "moe"}
		require.Error(t, cfg.Validate())
	})

	t.Run("enabled mongo requires database", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MongoDB = MongoConfig{Enabled: "true", URL: "mongodb://h", Port: "27017"}
		require.Error(t, cfg.Validate())
	})

	t.Run("enabled mongo requires numeric port", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MongoDB = MongoConfig{Enabled: "true", URL: "mongodb://h", Port: "abc", Database: "moe"}
		require.Error(t, cfg.Validate())
	})

	t.Run("well formed config passes", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MongoDB = MongoConfig{Enabled: "true", URL: "mongodb://h", Port: "27017", Database: "moe"}
		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects malformed server port", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Server.Port = "eighty"
		require.Error(t, cfg.Validate())
	})
}

func TestLoadAndSave(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")

		cfg := DefaultConfig()
		cfg.MongoDB = MongoConfig{Enabled: "true", URL: "mongodb://h", Port: "27017", Database: "moe"}
		require.NoError(t, cfg.Save(path))

		loaded, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, cfg, loaded)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [not a mapping"), 0644))
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("invalid settings rejected at load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		cfg := DefaultConfig()
		cfg.MongoDB = MongoConfig{Enabled: "true", URL: "", Port: "27017", Database: "moe"}
		require.NoError(t, cfg.Save(path))

		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestToolbarEnabled(t *testing.T) {
	t.Parallel()

	require.True(t, DebugConfig{Toolbar: "true"}.ToolbarEnabled())
	require.False(t, DebugConfig{Toolbar: "false"}.ToolbarEnabled())
	require.False(t, DebugConfig{}.ToolbarEnabled())
}
