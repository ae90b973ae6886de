package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/moehq/moe/internal/config"
)

var cfgFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "moe",
	Short: "Metric optimization engine web service",
	Long: `MOE serves the Gaussian process optimization endpoints over HTTP.

The service registers a fixed route table, optionally opens one shared
MongoDB connection at startup, and exposes that connection to every
request through a per-request database accessor.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.moe/config.yaml)")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// configPath resolves the config file location from the flag, the
// environment, or the default path, in that order
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if envPath := os.Getenv("MOE_CONFIG_PATH"); envPath != "" {
		return envPath
	}
	return config.GetConfigPath()
}
