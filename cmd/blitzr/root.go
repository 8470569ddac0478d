package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blitzr/blitzr-go/internal/config"
	"github.com/blitzr/blitzr-go/pkg/catalog"
	"github.com/blitzr/blitzr-go/pkg/client"
	"github.com/blitzr/blitzr-go/pkg/logging"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	flagAPIKey   string
	flagBaseURL  string
	flagLogLevel string
	flagPretty   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blitzr",
	Short: "Command line client for the Blitzr music metadata API",
	Long: `blitzr queries the Blitzr music metadata API from the command line.

Every API operation is addressable by name; see "blitzr ops" for the
full list and "blitzr call" to invoke one. The API key is read from
~/.config/blitzr/config.yaml, the BLITZR_API_KEY environment variable,
or the --api-key flag, in increasing order of precedence.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Blitzr API key (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug|info|warn|error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagPretty, "pretty", false, "Human-readable console log output")
}

// newCatalog loads configuration, applies flag overrides, configures logging
// and builds the catalog the subcommands run against.
func newCatalog() (*catalog.Catalog, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagPretty {
		cfg.Pretty = true
	}

	logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.Pretty,
		Output: os.Stderr,
	})

	c, err := client.New(client.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	return catalog.New(c), nil
}
