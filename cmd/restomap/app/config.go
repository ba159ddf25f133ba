package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/restomap/internal/sources"
	"github.com/agentstation/restomap/pkg/constants"
	"github.com/agentstation/restomap/pkg/geo"
	"github.com/agentstation/restomap/pkg/reconcile"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Reconciliation configuration
	Bounds  geo.Bounds
	TopN    int
	Aliases map[string]map[string]string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.restomap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up Viper for environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Search for config in standard locations
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".restomap")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Format:  viper.GetString("format"),

		// Config file
		ConfigFile: viper.ConfigFileUsed(),

		// Reconciliation configuration
		Bounds: geo.Bounds{
			MinLat: viper.GetFloat64("bounds.min_lat"),
			MaxLat: viper.GetFloat64("bounds.max_lat"),
			MinLon: viper.GetFloat64("bounds.min_lon"),
			MaxLon: viper.GetFloat64("bounds.max_lon"),
		},
		TopN: viper.GetInt("top_n"),

		// Logging configuration. LogLevel stays empty here so that the
		// flag/verbose/quiet/env precedence in determineLogLevel applies.
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// Per-dataset column alias overrides, keyed by dataset name.
	if aliases := viper.GetStringMap("aliases"); len(aliases) > 0 {
		config.Aliases = make(map[string]map[string]string, len(aliases))
		for dataset := range aliases {
			config.Aliases[dataset] = viper.GetStringMapString("aliases." + dataset)
		}
	}

	// Set defaults
	if !config.Bounds.IsValid() || config.Bounds == (geo.Bounds{}) {
		config.Bounds = geo.JakartaBounds()
	}
	if config.TopN < 1 {
		config.TopN = constants.DefaultTopN
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// schemas returns the three dataset schemas with any configured alias
// overrides merged over the defaults, or nil when nothing is overridden.
func (c *Config) schemas() *[3]reconcile.Schema {
	if len(c.Aliases) == 0 {
		return nil
	}

	var out [3]reconcile.Schema
	for i, id := range sources.IDs() {
		schema := id.Schema()
		if overrides := c.Aliases[id.String()]; len(overrides) > 0 {
			merged := make(map[string]string, len(schema.Aliases)+len(overrides))
			for from, to := range schema.Aliases {
				merged[from] = to
			}
			for from, to := range overrides {
				merged[from] = to
			}
			schema.Aliases = merged
		}
		out[i] = schema
	}
	return &out
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local overrides .env
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
