package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
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

	// Atlas configuration
	SourcePriority []string
	HTTPTimeout    time.Duration
	LookupTimeout  time.Duration

	// Summary backend configuration
	SummaryBackend string
	OllamaURL      string
	OllamaModel    string
	GeminiModel    string
	GeminiAPIKey   string

	// Logging configuration. LogLevel is the --log-level flag value;
	// the LOG_LEVEL environment variable is consulted by the logger
	// when no flag is given.
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.exoatlas.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up Viper for environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Bind common API keys
	bindAPIKeys()

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
			viper.SetConfigName(".exoatlas")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	// Build config from viper
	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Format:  viper.GetString("format"),

		// Config file
		ConfigFile: viper.ConfigFileUsed(),

		// Atlas configuration
		SourcePriority: splitPriority(viper.GetString("priority")),
		HTTPTimeout:    viper.GetDuration("http_timeout"),
		LookupTimeout:  viper.GetDuration("lookup_timeout"),

		// Summary backend configuration
		SummaryBackend: viper.GetString("summary_backend"),
		OllamaURL:      viper.GetString("ollama_url"),
		OllamaModel:    viper.GetString("ollama_model"),
		GeminiModel:    viper.GetString("gemini_model"),
		GeminiAPIKey:   getEnvOrDefault("GEMINI_API_KEY", os.Getenv("GOOGLE_API_KEY")),

		// Logging configuration
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
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

// splitPriority parses a comma-separated catalog priority list.
func splitPriority(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	priority := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			priority = append(priority, trimmed)
		}
	}
	return priority
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// Try to load .env files in order of precedence
	// .env.local overrides .env
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// bindAPIKeys explicitly binds common API key environment variables to Viper.
func bindAPIKeys() {
	// Common API keys that might be in .env files
	apiKeys := []string{
		"GEMINI_API_KEY",
		"GOOGLE_API_KEY",
		"EXOATLAS_API_KEY",
	}

	for _, key := range apiKeys {
		if err := viper.BindEnv(key); err != nil {
			// Log warning but continue - this isn't critical
			fmt.Fprintf(os.Stderr, "Warning: failed to bind environment variable %s: %v\n", key, err)
		}
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
