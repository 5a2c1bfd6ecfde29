package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

const (
	// DefaultPort is the port the API listens on when APP_PORT is not set
	DefaultPort = 5555
	// DefaultDatabaseURI points to a file based SQLite store in the working directory
	DefaultDatabaseURI = "sqlite:///app.db"
)

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port        int    `json:"port"`
	Host        string `json:"host"`
	Environment string `json:"environment"`

	// Database configuration
	DatabaseURI  string `json:"database_uri"`
	SeedDatabase bool   `json:"seed_database"`

	// Logging configuration, empty to follow the environment
	LogLevel string `json:"log_level"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, DatabaseURI: %s, SeedDatabase: %t, LogLevel: %s}",
		c.Port, c.Host, c.Environment, database.MaskURL(c.DatabaseURI), c.SeedDatabase, c.LogLevel)
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It validates the port and parses DB_URI the same way the database package opens it
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid APP_PORT: %d out of range", port)
	}

	dbURI := GetEnvWithDefault("DB_URI", DefaultDatabaseURI)
	if _, err := database.ParseDatabaseURI(dbURI); err != nil {
		return nil, fmt.Errorf("invalid DB_URI: %w", err)
	}

	config := &Config{
		Port:         port,
		Host:         GetEnvWithDefault("APP_HOST", "localhost"),
		Environment:  GetEnvWithDefault("APP_ENV", "development"),
		DatabaseURI:  dbURI,
		SeedDatabase: GetEnvAsType("SEED_DATABASE", true),
		LogLevel:     GetEnvWithDefault("LOG_LEVEL", ""),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// LevelForEnvironment maps APP_ENV to the default log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
