package main

import (
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/metrics"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Restaurant Pizza API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants offer them at
// @host localhost:5555
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger and metrics
	m := metrics.New()
	setUpLogger(configuration, m)

	// Initialize database connection
	db := setupDatabase(configuration)

	// Initialize Gin router
	if configuration.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.SetupRouter(router.NewControllers(db), m, log.StandardLogger())

	// Start the server
	addr := fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)
	log.Infof("Starting server on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter.
// The level follows APP_ENV unless LOG_LEVEL names a valid level.
func setUpLogger(conf *config.Config, m *metrics.Metrics) {
	log.SetFormatter(&log.JSONFormatter{})
	level := config.LevelForEnvironment(conf.Environment)
	if conf.LogLevel != "" {
		parsed, err := log.ParseLevel(conf.LogLevel)
		if err != nil {
			log.WithError(err).Warnf("Ignoring invalid LOG_LEVEL %q", conf.LogLevel)
		} else {
			level = parsed
		}
	}
	log.SetLevel(level)
	log.AddHook(m.LogHook())
	database.SetLogLevel(level)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the store, migrates the schema and seeds it when asked to
func setupDatabase(conf *config.Config) *gorm.DB {
	dbConfig, err := database.ParseDatabaseURI(conf.DatabaseURI)
	checkPanicErr(err)

	db, err := database.InitDatabase(dbConfig)
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if conf.SeedDatabase {
		checkPanicErr(database.Seed(db))
	}
	return db
}
