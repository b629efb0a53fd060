package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/franciscosanchezn/gin-meals-api/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-meals-api/internal/config"
	"github.com/franciscosanchezn/gin-meals-api/internal/controllers"
	"github.com/franciscosanchezn/gin-meals-api/internal/database"
	"github.com/franciscosanchezn/gin-meals-api/internal/dietclient"
	"github.com/franciscosanchezn/gin-meals-api/internal/middleware"
	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/nutrition"
	"github.com/franciscosanchezn/gin-meals-api/internal/routes"
	"github.com/franciscosanchezn/gin-meals-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	db            *gorm.DB
	configuration *config.Config
)

// @title Meals API
// @version 1.0
// @description Dishes looked up against a nutrition API, meals composed of three dishes, and diets to filter meals by
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	service := flag.String("service", "", "Service role to run: meals, diets or all (overrides APP_SERVICE)")
	flag.Parse()

	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig(*service)
	checkPanicErr(applyLogLevel(configuration.LogLevel))

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and routes
	deps := setupServices(configuration)
	router := setupRouter(deps)

	// Start the server
	log.Infof("Starting %s service on %s:%d", configuration.Service, configuration.Host, configuration.Port)
	checkPanicErr(router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
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

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment.
// The configured LOG_LEVEL is applied by applyLogLevel once the configuration is loaded.
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	level, _ := log.ParseLevel(config.DefaultLogLevel(config.GetEnvWithDefault("APP_ENV", "development")))
	log.SetLevel(level)
}

// applyLogLevel sets level on the standard logger and on every package logger
func applyLogLevel(level string) error {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(parsed)
	config.SetLogLevel(parsed)
	database.SetLogLevel(parsed)
	nutrition.SetLogLevel(parsed)
	dietclient.SetLogLevel(parsed)
	services.SetLogLevel(parsed)
	controllers.SetLogLevel(parsed)
	return nil
}

// loadConfig loads the application configuration from environment variables.
// A non-empty role overrides APP_SERVICE. It panics if the configuration is invalid
func loadConfig(role string) *config.Config {
	if role != "" {
		checkPanicErr(os.Setenv("APP_SERVICE", role))
	}
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf)
	return conf
}

// setupDatabase opens the configured database and migrates the tables the service role owns
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.NewDatabaseConfig(conf))
	checkPanicErr(err)

	var tables []interface{}
	switch conf.Service {
	case config.ServiceMeals:
		tables = []interface{}{&models.Dish{}, &models.Meal{}}
	case config.ServiceDiets:
		tables = []interface{}{&models.Diet{}}
	default:
		tables = []interface{}{&models.Dish{}, &models.Meal{}, &models.Diet{}}
	}
	checkPanicErr(database.Migrate(db, tables...))
	return db
}

// setupServices builds the stores for the configured role. The meals role
// resolves diets through the diets service, the combined role locally.
func setupServices(conf *config.Config) routes.Dependencies {
	deps := routes.Dependencies{
		Service:     conf.Service,
		AuthEnabled: conf.AuthEnabled,
		JWTSecret:   []byte(conf.JWTSecret),
	}

	if conf.Service == config.ServiceDiets || conf.Service == config.ServiceAll {
		diets, err := services.NewDietService(db)
		checkPanicErr(err)
		deps.Diets = diets
	}

	if conf.Service == config.ServiceMeals || conf.Service == config.ServiceAll {
		lookup := nutrition.NewNinjasClient(conf.NutritionAPIURL, conf.NutritionAPIKey, conf.NutritionTimeout)
		dishes, err := services.NewDishService(db, lookup)
		checkPanicErr(err)
		meals, err := services.NewMealService(db, dishes)
		checkPanicErr(err)

		var diets services.DietLookup = deps.Diets
		if conf.DietsServiceURL != "" {
			diets = dietclient.New(conf.DietsServiceURL, conf.DietsTimeout)
		}
		deps.Dishes = dishes
		deps.Meals = meals
		deps.Filter = services.NewMealFilter(meals, diets)
	}

	return deps
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter(deps routes.Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log.StandardLogger()))

	routes.SetupRoutes(router, deps)

	return router
}
