package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	level, _ := logrus.ParseLevel(DefaultLogLevel(GetEnvWithDefault("APP_ENV", "development")))
	log.SetLevel(level)
}

// DefaultLogLevel is the log level used for an APP_ENV when LOG_LEVEL is not set
func DefaultLogLevel(environment string) string {
	switch environment {
	case "development":
		return "debug"
	case "production":
		return "error"
	default:
		// Default to info level for other environments
		return "info"
	}
}

// Service roles a process can take
const (
	ServiceMeals = "meals"
	ServiceDiets = "diets"
	ServiceAll   = "all"
)

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`
	Service     string `json:"service"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_sslmode"`
	DBPath     string `json:"db_path"`

	// Nutrition lookup configuration
	NutritionAPIURL  string        `json:"nutrition_api_url"`
	NutritionAPIKey  string        `json:"nutrition_api_key"`
	NutritionTimeout time.Duration `json:"nutrition_timeout"`

	// Diets service configuration, used by the meals service for ?diet= filtering
	DietsServiceURL string        `json:"diets_service_url"`
	DietsTimeout    time.Duration `json:"diets_timeout"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	AuthEnabled bool   `json:"auth_enabled"`
	JWTSecret   string `json:"jwt_secret"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, Service: %s, DBDriver: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBPath: %s, NutritionAPIURL: %s, NutritionAPIKey: [REDACTED], DietsServiceURL: %s, LogLevel: %s, AuthEnabled: %t, JWTSecret: [REDACTED]}",
		c.Environment, c.Port, c.Host, c.Service, c.DBDriver, c.DBHost, c.DBName, c.DBUser, c.DBPath,
		c.NutritionAPIURL, maskURL(c.DietsServiceURL), c.LogLevel, c.AuthEnabled)
}

// maskURL masks password in a URL
func maskURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		// Replace password with [REDACTED]
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct.
// When CONFIG_FILE points to a YAML file its values are used as defaults that
// environment variables override.
// Returns an error if any variable is present but invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")

	defaults, err := loadFileDefaults(GetEnvWithDefault("CONFIG_FILE", ""))
	if err != nil {
		return nil, err
	}
	get := func(key, fallback string) string {
		if v, ok := defaults[key]; ok && v != "" {
			fallback = v
		}
		return GetEnvWithDefault(key, fallback)
	}

	port, err := strconv.Atoi(get("APP_PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	service := strings.ToLower(get("APP_SERVICE", ServiceAll))
	switch service {
	case ServiceMeals, ServiceDiets, ServiceAll:
	default:
		return nil, fmt.Errorf("invalid APP_SERVICE %q (supported: meals, diets, all)", service)
	}

	nutritionTimeout, err := time.ParseDuration(get("NUTRITION_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid NUTRITION_TIMEOUT: %w", err)
	}
	dietsTimeout, err := time.ParseDuration(get("DIETS_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DIETS_TIMEOUT: %w", err)
	}

	dietsURL := get("DIETS_SERVICE_URL", "")
	if dietsURL != "" {
		// validate URL with net/url
		if _, err := url.ParseRequestURI(dietsURL); err != nil {
			return nil, fmt.Errorf("invalid DIETS_SERVICE_URL %q: %w", dietsURL, err)
		}
	}

	environment := get("APP_ENV", "development")
	logLevel := strings.ToLower(get("LOG_LEVEL", DefaultLogLevel(environment)))
	if _, err := logrus.ParseLevel(logLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	authEnabled, err := strconv.ParseBool(get("AUTH_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_ENABLED: %w", err)
	}

	config := &Config{
		Environment:      environment,
		Port:             port,
		Host:             get("APP_HOST", "localhost"),
		Service:          service,
		DBDriver:         get("DB_DRIVER", "sqlite"),
		DBHost:           get("DB_HOST", "localhost"),
		DBPort:           get("DB_PORT", "5432"),
		DBName:           get("DB_NAME", "nutrition"),
		DBUser:           get("DB_USER", "user"),
		DBPassword:       get("DB_PASSWORD", "password"),
		DBSSLMode:        get("DB_SSLMODE", "disable"),
		DBPath:           get("DB_PATH", "nutrition.sqlite"),
		NutritionAPIURL:  get("NUTRITION_API_URL", "https://api.api-ninjas.com/v1/nutrition"),
		NutritionAPIKey:  get("NUTRITION_API_KEY", ""),
		NutritionTimeout: nutritionTimeout,
		DietsServiceURL:  dietsURL,
		DietsTimeout:     dietsTimeout,
		LogLevel:         logLevel,
		AuthEnabled:      authEnabled,
		JWTSecret:        get("JWT_SECRET", "secret"),
	}
	if config.Service == ServiceMeals && config.DietsServiceURL == "" {
		return nil, fmt.Errorf("DIETS_SERVICE_URL is required when APP_SERVICE=%s", ServiceMeals)
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
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
