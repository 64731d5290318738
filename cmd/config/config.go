package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Catalog     CatalogConfig
	Upstream    UpstreamConfig
	Search      SearchConfig
	CORS        CORSConfig
	Internal    InternalConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig is optional; an empty Host disables the search cache.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RabbitMQConfig is optional; an empty Host disables submission events.
type RabbitMQConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	WebhookURL string
}

type CatalogConfig struct {
	CategoriesFile string
	CountriesFile  string
}

type UpstreamConfig struct {
	BaseURL       string
	Host          string
	APIKey        string
	Timeout       time.Duration
	RatePerMinute int
}

type SearchConfig struct {
	ForwardFilters bool
	SkipMalformed  bool
	CacheTTL       time.Duration
}

type CORSConfig struct {
	AllowedOrigin string
}

type InternalConfig struct {
	APIKey string
}

// Load reads configuration from the environment, loading a .env file first when present.
func Load() *Config {
	_ = godotenv.Load()

	driver := getEnv("DB_DRIVER", "mysql")

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8000"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          driver,
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", defaultDBPort(driver)),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "sourcing"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:       getEnv("RABBITMQ_HOST", ""),
			Port:       getEnvAsInt("RABBITMQ_PORT", 5672),
			User:       getEnv("RABBITMQ_USER", "guest"),
			Password:   getEnv("RABBITMQ_PASSWORD", "guest"),
			WebhookURL: getEnv("SUBMISSION_WEBHOOK_URL", ""),
		},
		Catalog: CatalogConfig{
			CategoriesFile: getEnv("CATEGORIES_FILE", "categories.json"),
			CountriesFile:  getEnv("COUNTRIES_FILE", "location.json"),
		},
		Upstream: UpstreamConfig{
			BaseURL:       getEnv("UPSTREAM_BASE_URL", "https://real-time-amazon-data.p.rapidapi.com"),
			Host:          getEnv("UPSTREAM_HOST", "real-time-amazon-data.p.rapidapi.com"),
			APIKey:        getEnv("VITE_AMAZON_API_KEY", ""),
			Timeout:       getEnvAsDuration("UPSTREAM_TIMEOUT", 15*time.Second),
			RatePerMinute: getEnvAsInt("UPSTREAM_RATE_PER_MINUTE", 0),
		},
		Search: SearchConfig{
			ForwardFilters: getEnvAsBool("SEARCH_FORWARD_FILTERS", false),
			SkipMalformed:  getEnvAsBool("SEARCH_SKIP_MALFORMED", false),
			CacheTTL:       getEnvAsDuration("SEARCH_CACHE_TTL", 0),
		},
		CORS: CORSConfig{
			AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:5173"),
		},
		Internal: InternalConfig{
			APIKey: getEnv("INTERNAL_API_KEY", ""),
		},
	}
}

func defaultDBPort(driver string) int {
	if driver == "postgres" {
		return 5432
	}
	return 3306
}

// GetDSN builds the data source name for the configured driver.
func (c *Config) GetDSN() string {
	db := c.Database
	if db.Driver == "postgres" {
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			db.Host, db.Port, db.User, db.Password, db.Name, db.SSLMode)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		db.User, db.Password, db.Host, db.Port, db.Name)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
