package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverMongo    = "mongo"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type RESTconfig struct {
	PORT               string
	CorsAllowedOrigins []string
}

type StorageConfig struct {
	Driver string
}

type MongoConfig struct {
	URI      string
	Database string
}

type DBconfig struct {
	URL string
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type RabbitMQConfig struct {
	Enabled  bool
	URL      string
	Exchange string
}

type LimitsConfig struct {
	OffersDefault int
	Comments      int
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig holds the whole application configuration.
type AppConfig struct {
	AppName      string
	Rest         RESTconfig
	Storage      StorageConfig
	Mongo        MongoConfig
	Database     DBconfig
	Redis        RedisConfig
	Auth         AuthConfig
	RabbitMQ     RabbitMQConfig
	Limits       LimitsConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig reads an optional .env file and then the environment.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: Could not load .env file (path: %v): %v. Using process environment.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "six-cities")

	cfg.Rest.PORT = getEnvAsString("PORT", "4000")
	cfg.Rest.CorsAllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"})

	cfg.Storage.Driver = strings.ToLower(getEnvAsString("STORAGE_DRIVER", StorageDriverMongo))
	switch cfg.Storage.Driver {
	case StorageDriverMongo:
		cfg.Mongo.URI = getEnvAsString("MONGO_URI", "mongodb://localhost:27017")
		cfg.Mongo.Database = getEnvAsString("MONGO_DATABASE", "six-cities")
	case StorageDriverPostgres:
		cfg.Database.URL = os.Getenv("DATABASE_URL")
		if cfg.Database.URL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required for STORAGE_DRIVER=postgres")
		}
	case StorageDriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}

	cfg.Redis.Enabled = getEnvAsBool("REDIS_ENABLED", false)
	if cfg.Redis.Enabled {
		cfg.Redis.Addr = getEnvAsString("REDIS_ADDR", "localhost:6379")
		cfg.Redis.Password = getEnvAsString("REDIS_PASSWORD", "")
		cfg.Redis.DB = getEnvAsInt("REDIS_DB", 0)
	}

	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	cfg.Auth.TokenTTL = getEnvAsDuration("TOKEN_TTL", 72*time.Hour)

	cfg.RabbitMQ.Enabled = getEnvAsBool("RABBITMQ_ENABLED", false)
	if cfg.RabbitMQ.Enabled {
		cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
		if cfg.RabbitMQ.URL == "" {
			log.Println("WARNING: RABBITMQ_ENABLED is true, but RABBITMQ_URL is not set. Disabling event publishing.")
			cfg.RabbitMQ.Enabled = false
		}
		cfg.RabbitMQ.Exchange = getEnvAsString("RABBITMQ_EXCHANGE", "six-cities.events")
	}

	cfg.Limits.OffersDefault = getEnvAsInt("OFFERS_DEFAULT_LIMIT", 60)
	cfg.Limits.Comments = getEnvAsInt("COMMENTS_LIMIT", 50)

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valDuration, err := time.ParseDuration(valStr)
	if err != nil || valDuration <= 0 {
		log.Printf("Warning: Environment variable %s (value: %s) is not a positive duration. Using default value: %s\n", key, valStr, defaultValue)
		return defaultValue
	}
	return valDuration
}

// getEnvAsList splits a comma separated variable, dropping empty items.
func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(valStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
