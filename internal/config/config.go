package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Photo storage backends.
const (
	PhotoBackendS3     = "s3"
	PhotoBackendGCS    = "gcs"
	PhotoBackendMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Photo storage configuration
	Photos PhotosConfig

	// CORS configuration
	CORS CORSConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver        string
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	SSLMode       string
	MaxConns      int32
	MinConns      int32
	MaxLifetime   time.Duration
	ConnTimeout   time.Duration
	QueryTimeout  time.Duration
	RunMigrations bool

	// SimpleProtocol is needed behind PgBouncer in transaction mode.
	SimpleProtocol bool
}

// PhotosConfig holds object storage configuration for achievement photos
type PhotosConfig struct {
	Backend        string
	Bucket         string
	Region         string
	Endpoint       string
	AccessKey      string
	SecretKey      string
	PublicBaseURL  string
	MaxUploadBytes int64
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file
	if err := godotenv.Load("../.env"); err != nil {
		// Try loading from current directory if not found in parent
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Warning: .env file not found: %v", err)
		}
	}

	config := FromEnv()

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FromEnv reads the configuration from the process environment without
// touching .env files or validating.
func FromEnv() *Config {
	port := getEnv("SERVER_PORT", "8080")
	driver := strings.ToLower(getEnv("DB_DRIVER", DriverPostgres))

	// In-memory photos only make sense next to in-memory records.
	photoBackend := PhotoBackendS3
	if driver == DriverMemory {
		photoBackend = PhotoBackendMemory
	}
	photoBackend = strings.ToLower(getEnv("PHOTO_BACKEND", photoBackend))

	publicBase := getEnv("PHOTO_PUBLIC_BASE_URL", "")
	if publicBase == "" && photoBackend == PhotoBackendMemory {
		publicBase = "http://localhost:" + port + "/photos"
	}

	return &Config{
		Server: ServerConfig{
			Port:            port,
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			Driver:        driver,
			Host:          getEnv("DB_HOST", "localhost"),
			Port:          getEnv("DB_PORT", "5432"),
			User:          getEnv("DB_USER", "postgres"),
			Password:      getEnv("DB_PASSWORD", ""),
			Name:          getEnv("DB_NAME", "milestones"),
			SSLMode:       getEnv("DB_SSLMODE", "disable"),
			MaxConns:      getInt32Env("DB_MAX_CONNS", 5),
			MinConns:      getInt32Env("DB_MIN_CONNS", 0),
			MaxLifetime:   getDurationEnv("DB_MAX_LIFETIME", time.Hour),
			ConnTimeout:   getDurationEnv("DB_CONN_TIMEOUT", 10*time.Second),
			QueryTimeout:  getDurationEnv("DB_QUERY_TIMEOUT", 30*time.Second),
			RunMigrations: getBoolEnv("DB_RUN_MIGRATIONS", true),

			SimpleProtocol: getBoolEnv("DB_SIMPLE_PROTOCOL", false),
		},
		Photos: PhotosConfig{
			Backend:        photoBackend,
			Bucket:         getEnv("PHOTO_BUCKET", ""),
			Region:         getEnv("PHOTO_REGION", getEnv("AWS_REGION", "us-east-1")),
			Endpoint:       getEnv("PHOTO_ENDPOINT", ""),
			AccessKey:      getEnv("PHOTO_ACCESS_KEY", ""),
			SecretKey:      getEnv("PHOTO_SECRET_KEY", ""),
			PublicBaseURL:  publicBase,
			MaxUploadBytes: getInt64Env("PHOTO_MAX_UPLOAD_BYTES", 5<<20),
		},
		CORS: CORSConfig{
			AllowedOrigins: getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods: getStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
			AllowedHeaders: getStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"*"}),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	switch c.Photos.Backend {
	case PhotoBackendS3, PhotoBackendGCS:
		if c.Photos.Bucket == "" {
			return fmt.Errorf("PHOTO_BUCKET is required for the %s photo backend", c.Photos.Backend)
		}
	case PhotoBackendMemory:
		if c.Database.Driver != DriverMemory {
			return fmt.Errorf("PHOTO_BACKEND=memory loses photos on restart; use it only with DB_DRIVER=memory")
		}
	default:
		return fmt.Errorf("unsupported PHOTO_BACKEND %q", c.Photos.Backend)
	}

	if c.Photos.MaxUploadBytes <= 0 {
		return fmt.Errorf("PHOTO_MAX_UPLOAD_BYTES must be positive")
	}

	return nil
}

// UseMemoryStore reports whether the server runs without postgres.
func (c *Config) UseMemoryStore() bool {
	return c.Database.Driver == DriverMemory
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
		int(c.Database.ConnTimeout.Seconds()),
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt32Env(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intValue)
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := []string{}
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}
