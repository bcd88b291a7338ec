package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Session  SessionConfig
	Contact  ContactConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string

	// AllowedOrigins is CORS_ALLOWED_ORIGINS split on commas. Empty allows any.
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
	Migrate  bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// StorageConfig selects where listing images go. Driver is "s3" or "local".
type StorageConfig struct {
	Driver        string
	Bucket        string
	Region        string
	Endpoint      string
	PublicBaseURL string
	LocalDir      string
}

type SessionConfig struct {
	TTL       time.Duration
	Namespace string
}

// ContactConfig drives the messaging deep link handed to buyers.
type ContactConfig struct {
	BaseURL     string
	Marketplace string
	Currency    string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "ophelia-market")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIGRATE", true)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("STORAGE_BUCKET", "product-images")
	viper.SetDefault("STORAGE_REGION", "us-east-1")
	viper.SetDefault("STORAGE_LOCAL_DIR", "data/uploads")
	viper.SetDefault("STORAGE_PUBLIC_BASE_URL", "http://localhost:8080/uploads")
	viper.SetDefault("SESSION_TTL", "168h")
	viper.SetDefault("SESSION_NAMESPACE", "ophelia-auth")
	viper.SetDefault("CONTACT_BASE_URL", "https://wa.me")
	viper.SetDefault("CONTACT_MARKETPLACE", "Ophelia")
	viper.SetDefault("CONTACT_CURRENCY", "₹")

	// .env is optional, the environment wins either way
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:           viper.GetString("APP_NAME"),
			Port:           viper.GetString("PORT"),
			Debug:          viper.GetBool("DEBUG"),
			LogPath:        viper.GetString("LOG_PATH"),
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
			Migrate:  viper.GetBool("DB_MIGRATE"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASS"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Storage: StorageConfig{
			Driver:        viper.GetString("STORAGE_DRIVER"),
			Bucket:        viper.GetString("STORAGE_BUCKET"),
			Region:        viper.GetString("STORAGE_REGION"),
			Endpoint:      viper.GetString("STORAGE_ENDPOINT"),
			PublicBaseURL: viper.GetString("STORAGE_PUBLIC_BASE_URL"),
			LocalDir:      viper.GetString("STORAGE_LOCAL_DIR"),
		},
		Session: SessionConfig{
			TTL:       viper.GetDuration("SESSION_TTL"),
			Namespace: viper.GetString("SESSION_NAMESPACE"),
		},
		Contact: ContactConfig{
			BaseURL:     viper.GetString("CONTACT_BASE_URL"),
			Marketplace: viper.GetString("CONTACT_MARKETPLACE"),
			Currency:    viper.GetString("CONTACT_CURRENCY"),
		},
	}

	return config, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
