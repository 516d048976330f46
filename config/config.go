package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable through STORE_BACKEND.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string        `mapstructure:"APP_PORT"`
	Env               string        `mapstructure:"ENV"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	TokenTTL          time.Duration `mapstructure:"TOKEN_TTL"`
	MaxRequestsPerMin int           `mapstructure:"MAX_REQUESTS_PER_MIN"`
	BcryptCost        int           `mapstructure:"BCRYPT_COST"`
	// TrustedProxies lists the proxy addresses or CIDRs whose forwarding
	// headers are believed. Empty means the socket peer is the client.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`

	// Storage selection.
	StoreBackend string `mapstructure:"STORE_BACKEND"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisDocumentDB int    `mapstructure:"REDIS_DOCUMENT_DB"`
	DocumentKey     string `mapstructure:"DOCUMENT_KEY"`

	// Fixture document and its read-through cache.
	FixturePath    string        `mapstructure:"FIXTURE_PATH"`
	FixtureTimeout time.Duration `mapstructure:"FIXTURE_TIMEOUT"`
	CacheFreshness time.Duration `mapstructure:"CACHE_FRESHNESS"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", "thanawyia-dev-secret")
	v.SetDefault("TOKEN_TTL", 24*time.Hour)
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("TRUSTED_PROXIES", []string{})
	v.SetDefault("STORE_BACKEND", BackendMemory)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "thanawyia")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DOCUMENT_DB", 0)
	v.SetDefault("DOCUMENT_KEY", "appData")
	v.SetDefault("FIXTURE_PATH", "./data/data.json")
	v.SetDefault("FIXTURE_TIMEOUT", 5*time.Second)
	v.SetDefault("CACHE_FRESHNESS", 5*time.Second)
}

// TrustedProxyList returns the configured proxies without blank entries.
func TrustedProxyList() []string {
	proxies := []string{}
	for _, p := range AppConfig.TrustedProxies {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	return proxies
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
