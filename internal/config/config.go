package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Cache     Cache     `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	CacheWarm CacheWarm `mapstructure:",squash"`
	Analytics Analytics `mapstructure:",squash"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Environment string `mapstructure:"environment"`
}

type Server struct {
	Host           string        `mapstructure:"host"`
	Port           string        `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"server_request_timeout"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"database_automigrate"`
}

type Cache struct {
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"cache_ttl"`
}

type Auth struct {
	Secret       string `mapstructure:"auth_secret"`
	Issuer       string `mapstructure:"auth_issuer"`
	RequireAdmin bool   `mapstructure:"auth_require_admin"`
}

type CacheWarm struct {
	CronSchedule string `mapstructure:"cache_warm_cron"`
	Enabled      bool   `mapstructure:"cache_warm_enabled"`
}

type Analytics struct {
	TopProductsLimit    int `mapstructure:"analytics_top_products_limit"`
	MaxTopProductsLimit int `mapstructure:"analytics_max_top_products_limit"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SERVER_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/storefront?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "postgres")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("DATABASE_AUTOMIGRATE", false)

	// empty address disables the response cache
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL", "5m")

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_ISSUER", "")
	viper.SetDefault("AUTH_REQUIRE_ADMIN", false)

	viper.SetDefault("CACHE_WARM_CRON", "*/10 * * * *")
	viper.SetDefault("CACHE_WARM_ENABLED", false)

	viper.SetDefault("ANALYTICS_TOP_PRODUCTS_LIMIT", 10)
	viper.SetDefault("ANALYTICS_MAX_TOP_PRODUCTS_LIMIT", 100)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("ENVIRONMENT", "development")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info(".env read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not get the working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Debug("No .env file found, using the process environment")
}
