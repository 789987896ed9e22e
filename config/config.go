package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log          Logger             `mapstructure:"logger"`
	DB           Database           `mapstructure:"database"`
	API          API                `mapstructure:"api"`
	AlphaVantage AlphaVantageConfig `mapstructure:"alpha_vantage"`
	Cache        Cache              `mapstructure:"cache"`
	Sweeper      Sweeper            `mapstructure:"sweeper"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type API struct {
	Port int `mapstructure:"port"`
}

type AlphaVantageConfig struct {
	BaseURL             string        `mapstructure:"base_url"`
	APIKey              string        `mapstructure:"api_key"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	MaxSearchResults    int           `mapstructure:"max_search_results"`
}

type Cache struct {
	DefaultExpiration  time.Duration `mapstructure:"default_expiration"`
	CleanupInterval    time.Duration `mapstructure:"cleanup_interval"`
	CompanyExpiration  time.Duration `mapstructure:"company_expiration"`
	CommissionDuration time.Duration `mapstructure:"commission_duration"`
}

type Sweeper struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

func Load() (*Config, error) {
	// .env is optional, same as the config file below.
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	setDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.port", 5005)
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("alpha_vantage.base_url", "https://www.alphavantage.co")
	viper.SetDefault("alpha_vantage.timeout", 10*time.Second)
	viper.SetDefault("alpha_vantage.max_request_per_minute", 5)
	viper.SetDefault("alpha_vantage.max_search_results", 10)
	viper.SetDefault("cache.default_expiration", 5*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 10*time.Minute)
	viper.SetDefault("cache.company_expiration", 24*time.Hour)
	viper.SetDefault("cache.commission_duration", 10*time.Minute)
	viper.SetDefault("sweeper.enabled", true)
	viper.SetDefault("sweeper.schedule", "30 16 * * *")
}
