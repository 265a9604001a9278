package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	CORS     CORSConfig     `mapstructure:"cors"`
	SerpApi  SerpApiConfig  `mapstructure:"serpapi"`
	YouTube  YouTubeConfig  `mapstructure:"youtube"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

type CORSConfig struct {
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	ExposeHeaders    []string `mapstructure:"expose_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

type SerpApiConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type YouTubeConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type JWTConfig struct {
	SecretKey string        `mapstructure:"secret_key"`
	Expiry    time.Duration `mapstructure:"expiry"`
}

// CacheConfig controls the search result cache and the upstream fan-out.
type CacheConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	ProviderTimeout time.Duration `mapstructure:"provider_timeout"`
}

func LoadConfig(configPath string, envPath string) (*Config, error) {
	// Load .env first; a missing file is fine, keys may come from the process env
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	// Secrets come from the environment, never from the yaml file
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("serpapi.api_key", "SERPAPI_API_KEY")
	viper.BindEnv("youtube.api_key", "YOUTUBE_API_KEY")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	viper.SetDefault("server.port", "5000")
	viper.SetDefault("cache.ttl", "24h")
	viper.SetDefault("cache.provider_timeout", "5s")
	viper.SetDefault("jwt.expiry", "24h")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
