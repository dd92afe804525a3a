package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Kafka       KafkaConfig       `mapstructure:"kafka"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Security    SecurityConfig    `mapstructure:"security"`
	Recommender RecommenderConfig `mapstructure:"recommender"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StorageConfig configures the Postgres persistence collaborator. An empty
// URL disables persistence; the engine then runs purely in memory.
type StorageConfig struct {
	URL            string        `mapstructure:"url"`
	MaxConnections int           `mapstructure:"max_connections"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// RedisConfig configures the rate-limit backend. An empty URL disables
// rate limiting.
type RedisConfig struct {
	URL        string        `mapstructure:"url"`
	MaxRetries int           `mapstructure:"max_retries"`
	PoolSize   int           `mapstructure:"pool_size"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// KafkaConfig configures the optional interaction event stream. No brokers
// disables publishing.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type AuthConfig struct {
	JWTSecret string          `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration   `mapstructure:"token_ttl"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

type SecurityConfig struct {
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

// RecommenderConfig holds the scoring and learning tunables.
type RecommenderConfig struct {
	MaxUsers         int           `mapstructure:"max_users"`
	MaxFeedback      int           `mapstructure:"max_feedback"`
	UserTTL          time.Duration `mapstructure:"user_ttl"`
	LearningRate     float64       `mapstructure:"learning_rate"`
	TFIDFMaxFeatures int           `mapstructure:"tfidf_max_features"`
	SynonymCacheSize int           `mapstructure:"synonym_cache_size"`
	FeedbackWindow   int           `mapstructure:"feedback_window"`
	TopSimilarItems  int           `mapstructure:"top_similar_items"`
	PopularItems     int           `mapstructure:"popular_items"`
	ColdStartBoost   float64       `mapstructure:"cold_start_boost"`
	DefaultTopK      int           `mapstructure:"default_top_k"`
}

func Load() (*Config, error) {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional, continue with env vars and defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "development")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	viper.SetDefault("storage.max_connections", 10)
	viper.SetDefault("storage.connect_timeout", "10s")

	viper.SetDefault("redis.max_retries", 3)
	viper.SetDefault("redis.pool_size", 10)
	viper.SetDefault("redis.timeout", "5s")

	viper.SetDefault("kafka.topic", "user-interactions")

	viper.SetDefault("auth.jwt_secret", "dev-only-secret")
	viper.SetDefault("auth.token_ttl", "24h")
	viper.SetDefault("auth.rate_limit.requests", 30)
	viper.SetDefault("auth.rate_limit.window", "1m")

	viper.SetDefault("security.cors.allowed_origins", []string{"*"})
	viper.SetDefault("security.cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	viper.SetDefault("security.cors.allowed_headers", []string{"*"})

	viper.SetDefault("recommender.max_users", 1000)
	viper.SetDefault("recommender.max_feedback", 5000)
	viper.SetDefault("recommender.user_ttl", "720h")
	viper.SetDefault("recommender.learning_rate", 0.01)
	viper.SetDefault("recommender.tfidf_max_features", 500)
	viper.SetDefault("recommender.synonym_cache_size", 100)
	viper.SetDefault("recommender.feedback_window", 100)
	viper.SetDefault("recommender.top_similar_items", 20)
	viper.SetDefault("recommender.popular_items", 10)
	viper.SetDefault("recommender.cold_start_boost", 2.0)
	viper.SetDefault("recommender.default_top_k", 10)
}
