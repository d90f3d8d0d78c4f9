package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

type Config struct {
	Port   string
	AppEnv string

	StorageDriver string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// CartTTL bounds the durable, session-scoped cart record.
	CartTTL time.Duration
	// CouponTTL bounds the volatile coupon record.
	CouponTTL time.Duration

	SessionCacheSize int
	ConnectRetries   int

	KafkaBroker    string
	KafkaTopic     string
	KafkaGroupID   string
	OutboxInterval time.Duration

	CORSAllowOrigins []string
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Load reads the process environment. Malformed values fall back to their
// defaults and are reported through the global logger.
func Load() Config {
	return Config{
		Port:   getEnv("PORT", "3000"),
		AppEnv: getEnv("APP_ENV", "production"),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", DriverMemory)),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),

		CartTTL:   getDuration("CART_TTL", 7*24*time.Hour),
		CouponTTL: getDuration("COUPON_TTL", 2*time.Hour),

		SessionCacheSize: getInt("SESSION_CACHE_SIZE", 1024),
		ConnectRetries:   getInt("CONNECT_RETRIES", 5),

		KafkaBroker:    getEnv("KAFKA_BROKER", ""),
		KafkaTopic:     getEnv("KAFKA_TOPIC", "storefront.events"),
		KafkaGroupID:   getEnv("KAFKA_GROUP_ID", "storefront-cart-consumer"),
		OutboxInterval: getDuration("OUTBOX_INTERVAL", 5*time.Second),

		CORSAllowOrigins: getList("CORS_ALLOW_ORIGINS", []string{"*"}),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		zap.L().Warn("invalid integer in env, using default",
			zap.String("key", key),
			zap.String("value", raw),
			zap.Int("default", fallback),
		)
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		zap.L().Warn("invalid duration in env, using default",
			zap.String("key", key),
			zap.String("value", raw),
			zap.Duration("default", fallback),
		)
		return fallback
	}
	return v
}

func getList(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
