package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	GRPC  GRPCConfig
	Mongo MongoConfig
	NATS  NATSConfig
	Gate  GateConfig
	Chat  ChatConfig
}

type GRPCConfig struct {
	Port string
}

type MongoConfig struct {
	URI string
	DB  string
}

type NATSConfig struct {
	URL string
}

// GateConfig is the access gate in front of the storefront. When enabled,
// every session must present the passphrase once before any other
// operation; the check waits CheckDelay to mimic a remote verification.
type GateConfig struct {
	Enabled    bool
	Passphrase string
	CheckDelay time.Duration
}

type ChatConfig struct {
	ReplyDelay time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		GRPC: GRPCConfig{
			Port: getEnv("GRPC_PORT", "50051"),
		},
		Mongo: MongoConfig{
			URI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
			DB:  getEnv("MONGO_DB", "storefront"),
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Gate: GateConfig{
			Enabled:    getBoolEnv("GATE_ENABLED", false),
			Passphrase: getEnv("GATE_PASSPHRASE", ""),
			CheckDelay: getDurationEnv("GATE_CHECK_DELAY", 600*time.Millisecond),
		},
		Chat: ChatConfig{
			ReplyDelay: getDurationEnv("CHAT_REPLY_DELAY", 600*time.Millisecond),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.GRPC.Port == "" {
		return fmt.Errorf("GRPC_PORT is required")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.Mongo.DB == "" {
		return fmt.Errorf("MONGO_DB is required")
	}
	if c.Gate.Enabled && c.Gate.Passphrase == "" {
		return fmt.Errorf("GATE_PASSPHRASE is required when GATE_ENABLED is set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
