package main

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config contém a configuração do processo, carregada do ambiente na subida
type Config struct {
	Port        string
	ServiceName string
	DatabaseDSN string

	// segredo de assinatura das sessões; obrigatório, sem default
	JWTSecret []byte
	TokenTTL  time.Duration

	RedisAddr    string
	KafkaBrokers []string
	OTLPEndpoint string

	SeedSampleData bool
}

func loadConfig() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DATABASE_USER", "root"),
		getEnv("DATABASE_PASSWORD", "pass"),
		getEnv("DATABASE_HOST", "localhost"),
		getEnv("DATABASE_PORT", "5432"),
		getEnv("DATABASE_NAME", "pix_ecommerce"),
	)

	var brokers []string
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = strings.Split(v, ",")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		ServiceName:    getEnv("SERVICE_NAME", "pix-ecommerce"),
		DatabaseDSN:    dsn,
		JWTSecret:      []byte(secret),
		TokenTTL:       24 * time.Hour,
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		KafkaBrokers:   brokers,
		OTLPEndpoint:   getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		SeedSampleData: getEnv("SEED_SAMPLE_DATA", "false") == "true",
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
