package main

import (
	"os"
	"strings"
)

// Config holds all environment variables for the catalog service.
type Config struct {
	Port          string
	CatalogSource string // "mongo" or "mock"
	MongoURL      string
	MongoDB       string
	RedisURL      string
	KafkaBrokers  []string
	KafkaTopic    string

	AWSRegion     string
	AWSEndpoint   string
	S3Bucket      string
	S3Prefix      string
	AWSAccessKey  string
	AWSSecretKey  string
	CDNDomain     string
	EnableUploads bool
}

// LoadConfig reads the environment with defaults. The mock catalog is
// used whenever no Mongo URL is configured, so the service runs with no
// external catalog store at all.
func LoadConfig() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "8083"),
		CatalogSource: strings.ToLower(getEnv("CATALOG_SOURCE", "")),
		MongoURL:      os.Getenv("MONGO_URL"),
		MongoDB:       getEnv("MONGO_DB", "storefront"),
		RedisURL:      getEnv("REDIS_URL", "redis://redis:6379"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "catalog.events"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		AWSEndpoint:   os.Getenv("AWS_ENDPOINT"),
		S3Bucket:      getEnv("AWS_S3_BUCKET", "storefront"),
		S3Prefix:      getEnv("AWS_S3_PREFIX", "products/"),
		AWSAccessKey:  os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:  os.Getenv("AWS_SECRET_ACCESS_KEY"),
		CDNDomain:     os.Getenv("AWS_CLOUDFRONT_DOMAIN"),
		EnableUploads: os.Getenv("ENABLE_UPLOADS") == "true",
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if trimmed := strings.TrimSpace(b); trimmed != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, trimmed)
			}
		}
	}

	if cfg.CatalogSource == "" {
		if cfg.MongoURL != "" {
			cfg.CatalogSource = "mongo"
		} else {
			cfg.CatalogSource = "mock"
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
