package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
)

type Config struct {
	Port          string
	StorageDriver string

	DatabaseURL        string
	PostgresAutoSchema bool

	AWSRegion          string
	DynamoDBEndpoint   string
	S3Endpoint         string
	ServiceOrdersTable string
	TenantsTable       string
	ProfilesTable      string
	OrderChargesTable  string

	LogoFetchTimeout time.Duration
	DraftTTL         time.Duration

	MercadoPagoAccessToken string
}

func Load() Config {
	return Config{
		Port:          readString("PORT", "8080"),
		StorageDriver: strings.ToLower(readString("STORAGE_DRIVER", StorageDynamoDB)),

		DatabaseURL:        os.Getenv("DB_DSN"),
		PostgresAutoSchema: readBool("DB_AUTO_SCHEMA", false),

		AWSRegion:          readString("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		S3Endpoint:         os.Getenv("S3_ENDPOINT"),
		ServiceOrdersTable: readString("SERVICE_ORDERS_TABLE", "service_orders"),
		TenantsTable:       readString("TENANTS_TABLE", "tenants"),
		ProfilesTable:      readString("PROFILES_TABLE", "profiles"),
		OrderChargesTable:  readString("ORDER_CHARGES_TABLE", "order_charges"),

		LogoFetchTimeout: readDurationSeconds("LOGO_FETCH_TIMEOUT_SECONDS", 10),
		DraftTTL:         time.Duration(readInt("DRAFT_TTL_MINUTES", 120)) * time.Minute,

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
	}
}

func readString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func readBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func readDurationSeconds(key string, fallback int) time.Duration {
	value := readInt(key, fallback)
	if value <= 0 {
		return 0
	}
	return time.Duration(value) * time.Second
}

func readInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
