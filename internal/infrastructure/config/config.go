// Package config loads the service settings from the environment.
//
// A .env file in the working directory is loaded first (godotenv autoload);
// real environment variables always win.
package config

import (
	"fmt"
	"strings"
	"time"

	"sacola_api/internal/domain/pricing"

	_ "github.com/joho/godotenv/autoload"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	StorageSQLite   = "sqlite"
	StorageDynamoDB = "dynamodb"

	// DevJWTSecret is only accepted when APP_ENV is a development value.
	DevJWTSecret = "sacola-dev-secret"
)

type Config struct {
	Port          string
	AppEnv        string
	JWTSecret     string
	JWTTTL        time.Duration
	StorageDriver string
	SQLitePath    string
	CORSOrigins   []string

	FreeShippingThreshold decimal.Decimal
	DefaultShippingCost   decimal.Decimal

	Payments PaymentsConfig
	DynamoDB DynamoDBConfig
}

type PaymentsConfig struct {
	AccessToken    string
	Mock           bool
	TestPayerEmail string
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Tables          DynamoDBTables
}

type DynamoDBTables struct {
	CartItems      string
	Addresses      string
	Coupons        string
	AppliedCoupons string
	Users          string
	Payments       string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3002")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("JWT_SECRET", DevJWTSecret)
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("STORAGE_DRIVER", StorageSQLite)
	v.SetDefault("SQLITE_PATH", "sacola.db")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("FREE_SHIPPING_THRESHOLD", "200.00")
	v.SetDefault("DEFAULT_SHIPPING_COST", "15.90")

	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", false)
	v.SetDefault("MERCADOPAGO_TEST_PAYER_EMAIL", "")

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("CART_ITEMS_TABLE", "cart_items")
	v.SetDefault("ADDRESSES_TABLE", "addresses")
	v.SetDefault("COUPONS_TABLE", "coupons")
	v.SetDefault("APPLIED_COUPONS_TABLE", "applied_coupons")
	v.SetDefault("USERS_TABLE", "users")
	v.SetDefault("PAYMENTS_TABLE", "payments")
}

// Load reads the process environment.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	threshold, err := decimal.NewFromString(strings.TrimSpace(v.GetString("FREE_SHIPPING_THRESHOLD")))
	if err != nil {
		return Config{}, fmt.Errorf("FREE_SHIPPING_THRESHOLD: %w", err)
	}
	flat, err := decimal.NewFromString(strings.TrimSpace(v.GetString("DEFAULT_SHIPPING_COST")))
	if err != nil {
		return Config{}, fmt.Errorf("DEFAULT_SHIPPING_COST: %w", err)
	}
	if threshold.IsNegative() || flat.IsNegative() {
		return Config{}, fmt.Errorf("shipping amounts must not be negative")
	}

	ttl := v.GetDuration("JWT_TTL")
	if ttl <= 0 {
		return Config{}, fmt.Errorf("JWT_TTL must be a positive duration, got %q", v.GetString("JWT_TTL"))
	}

	appEnv := strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV")))
	secret := strings.TrimSpace(v.GetString("JWT_SECRET"))
	if secret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must not be empty")
	}
	if secret == DevJWTSecret && !isDevelopmentEnv(appEnv) {
		return Config{}, fmt.Errorf("JWT_SECRET must be set when APP_ENV is %q", appEnv)
	}

	driver := strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER")))
	if driver != StorageSQLite && driver != StorageDynamoDB {
		return Config{}, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageSQLite, StorageDynamoDB, driver)
	}

	// MERCADOPAGO_MOCK is the older name of the flag.
	mock := v.GetBool("PAYMENT_GATEWAY_MOCK") || v.GetBool("MERCADOPAGO_MOCK")

	return Config{
		Port:                  v.GetString("PORT"),
		AppEnv:                appEnv,
		JWTSecret:             secret,
		JWTTTL:                ttl,
		StorageDriver:         driver,
		SQLitePath:            v.GetString("SQLITE_PATH"),
		CORSOrigins:           splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		FreeShippingThreshold: threshold,
		DefaultShippingCost:   flat,
		Payments: PaymentsConfig{
			AccessToken:    strings.TrimSpace(v.GetString("MERCADOPAGO_ACCESS_TOKEN")),
			Mock:           mock,
			TestPayerEmail: strings.TrimSpace(v.GetString("MERCADOPAGO_TEST_PAYER_EMAIL")),
		},
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("AWS_REGION"),
			Endpoint:        v.GetString("DYNAMODB_ENDPOINT"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Tables: DynamoDBTables{
				CartItems:      v.GetString("CART_ITEMS_TABLE"),
				Addresses:      v.GetString("ADDRESSES_TABLE"),
				Coupons:        v.GetString("COUPONS_TABLE"),
				AppliedCoupons: v.GetString("APPLIED_COUPONS_TABLE"),
				Users:          v.GetString("USERS_TABLE"),
				Payments:       v.GetString("PAYMENTS_TABLE"),
			},
		},
	}, nil
}

func (c Config) IsDevelopment() bool {
	return isDevelopmentEnv(c.AppEnv)
}

func isDevelopmentEnv(env string) bool {
	return env == "dev" || env == "development" || env == "local"
}

// Pricing returns the engine configuration with the default frete table.
func (c Config) Pricing() pricing.Config {
	cfg := pricing.DefaultConfig()
	cfg.FreeShippingThreshold = c.FreeShippingThreshold
	cfg.DefaultShippingCost = c.DefaultShippingCost
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
