package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	AppEnv         string
	MerchantID     int64
	ShopID         int64
	APISecret      string
	Production     bool
	Locale         string
	TestGatewayURL string
	ReturnURL      string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	merchantID, err := strconv.ParseInt(os.Getenv("PAYS_MERCHANT_ID"), 10, 64)
	if err != nil {
		log.Fatal("PAYS_MERCHANT_ID must be set to a positive integer")
	}
	shopID, err := strconv.ParseInt(os.Getenv("PAYS_SHOP_ID"), 10, 64)
	if err != nil {
		log.Fatal("PAYS_SHOP_ID must be set to a positive integer")
	}

	production, _ := strconv.ParseBool(os.Getenv("PAYS_PRODUCTION"))

	cfg := &Config{
		AppPort:        os.Getenv("APP_PORT"),
		AppEnv:         os.Getenv("APP_ENV"),
		MerchantID:     merchantID,
		ShopID:         shopID,
		APISecret:      os.Getenv("PAYS_API_SECRET"),
		Production:     production,
		Locale:         os.Getenv("PAYS_LOCALE"),
		TestGatewayURL: os.Getenv("PAYS_TEST_GATEWAY_URL"),
		ReturnURL:      os.Getenv("PAYS_RETURN_URL"),
	}

	if cfg.APISecret == "" {
		log.Fatal("PAYS_API_SECRET is not set, callbacks cannot be verified")
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	return cfg
}
