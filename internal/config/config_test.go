package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("PAYS_MERCHANT_ID", "123")
		t.Setenv("PAYS_SHOP_ID", "456")
		t.Setenv("PAYS_API_SECRET", "pays-secret")
		t.Setenv("PAYS_PRODUCTION", "true")
		t.Setenv("PAYS_LOCALE", "EN-US")
		t.Setenv("PAYS_RETURN_URL", "https://shop.example/return")
		t.Setenv("APP_PORT", "8080")
		t.Setenv("APP_ENV", "test")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, int64(123), cfg.MerchantID)
		assert.Equal(t, int64(456), cfg.ShopID)
		assert.Equal(t, "pays-secret", cfg.APISecret)
		assert.True(t, cfg.Production)
		assert.Equal(t, "EN-US", cfg.Locale)
		assert.Equal(t, "https://shop.example/return", cfg.ReturnURL)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("PAYS_MERCHANT_ID", "123")
		t.Setenv("PAYS_SHOP_ID", "456")
		t.Setenv("PAYS_API_SECRET", "pays-secret")
		t.Setenv("PAYS_PRODUCTION", "")
		t.Setenv("APP_PORT", "")

		cfg := LoadConfig()

		assert.False(t, cfg.Production)
		assert.Equal(t, "8080", cfg.AppPort)
	})
}
