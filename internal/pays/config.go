package pays

import (
	"crypto/md5"
	"fmt"
	"hash"
)

const (
	productionGatewayURL = "https://www.pays.cz/paymentorder"
	testGatewayURL       = "https://www.pays.cz/test-paymentorder"
)

// Locale selects the language of the hosted payment page.
type Locale string

const (
	LocaleCSCZ Locale = "CS-CZ"
	LocaleSKSK Locale = "SK-SK"
	LocaleENUS Locale = "EN-US"
	LocaleRURU Locale = "RU-RU"
	LocaleJAJP Locale = "JA-JP"
)

var locales = map[Locale]struct{}{
	LocaleCSCZ: {},
	LocaleSKSK: {},
	LocaleENUS: {},
	LocaleRURU: {},
	LocaleJAJP: {},
}

// Config holds the merchant credentials and gateway settings. Build it once
// with NewConfig at startup; it must not be modified after first use and is
// then safe for concurrent use.
type Config struct {
	MerchantID int64
	ShopID     int64

	// Secret signs callback notifications. Only needed when callbacks are
	// validated.
	Secret string

	Production bool
	Locale     Locale

	// TestGatewayURL is the endpoint used when Production is false. Clear
	// it to disable test mode entirely; building a non-production URL then
	// fails with ErrEnvironmentUnsupported.
	TestGatewayURL string

	// NewHash constructs the digest for the callback keyed hash. Defaults
	// to MD5, which is what the live gateway computes; swapping it does not
	// change the signed field contract.
	NewHash func() hash.Hash
}

// NewConfig validates the merchant identity and fills in the gateway
// defaults.
func NewConfig(merchantID, shopID int64, secret string, production bool) (*Config, error) {
	if merchantID <= 0 {
		return nil, fmt.Errorf("%w: merchant ID must be positive", ErrInvalidConfiguration)
	}
	if shopID <= 0 {
		return nil, fmt.Errorf("%w: shop ID must be positive", ErrInvalidConfiguration)
	}
	return &Config{
		MerchantID:     merchantID,
		ShopID:         shopID,
		Secret:         secret,
		Production:     production,
		Locale:         LocaleCSCZ,
		TestGatewayURL: testGatewayURL,
		NewHash:        md5.New,
	}, nil
}

// SetLocale validates and stores the payment page language.
func (c *Config) SetLocale(locale string) error {
	l := Locale(locale)
	if _, ok := locales[l]; !ok {
		return fmt.Errorf("%w: unknown locale %q", ErrInvalidConfiguration, locale)
	}
	c.Locale = l
	return nil
}

// gatewayURL picks the redirect endpoint for the configured environment.
func (c *Config) gatewayURL() (string, error) {
	if c.Production {
		return productionGatewayURL, nil
	}
	if c.TestGatewayURL == "" {
		return "", ErrEnvironmentUnsupported
	}
	return c.TestGatewayURL, nil
}
