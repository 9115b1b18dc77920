package pays

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type queryPair struct {
	key   string
	value string
}

// BuildPaymentURL serializes the payment into the gateway redirect URL. The
// query field order is fixed by the gateway contract and stable for a given
// input, so the output is byte-identical across calls. No network I/O
// happens here; issuing the actual redirect belongs to the caller.
func BuildPaymentURL(cfg *Config, payment *Payment, returnURL string) (string, error) {
	base, err := cfg.gatewayURL()
	if err != nil {
		return "", err
	}
	if payment == nil || payment.clientPaymentID == "" {
		return "", fmt.Errorf("%w: payment must be created with NewPayment", ErrInvalidArgument)
	}

	amount, err := payment.Money.Amount()
	if err != nil {
		return "", err
	}

	pairs := []queryPair{
		{"Merchant", strconv.FormatInt(cfg.MerchantID, 10)},
		{"Shop", strconv.FormatInt(cfg.ShopID, 10)},
		{"Currency", string(payment.Money.Currency())},
		{"Amount", strconv.FormatInt(amount, 10)},
		{"MerchantOrderNumber", payment.clientPaymentID},
	}
	if payment.Email != "" {
		pairs = append(pairs, queryPair{"Email", payment.Email})
	}
	pairs = append(pairs, queryPair{"Lang", string(cfg.Locale)})
	if returnURL != "" {
		pairs = append(pairs, queryPair{"ReturnURL", returnURL})
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.key+"="+url.QueryEscape(p.value))
	}
	return base + "?" + strings.Join(parts, "&"), nil
}
