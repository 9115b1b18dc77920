package pays

import (
	"fmt"
	"strconv"
)

// Inbound callback query keys, case-sensitive per the gateway contract.
const (
	fieldMerchantOrderNumber = "MerchantOrderNumber"
	fieldPaymentOrderID      = "PaymentOrderID"
	fieldAmount              = "Amount"
	fieldCurrencyID          = "CurrencyID"
	fieldCurrencyBaseUnits   = "CurrencyBaseUnits"
	fieldStatusID            = "PaymentOrderStatusID"
	fieldStatusDescription   = "PaymentOrderStatusDescription"
	fieldHash                = "hash"
)

var requiredCallbackFields = []string{
	fieldMerchantOrderNumber,
	fieldPaymentOrderID,
	fieldAmount,
	fieldCurrencyID,
	fieldCurrencyBaseUnits,
	fieldStatusID,
	fieldHash,
}

// ParseCallback authenticates and decodes a gateway payment notification.
// Field presence is checked first, then field syntax, so that malformed
// input yields a specific error; the keyed-hash check runs last and is the
// final gate before any data is handed back. On any error no Payment is
// returned.
func ParseCallback(cfg *Config, query map[string]string) (*Payment, error) {
	for _, f := range requiredCallbackFields {
		if query[f] == "" {
			return nil, &MissingFieldError{Field: f}
		}
	}

	clientPaymentID := query[fieldMerchantOrderNumber]
	if len(clientPaymentID) > maxClientPaymentIDLen {
		return nil, fmt.Errorf("%w: client payment ID must be 1..100 characters", ErrInvalidArgument)
	}

	gatewayPaymentID, err := strconv.ParseInt(query[fieldPaymentOrderID], 10, 64)
	if err != nil {
		return nil, &MalformedFieldError{Field: fieldPaymentOrderID, Reason: "not an integer"}
	}

	amount, err := strconv.ParseInt(query[fieldAmount], 10, 64)
	if err != nil {
		return nil, &MalformedFieldError{Field: fieldAmount, Reason: "not an integer"}
	}

	currency, err := ParseCurrency(query[fieldCurrencyID])
	if err != nil {
		return nil, err
	}

	baseUnits, err := strconv.ParseInt(query[fieldCurrencyBaseUnits], 10, 64)
	if err != nil || baseUnits <= 0 {
		return nil, &MalformedFieldError{Field: fieldCurrencyBaseUnits, Reason: "not a positive integer"}
	}
	// The gateway supplies its own divisor; a value that disagrees with the
	// currency table means the contract drifted and the price cannot be
	// trusted.
	if baseUnits != currency.BaseUnits() {
		return nil, &MalformedFieldError{Field: fieldCurrencyBaseUnits, Reason: "does not match the currency's minor-unit scale"}
	}

	status := Status(query[fieldStatusID])
	if status != StatusFailure && status != StatusSuccess {
		return nil, &MalformedFieldError{Field: fieldStatusID, Reason: "not a known status code"}
	}

	signer := NewSigner(cfg.Secret, cfg.NewHash)
	msg := canonicalStringV1(gatewayPaymentID, clientPaymentID, status, currency, amount, baseUnits)
	if !signer.Verify(msg, query[fieldHash]) {
		return nil, ErrAuthenticationFailed
	}

	payment, err := NewPayment(clientPaymentID)
	if err != nil {
		return nil, err
	}
	payment.gatewayPaymentID = gatewayPaymentID
	payment.hasGatewayPayment = true
	payment.Money = moneyFromMinorUnits(amount, baseUnits, currency)
	payment.status = status
	payment.statusDescription = query[fieldStatusDescription]
	return payment, nil
}
