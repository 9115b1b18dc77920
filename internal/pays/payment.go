package pays

import "fmt"

// Status is the settlement outcome code the gateway reports in a callback.
// The codes are opaque strings from the gateway contract.
type Status string

const (
	StatusFailure Status = "2"
	StatusSuccess Status = "3"
)

const maxClientPaymentIDLen = 100

// Payment is one payment order. Outbound instances are created by the caller
// and stay mutable until handed to BuildPaymentURL; inbound instances come
// out of ParseCallback fully populated and should be treated as read-only.
type Payment struct {
	// Email is the customer contact; the gateway sends its confirmation
	// there. Optional, omitted from the redirect URL when empty.
	Email string

	// Money carries the price and currency of the order.
	Money Money

	clientPaymentID   string
	gatewayPaymentID  int64
	hasGatewayPayment bool
	status            Status
	statusDescription string
}

// NewPayment creates an outbound payment for the given merchant order
// number. The ID identifies the order to the shop, not to the gateway, and
// must be 1..100 characters.
func NewPayment(clientPaymentID string) (*Payment, error) {
	if clientPaymentID == "" || len(clientPaymentID) > maxClientPaymentIDLen {
		return nil, fmt.Errorf("%w: client payment ID must be 1..100 characters", ErrInvalidArgument)
	}
	return &Payment{clientPaymentID: clientPaymentID}, nil
}

// ClientPaymentID returns the merchant-assigned order number.
func (p *Payment) ClientPaymentID() string {
	return p.clientPaymentID
}

// GatewayPaymentID returns the gateway-assigned payment ID. It is only
// present on payments produced by ParseCallback.
func (p *Payment) GatewayPaymentID() (int64, bool) {
	return p.gatewayPaymentID, p.hasGatewayPayment
}

// Status returns the settlement status, empty until a callback set it.
func (p *Payment) Status() Status {
	return p.status
}

// StatusDescription returns the gateway's free-text status note, if any.
func (p *Payment) StatusDescription() string {
	return p.statusDescription
}

// IsSuccess reports whether the gateway settled the payment successfully.
func (p *Payment) IsSuccess() bool {
	return p.status == StatusSuccess
}
