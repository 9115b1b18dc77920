package webhook

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"pays-go/internal/logger"
	"pays-go/internal/order"
	"pays-go/internal/pays"

	"go.uber.org/zap"
)

// Handler processes the gateway's payment callback: authenticate, decode,
// then move the order. Validation failures never touch order state.
type Handler struct {
	cfg    *pays.Config
	orders order.Service
}

func NewHandler(cfg *pays.Config, orders order.Service) *Handler {
	return &Handler{cfg: cfg, orders: orders}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context())

	query := flattenQuery(r.URL.Query())
	payment, err := pays.ParseCallback(h.cfg, query)
	if err != nil {
		var missing *pays.MissingFieldError
		var malformed *pays.MalformedFieldError
		switch {
		case errors.Is(err, pays.ErrAuthenticationFailed):
			log.Warn("callback signature mismatch",
				zap.String("order_id", query["MerchantOrderNumber"]))
			http.Error(w, "authentication failed", http.StatusUnauthorized)
		case errors.As(err, &missing), errors.As(err, &malformed), errors.Is(err, pays.ErrInvalidArgument):
			log.Warn("rejected invalid callback", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Error("callback processing failed", zap.Error(err))
			http.Error(w, "invalid callback", http.StatusBadRequest)
		}
		return
	}

	gatewayID, _ := payment.GatewayPaymentID()
	log = log.With(
		zap.String("order_id", payment.ClientPaymentID()),
		zap.Int64("gateway_payment_id", gatewayID),
	)

	if payment.IsSuccess() {
		err = h.orders.MarkOrderAsPaid(payment.ClientPaymentID())
	} else {
		err = h.orders.MarkOrderAsFailed(payment.ClientPaymentID(), payment.StatusDescription())
	}
	if err != nil {
		log.Error("failed to update order", zap.Error(err))
		http.Error(w, "failed to update order", http.StatusInternalServerError)
		return
	}

	log.Info("payment callback processed", zap.Bool("success", payment.IsSuccess()))
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
}

// flattenQuery keeps the first value per key, which is all the gateway ever
// sends.
func flattenQuery(values url.Values) map[string]string {
	query := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			query[key] = vals[0]
		}
	}
	return query
}
