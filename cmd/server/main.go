package main

import (
	"net/http"
	"strconv"

	"pays-go/internal/config"
	"pays-go/internal/logger"
	"pays-go/internal/middleware"
	"pays-go/internal/order"
	"pays-go/internal/pays"
	"pays-go/internal/webhook"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	paysCfg, err := pays.NewConfig(cfg.MerchantID, cfg.ShopID, cfg.APISecret, cfg.Production)
	if err != nil {
		logger.L().Fatal("invalid gateway configuration", zap.Error(err))
	}
	if cfg.Locale != "" {
		if err := paysCfg.SetLocale(cfg.Locale); err != nil {
			logger.L().Fatal("invalid gateway configuration", zap.Error(err))
		}
	}
	if cfg.TestGatewayURL != "" {
		paysCfg.TestGatewayURL = cfg.TestGatewayURL
	}

	orders := order.NewMemoryService()

	mux := http.NewServeMux()
	mux.HandleFunc("/checkout", checkoutHandler(paysCfg, orders, cfg.ReturnURL))
	mux.Handle("/callback/pays", webhook.NewHandler(paysCfg, orders))

	handler := logger.RequestIDMiddleware(
		middleware.RateLimitMiddleware(
			middleware.LoggingMiddleware(mux)))

	logger.L().Info("pays gateway server listening",
		zap.String("port", cfg.AppPort),
		zap.Bool("production", cfg.Production),
	)
	if err := http.ListenAndServe(":"+cfg.AppPort, handler); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

// checkoutHandler registers a pending order and redirects the customer to
// the hosted payment page.
func checkoutHandler(cfg *pays.Config, orders *order.MemoryService, returnURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		price, err := strconv.ParseFloat(r.URL.Query().Get("price"), 64)
		if err != nil {
			http.Error(w, "price must be a decimal number", http.StatusBadRequest)
			return
		}

		orderID := uuid.New().String()
		payment, err := pays.NewPayment(orderID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if err := payment.Money.SetPrice(price); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if currency := r.URL.Query().Get("currency"); currency != "" {
			if err := payment.Money.SetCurrency(currency); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		payment.Email = r.URL.Query().Get("email")

		gatewayURL, err := pays.BuildPaymentURL(cfg, payment, returnURL)
		if err != nil {
			log.Error("cannot build payment url", zap.Error(err))
			http.Error(w, "cannot build payment url", http.StatusInternalServerError)
			return
		}

		amount, _ := payment.Money.Amount()
		orders.Create(orderID, amount)

		log.Info("redirecting to gateway",
			zap.String("order_id", orderID),
			zap.Int64("amount", amount),
			zap.String("currency", string(payment.Money.Currency())),
		)
		http.Redirect(w, r, gatewayURL, http.StatusFound)
	}
}
