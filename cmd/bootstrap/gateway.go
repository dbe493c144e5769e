package bootstrap

import (
	"fmt"
	"log/slog"

	"booking-core/internal/infra/gateway"
	"booking-core/internal/pkg/config"
	"booking-core/internal/pkg/promptpay"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewPaymentVerifier,
		NewPaymentPayloadEncoder,
	),
)

func NewPaymentVerifier(cfg config.Config, logger *slog.Logger) (commands.PaymentVerifier, error) {
	switch cfg.Payment.VerifierMode {
	case "http":
		if cfg.Payment.VerifierURL == "" {
			return nil, fmt.Errorf("PAYMENT_VERIFIER_URL is required when PAYMENT_VERIFIER_MODE=http")
		}
		return gateway.NewSlipVerifier(cfg.Payment.VerifierURL, cfg.Payment.VerifierAPIKey, cfg.Payment.VerifierTimeout), nil
	case "accept":
		logger.Warn("payment verification disabled, every proof is accepted")
		return gateway.NewAcceptAllVerifier(), nil
	default:
		return nil, fmt.Errorf("unknown PAYMENT_VERIFIER_MODE %q", cfg.Payment.VerifierMode)
	}
}

// NewPaymentPayloadEncoder returns nil when no PromptPay target is set;
// pending orders are then served without a QR payload.
func NewPaymentPayloadEncoder(cfg config.Config) (queries.PaymentPayloadEncoder, error) {
	if cfg.Payment.PromptPayID == "" {
		return nil, nil
	}
	enc, err := promptpay.NewEncoder(cfg.Payment.PromptPayID)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYMENT_PROMPTPAY_ID: %w", err)
	}
	return enc, nil
}
