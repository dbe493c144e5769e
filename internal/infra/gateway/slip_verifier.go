package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"booking-core/internal/domain/order"
	"booking-core/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrSlipRejected     = errs.New("slip rejected by verification service")
	ErrAmountDiffers    = errs.New("verified amount differs from expected amount")
	ErrVerifierNotReady = errs.New("slip verifier is not configured")
)

type verifyRequest struct {
	Ref    string `json:"ref"`
	Amount string `json:"amount"`
}

type verifyResponse struct {
	Success bool            `json:"success"`
	Amount  decimal.Decimal `json:"amount"`
	Message string          `json:"message,omitempty"`
}

// SlipVerifier asks an external slip verification service whether a bank
// transfer reference is authentic for an amount. Every non-success outcome is
// returned as an error; callers never treat an error as a pass.
type SlipVerifier struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewSlipVerifier(baseURL, apiKey string, timeout time.Duration) *SlipVerifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SlipVerifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (v *SlipVerifier) Verify(ctx context.Context, proof order.ProofRef, amount order.Money) error {
	if v.baseURL == "" {
		return ErrVerifierNotReady
	}

	body, err := json.Marshal(verifyRequest{Ref: proof.String(), Amount: amount.String()})
	if err != nil {
		return errs.Wrap(err, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/verify", bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	if v.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+v.apiKey)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var res verifyResponse
		if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
			return errs.Wrap(err, "decode response")
		}
		if !res.Success {
			if res.Message != "" {
				return errs.Wrap(ErrSlipRejected, res.Message)
			}
			return ErrSlipRejected
		}
		if !res.Amount.Equal(amount.Decimal()) {
			return errs.Wrapf(ErrAmountDiffers, "got %s, want %s", res.Amount.StringFixed(2), amount.String())
		}
		return nil
	case http.StatusNotFound, http.StatusUnprocessableEntity:
		return ErrSlipRejected
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Newf("unexpected status: %d, body: %s", resp.StatusCode, string(b))
	}
}

// AcceptAllVerifier approves every slip. Used in local development and the
// e2e suites.
type AcceptAllVerifier struct{}

func NewAcceptAllVerifier() *AcceptAllVerifier {
	return &AcceptAllVerifier{}
}

func (AcceptAllVerifier) Verify(ctx context.Context, _ order.ProofRef, _ order.Money) error {
	return ctx.Err()
}
