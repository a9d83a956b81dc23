// PrinceMahmood | 2026
// client.go

package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/princemahmood117/stayvista-server/internal/config"
	"github.com/princemahmood117/stayvista-server/internal/core"
)

// Intent is the slice of the processor's payment intent the API exposes.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// Processor creates payment intents with an external payment provider.
type Processor interface {
	CreateIntent(ctx context.Context, amount int64) (*Intent, error)
}

// StripeClient talks to the Stripe REST API. Calls go through a circuit
// breaker so a degraded processor sheds load fast instead of tying up
// request goroutines in timeouts.
type StripeClient struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	currency   string
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

func NewStripeClient(cfg config.StripeConfig, logger *slog.Logger) *StripeClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "stripe",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("payment processor circuit state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})

	return &StripeClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:  cfg.SecretKey,
		currency:   cfg.Currency,
		breaker:    breaker,
		logger:     logger,
	}
}

func (c *StripeClient) CreateIntent(
	ctx context.Context,
	amount int64,
) (*Intent, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		return c.createIntent(ctx, amount)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, fmt.Errorf("payment processor unavailable: %w", err)
		}
		return nil, err
	}

	return result.(*Intent), nil
}

func (c *StripeClient) createIntent(
	ctx context.Context,
	amount int64,
) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", c.currency)
	form.Set("automatic_payment_methods[enabled]", "true")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/payment_intents",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("create payment intent request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call payment processor: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read payment processor response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.apiError(resp.StatusCode, body)
	}

	var intent Intent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("decode payment intent: %w", err)
	}
	if intent.ClientSecret == "" {
		return nil, fmt.Errorf("payment intent missing client secret")
	}

	return &intent, nil
}

func (c *StripeClient) apiError(status int, body []byte) error {
	var apiErr struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil &&
		apiErr.Error.Message != "" {
		c.logger.Error("payment processor rejected the request",
			"status", status,
			"type", apiErr.Error.Type,
			"message", apiErr.Error.Message,
		)
		if status >= 400 && status < 500 {
			return fmt.Errorf(
				"payment processor: %s: %w",
				apiErr.Error.Message, core.ErrInvalidInput,
			)
		}
		return fmt.Errorf("payment processor: %s", apiErr.Error.Message)
	}

	return fmt.Errorf("payment processor returned status %d", status)
}

var _ Processor = (*StripeClient)(nil)
