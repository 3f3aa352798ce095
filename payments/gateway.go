package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/letaunahn/ecommerce-ai-shop-backend/config"
	"github.com/shopspring/decimal"
)

// Intent is the processor's handle for an authorized-but-not-captured
// payment attempt. ClientSecret is opaque and handed to the caller to
// complete payment client-side.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway creates payment intents with the external processor.
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (Intent, error)
}

// Client talks to the processor's REST API.
type Client struct {
	apiURL     string
	secretKey  string
	httpClient *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		apiURL:    strings.TrimRight(cfg.PaymentAPIURL, "/"),
		secretKey: cfg.PaymentSecretKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CreateIntent opens a payment intent for the given amount in minor
// currency units. A context timeout is treated like any other failure.
func (c *Client) CreateIntent(ctx context.Context, amountMinor int64, currency string) (Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinor, 10))
	form.Set("currency", currency)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return Intent{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Intent{}, fmt.Errorf("failed to reach payment processor: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Intent{}, fmt.Errorf("failed to read processor response: %w", err)
	}

	var parsed intentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Intent{}, fmt.Errorf("failed to parse processor response: %w", err)
	}
	if parsed.Error != nil {
		return Intent{}, fmt.Errorf("processor error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return Intent{}, fmt.Errorf("processor API error (%d): %s", resp.StatusCode, string(body))
	}
	if parsed.ID == "" || parsed.ClientSecret == "" {
		return Intent{}, fmt.Errorf("processor returned empty intent")
	}

	return Intent{ID: parsed.ID, ClientSecret: parsed.ClientSecret}, nil
}

// MinorUnits converts a decimal amount to integer minor currency units,
// e.g. 59.40 -> 5940.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
