package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

// Client talks to the Razorpay REST API using key id/secret basic auth.
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	currency   string
	httpClient *http.Client
}

// NewClient creates a new Razorpay API client.
func NewClient(keyID, keySecret, currency string) *Client {
	return &Client{
		baseURL:   defaultBaseURL,
		keyID:     keyID,
		keySecret: keySecret,
		currency:  currency,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithBaseURL creates a client against a custom API endpoint, for tests.
func NewClientWithBaseURL(baseURL, keyID, keySecret, currency string) *Client {
	c := NewClient(keyID, keySecret, currency)
	c.baseURL = baseURL
	return c
}

// Order is a gateway-side reservation of an amount, created before the
// user pays. Amount is in minor currency units (paise for INR).
type Order struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder creates an order for the given amount in major currency
// units. The amount is converted to minor units (x100) on the wire.
func (c *Client) CreateOrder(ctx context.Context, amountMajor float64) (*Order, error) {
	body := createOrderRequest{
		Amount:   MinorUnits(amountMajor),
		Currency: c.currency,
		Receipt:  "receipt_" + uuid.NewString(),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/orders"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("razorpay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("razorpay API error: %s - %s", resp.Status, string(errBody))
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}

	return &order, nil
}

// MinorUnits converts a major-unit amount to minor units (paise).
func MinorUnits(amountMajor float64) int64 {
	return int64(math.Round(amountMajor * 100))
}
