package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the external card processor. It only ever creates payment
// intents; the buyer completes the charge out-of-band with the returned
// client secret, and no local state is written here.
type Client struct {
	BaseURL   string
	SecretKey string
	HTTP      *http.Client
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		SecretKey: secretKey,
		HTTP:      &http.Client{Timeout: 10 * time.Second},
	}
}

// MinorUnits converts a price to integer minor-currency units.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

type intentResponse struct {
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateIntent requests a payment intent for the given amount in minor units
// and returns the client secret.
func (c *Client) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	var out intentResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("payment processor: bad response (status %d)", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != nil && out.Error.Message != "" {
			return "", errors.New("payment processor: " + out.Error.Message)
		}
		return "", fmt.Errorf("payment processor: status %d", resp.StatusCode)
	}
	if out.ClientSecret == "" {
		return "", errors.New("payment processor: missing client secret")
	}
	return out.ClientSecret, nil
}
