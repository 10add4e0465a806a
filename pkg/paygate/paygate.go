package paygate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the hosted payment gateway. The gateway authorizes the
// buyer on its own checkout page and confirms payment out-of-band through a
// webhook; this client only starts the transaction.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// Config holds payment gateway connection details.
type Config struct {
	BaseURL   string
	SecretKey string
}

// InitializeRequest is the transaction-initialization payload.
type InitializeRequest struct {
	Amount    float64  `json:"amount"`
	Email     string   `json:"email"`
	Currency  string   `json:"currency,omitempty"`
	Reference string   `json:"reference"`
	Channels  []string `json:"channels,omitempty"`
	Narration string   `json:"narration,omitempty"`
}

// InitializeResponse mirrors the gateway's response; the buyer is redirected
// to Data.AuthorizationURL to complete payment.
type InitializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// NewClient creates a new gateway client.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		secretKey: cfg.SecretKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Initialize starts a hosted-checkout transaction and returns the
// authorization URL the buyer must be redirected to.
func (c *Client) Initialize(req InitializeRequest) (*InitializeResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal initialize request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build initialize request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("payment gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	var initResp InitializeResponse
	if err := json.Unmarshal(respBody, &initResp); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !initResp.Status {
		if initResp.Message != "" {
			return nil, fmt.Errorf("payment initialization rejected: %s", initResp.Message)
		}
		return nil, fmt.Errorf("payment initialization failed with status %d", resp.StatusCode)
	}
	if initResp.Data.AuthorizationURL == "" {
		return nil, fmt.Errorf("payment gateway returned no authorization URL")
	}

	return &initResp, nil
}
