package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
	gatewayport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/gateway"
)

// DefaultBaseURL is Paystack's production API endpoint
const DefaultBaseURL = "https://api.paystack.co"

// MetadataTypeWalletFund marks an initialized transaction as a wallet funding,
// echoed back to us in the notification's metadata
const MetadataTypeWalletFund = "wallet_fund"

// Client is a client for the Paystack API
type Client struct {
	BaseURL     string
	SecretKey   string
	CallbackURL string
	HTTPClient  *http.Client
}

// NewClient creates a new Paystack API client
func NewClient(baseURL, secretKey, callbackURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:     baseURL,
		SecretKey:   secretKey,
		CallbackURL: callbackURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// initializeRequest is the payload for POST /transaction/initialize
type initializeRequest struct {
	Email       string             `json:"email"`
	Amount      int64              `json:"amount"` // kobo
	Reference   string             `json:"reference"`
	CallbackURL string             `json:"callback_url,omitempty"`
	Metadata    initializeMetadata `json:"metadata"`
}

type initializeMetadata struct {
	AccountID string `json:"userId"`
	Type      string `json:"type"`
}

// initializeResponse is the expected response from the initialize endpoint
type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// InitializeFunding starts a hosted checkout for the given amount and
// locally generated reference
func (c *Client) InitializeFunding(
	ctx context.Context,
	email string,
	amountInKobo int64,
	reference string,
	accountID string,
) (*gatewayport.FundingSession, error) {
	payload := initializeRequest{
		Email:       email,
		Amount:      amountInKobo,
		Reference:   reference,
		CallbackURL: c.CallbackURL,
		Metadata: initializeMetadata{
			AccountID: accountID,
			Type:      MetadataTypeWalletFund,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal initialize request: %s", errs.ErrGatewayUnavailable, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrGatewayUnavailable, err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrGatewayUnavailable, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %s", errs.ErrGatewayUnavailable, err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: initialize returned status %d: %s",
			errs.ErrGatewayUnavailable, resp.StatusCode, string(respBody))
	}

	var parsed initializeResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %s", errs.ErrGatewayUnavailable, err.Error())
	}
	if !parsed.Status {
		return nil, fmt.Errorf("%w: %s", errs.ErrGatewayUnavailable, parsed.Message)
	}

	return &gatewayport.FundingSession{
		AuthorizationURL: parsed.Data.AuthorizationURL,
		AccessCode:       parsed.Data.AccessCode,
		Reference:        parsed.Data.Reference,
	}, nil
}
