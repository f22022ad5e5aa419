package lightning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"uma-vasp-backend/config"
	"uma-vasp-backend/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/uma-universal-money-address/uma-go-sdk/uma/protocol"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.LightningClient against the node's REST API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a Lightning node REST client.
func NewClient(cfg config.LightningConfig, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiToken:   cfg.APIToken,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// NewClientWithHTTP creates a client with a custom HTTP client, for tests.
func NewClientWithHTTP(cfg config.LightningConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiToken:   cfg.APIToken,
		httpClient: httpClient,
		log:        log,
	}
}

type invoiceResponse struct {
	EncodedInvoice string `json:"encoded_invoice"`
}

type decodedInvoiceResponse struct {
	PaymentHash string `json:"payment_hash"`
	AmountMsats int64  `json:"amount_msats"`
	ExpiresAt   int64  `json:"expires_at"`
}

type paymentResponse struct {
	ID              string                     `json:"id"`
	Status          string                     `json:"status"`
	TransactionHash *string                    `json:"transaction_hash,omitempty"`
	Preimage        *string                    `json:"preimage,omitempty"`
	ResolvedAt      *int64                     `json:"resolved_at,omitempty"`
	Utxos           []protocol.UtxoWithAmount  `json:"utxos,omitempty"`
}

func (p *paymentResponse) toDomain() *ports.OutgoingPayment {
	out := &ports.OutgoingPayment{
		ID:              p.ID,
		Status:          ports.PaymentStatus(p.Status),
		TransactionHash: p.TransactionHash,
		Preimage:        p.Preimage,
		Utxos:           p.Utxos,
	}
	if p.ResolvedAt != nil {
		resolved := time.Unix(*p.ResolvedAt, 0).UTC()
		out.ResolvedAt = &resolved
	}
	return out
}

// CreateInvoice creates an invoice carrying UMA metadata. The missing
// context is a constraint of the UMA SDK's invoice creator interface.
func (c *Client) CreateInvoice(amountMsats int64, metadata string) (*string, error) {
	body := map[string]any{
		"amount_msats": amountMsats,
		"metadata":     metadata,
	}
	var resp invoiceResponse
	if err := c.do(context.Background(), http.MethodPost, "/v1/invoices", body, &resp); err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}
	return &resp.EncodedInvoice, nil
}

// DecodeInvoice extracts the payment hash, amount and expiry of a bolt11
// invoice.
func (c *Client) DecodeInvoice(ctx context.Context, encodedInvoice string) (*ports.DecodedInvoice, error) {
	path := "/v1/invoices/decode?invoice=" + url.QueryEscape(encodedInvoice)
	var resp decodedInvoiceResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("decoding invoice: %w", err)
	}
	return &ports.DecodedInvoice{
		PaymentHash: resp.PaymentHash,
		AmountMsats: resp.AmountMsats,
		ExpiresAt:   time.Unix(resp.ExpiresAt, 0).UTC(),
	}, nil
}

// PayInvoice starts paying an invoice, capping routing fees.
func (c *Client) PayInvoice(ctx context.Context, encodedInvoice string, maxFeesMsats int64) (*ports.OutgoingPayment, error) {
	body := map[string]any{
		"encoded_invoice": encodedInvoice,
		"max_fees_msats":  maxFeesMsats,
	}
	var resp paymentResponse
	if err := c.do(ctx, http.MethodPost, "/v1/payments", body, &resp); err != nil {
		return nil, fmt.Errorf("paying invoice: %w", err)
	}
	return resp.toDomain(), nil
}

// GetOutgoingPayment fetches the current state of a payment attempt.
func (c *Client) GetOutgoingPayment(ctx context.Context, paymentID string) (*ports.OutgoingPayment, error) {
	var resp paymentResponse
	if err := c.do(ctx, http.MethodGet, "/v1/payments/"+url.PathEscape(paymentID), nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching payment: %w", err)
	}
	return resp.toDomain(), nil
}

// GetNodePubKey returns the node's identity public key.
func (c *Client) GetNodePubKey(ctx context.Context) (string, error) {
	var resp struct {
		PubKey string `json:"pubkey"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/node", nil, &resp); err != nil {
		return "", fmt.Errorf("fetching node info: %w", err)
	}
	return resp.PubKey, nil
}

// GetChannelUtxos returns the UTXOs backing the node's channels.
func (c *Client) GetChannelUtxos(ctx context.Context) ([]string, error) {
	var resp struct {
		Utxos []string `json:"utxos"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/node/utxos", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching channel utxos: %w", err)
	}
	return resp.Utxos, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("node request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("path", path).
			Msg("lightning node returned an error")
		return fmt.Errorf("node returned %d: %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
