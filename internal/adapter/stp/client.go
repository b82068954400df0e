package stp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"stp-signer/internal/core/ports"
	"stp-signer/internal/service"
	"stp-signer/pkg/apperror"

	"github.com/rs/zerolog"
)

// DemoBaseURL is the STP sandbox.
const DemoBaseURL = "https://demo.stpmex.com:7024/speiws/rest"

const maxResponseBytes = 1 << 20

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.StpGateway over STP's JSON REST API. Requests are
// sent once; retrying a signed order is the caller's decision.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

var _ ports.StpGateway = (*Client)(nil)

// NewClient creates a client with a plain http.Client bounded by timeout.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout}, log)
}

// NewClientWithHTTP creates a client on top of an existing HTTP client.
func NewClientWithHTTP(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DemoBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

// RegistraOrden submits a signed order and returns the id STP assigned.
func (c *Client) RegistraOrden(ctx context.Context, payload map[string]any) (int, error) {
	body, err := c.send(ctx, http.MethodPut, service.EndpointRegistraOrden, payload)
	if err != nil {
		return 0, err
	}
	resp, err := service.DecodeResponse(body)
	if err != nil {
		return 0, fmt.Errorf("decoding registra response: %w", err)
	}
	return resp.ID, nil
}

// AltaCuenta registers an individual's account.
func (c *Client) AltaCuenta(ctx context.Context, payload map[string]any) error {
	_, err := c.send(ctx, http.MethodPut, service.EndpointCuentaFisica, payload)
	return err
}

// BajaCuenta deregisters an individual's account.
func (c *Client) BajaCuenta(ctx context.Context, payload map[string]any) error {
	_, err := c.send(ctx, http.MethodDelete, service.EndpointCuentaFisica, payload)
	return err
}

// send performs one request and returns the raw body of a success response.
// Error responses come back as *apperror.StpError. A non-2xx status is never
// a success: when its body is not a classifiable error it becomes STP_000.
func (c *Client) send(ctx context.Context, method, endpoint string, payload map[string]any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("endpoint", endpoint).Str("method", method).Msg("stp: request failed")
		return nil, fmt.Errorf("stp %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", endpoint, err)
	}

	c.log.Debug().
		Str("endpoint", endpoint).
		Str("method", method).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("stp: response")

	stpErr := service.ClassifyBody(endpoint, body)
	if stpErr == nil && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		stpErr = apperror.ErrStpmexException(endpoint, 0,
			fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}
	if stpErr != nil {
		c.log.Warn().
			Str("endpoint", endpoint).
			Int("stp_id", stpErr.ID).
			Str("kind", stpErr.Kind()).
			Int("status", resp.StatusCode).
			Msg("stp: request rejected")
		return nil, stpErr
	}
	return body, nil
}
