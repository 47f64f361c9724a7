// Package orderapi is the staff-side HTTP client of the order authority. It
// speaks the envelope contract from internal/pkg/api and reports every
// failed exchange as an *errs.TransportError.
package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/api"
	"storefront/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Client calls the kitchen endpoints with a staff bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for baseURL, e.g. "http://localhost:8080".
// A zero timeout falls back to ten seconds.
func NewClient(baseURL, token string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + api.BasePath,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// ListOrders returns orders in the given statuses, or every order when none
// is given.
func (c *Client) ListOrders(ctx context.Context, statuses ...order.Status) ([]order.Snapshot, error) {
	query := url.Values{}
	for _, s := range statuses {
		query.Add("status", s.String())
	}

	var orders []api.Order
	if err := c.do(ctx, http.MethodGet, "/kitchen/orders", query, nil, &orders); err != nil {
		return nil, err
	}

	snapshots := make([]order.Snapshot, 0, len(orders))
	for _, o := range orders {
		snapshots = append(snapshots, o.Snapshot())
	}
	return snapshots, nil
}

func (c *Client) GetOrder(ctx context.Context, id kernel.UUID) (order.Snapshot, error) {
	var o api.Order
	if err := c.do(ctx, http.MethodGet, "/kitchen/orders/"+id.String(), nil, nil, &o); err != nil {
		return order.Snapshot{}, err
	}
	return o.Snapshot(), nil
}

// TrackOrder reads an order through the public customer endpoint.
func (c *Client) TrackOrder(ctx context.Context, id kernel.UUID) (order.Snapshot, error) {
	var o api.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+id.String(), nil, nil, &o); err != nil {
		return order.Snapshot{}, err
	}
	return o.Snapshot(), nil
}

func (c *Client) Stats(ctx context.Context) (order.Stats, error) {
	var stats order.Stats
	if err := c.do(ctx, http.MethodGet, "/kitchen/stats", nil, nil, &stats); err != nil {
		return order.Stats{}, err
	}
	return stats, nil
}

// ChangeStatus asks the authority to move an order to target and returns the
// order as the authority stored it.
func (c *Client) ChangeStatus(ctx context.Context, id kernel.UUID, target order.Status, notes string) (order.Snapshot, error) {
	body := api.ChangeStatusRequest{Status: target, Notes: notes}

	var o api.Order
	if err := c.do(ctx, http.MethodPatch, "/kitchen/orders/"+id.String()+"/status", nil, body, &o); err != nil {
		return order.Snapshot{}, err
	}
	return o.Snapshot(), nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return classify(err)
	}

	var env api.Envelope
	if err = json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return errs.NewRejectedError(resp.StatusCode, fmt.Sprintf("HTTP_%d", resp.StatusCode), http.StatusText(resp.StatusCode), nil)
		}
		return errs.NewRejectedError(resp.StatusCode, api.CodeInternal, "malformed response envelope", nil)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		if env.Error == nil {
			return errs.NewRejectedError(resp.StatusCode, fmt.Sprintf("HTTP_%d", resp.StatusCode), http.StatusText(resp.StatusCode), nil)
		}
		return errs.NewRejectedError(resp.StatusCode, env.Error.Code, env.Error.Message, env.Error.ValidationErrors)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err = json.Unmarshal(env.Data, out); err != nil {
		return errs.NewRejectedError(resp.StatusCode, api.CodeInternal, "malformed response data", nil)
	}
	return nil
}

// classify splits failures that never produced a response into timeouts and
// connectivity problems.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewTimeoutError(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errs.NewTimeoutError(err)
	}
	return errs.NewConnectivityError(err)
}
