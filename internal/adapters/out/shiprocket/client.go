// Package shiprocket implements the shipping carrier port against the
// Shiprocket v1 API: adhoc order creation, AWB tracking and serviceability
// checks, with a shared bearer token session.
package shiprocket

import (
	"context"
	"fmt"
	"sync"
	"time"

	"orderdesk/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

const (
	// requestTimeout bounds every outbound carrier call.
	requestTimeout = 10 * time.Second

	// tokenLifetime is how long an issued bearer token stays usable. The API
	// issues 10-day tokens; re-authenticating daily stays well clear of
	// expiry.
	tokenLifetime = 24 * time.Hour
)

// Client implements ports.ShippingCarrier against the Shiprocket REST API.
//
// Authentication is lazy and shared: the first call logs in, later calls
// reuse the cached token until it ages out, and a rejected token triggers
// exactly one re-login before the error surfaces.
type Client struct {
	http     *resty.Client
	email    string
	password string

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a carrier client. baseURL is the API root
// (https://apiv2.shiprocket.in/v1/external in production).
func NewClient(baseURL, email, password string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("shiprocket api url")
	}
	if email == "" || password == "" {
		return nil, errs.NewValueIsRequiredError("shiprocket credentials")
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Only read-only lookups are safe to retry; shipment creation
			// is not idempotent on the carrier side.
			if r == nil || r.Request.Method != resty.MethodGet {
				return false
			}
			return err != nil || r.StatusCode() >= 500
		})

	return &Client{
		http:     http,
		email:    email,
		password: password,
	}, nil
}

// authResponse is the login response.
type authResponse struct {
	Token string `json:"token"`
}

// bearerToken returns a usable token, logging in when none is cached or the
// cached one has aged out. The mutex makes concurrent callers share one
// login instead of racing.
func (c *Client) bearerToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	var auth authResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": c.email, "password": c.password}).
		SetResult(&auth).
		Post("/auth/login")
	if err != nil {
		return "", errs.NewUpstreamUnavailableError("shiprocket", fmt.Errorf("login: %w", err))
	}
	if resp.IsError() || auth.Token == "" {
		return "", errs.NewUpstreamRejectedError("shiprocket", resp.StatusCode(), "authentication failed")
	}

	c.token = auth.Token
	c.tokenExpiry = time.Now().Add(tokenLifetime)
	return c.token, nil
}

// invalidateToken drops the cached token so the next call logs in again.
func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.token = ""
	c.tokenExpiry = time.Time{}
	c.mu.Unlock()
}

// authorized runs call with a bearer token, retrying once with a fresh token
// when the API rejects the cached one.
func (c *Client) authorized(ctx context.Context, call func(token string) (*resty.Response, error)) (*resty.Response, error) {
	token, err := c.bearerToken(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := call(token)
	if err != nil {
		return nil, errs.NewUpstreamUnavailableError("shiprocket", err)
	}
	if resp.StatusCode() != 401 {
		return resp, nil
	}

	c.invalidateToken()
	token, err = c.bearerToken(ctx)
	if err != nil {
		return nil, err
	}

	resp, err = call(token)
	if err != nil {
		return nil, errs.NewUpstreamUnavailableError("shiprocket", err)
	}
	return resp, nil
}

// upstreamError maps a non-2xx carrier response to the port's error
// convention.
func upstreamError(resp *resty.Response, operation string) error {
	if resp.StatusCode() >= 500 {
		return errs.NewUpstreamUnavailableError("shiprocket",
			fmt.Errorf("%s failed: %s", operation, resp.Status()))
	}
	return errs.NewUpstreamRejectedError("shiprocket", resp.StatusCode(),
		fmt.Sprintf("%s failed: %s", operation, string(resp.Body())))
}
