package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MSSkowron/RTCTokenClient/pkg/validation"
)

const (
	// DefaultTimeout is the default timeout for a single token request.
	DefaultTimeout = 10 * time.Second
)

var (
	// ErrEmptyBody is returned when the token server response carries no payload.
	ErrEmptyBody = errors.New("empty response body")
	// ErrMalformedResponse is returned when the response body is not a valid token response.
	ErrMalformedResponse = errors.New("malformed response body")
	// ErrMissingToken is returned when the response is valid JSON but carries no token.
	ErrMissingToken = errors.New("response does not contain a token")
	// ErrUnexpectedStatus is returned when the token server responds with a non-2xx status code.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// Client represents an RTC token client. It fetches channel join tokens from
// a token issuance server over HTTP.
type Client struct {
	serverAddress string
	httpClient    *http.Client
}

// Result represents the outcome of a single token request. It is returned
// alongside the error whenever an HTTP response was received, so callers can
// inspect the status code and raw body of failed requests.
type Result struct {
	// Token is the issued channel join token. Empty on failure.
	Token string
	// StatusCode is the HTTP status code returned by the token server.
	StatusCode int
	// Body is the raw response body.
	Body []byte
}

// tokenResponse is the documented shape of the token server response.
// Fields other than rtcToken are ignored.
type tokenResponse struct {
	RTCToken *string `json:"rtcToken"`
}

// NewClient creates a new token client for the given token server address.
// The address must be an absolute http or https URL without a trailing
// slash, e.g. "http://localhost:8080".
func NewClient(serverAddress string, opts ...ClientOption) (*Client, error) {
	if err := validation.ValidateServerAddress(serverAddress); err != nil {
		return nil, err
	}

	client := &Client{
		serverAddress: serverAddress,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// ClientOption is a function signature for providing options to configure the Client.
type ClientOption func(*Client)

// WithTimeout is an option to set the timeout for a single token request.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient is an option to set the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// BuildTokenURL builds the token request URL for the given server address,
// channel name and user ID. A user ID of 0 requests a token valid for any
// user. It fails without any side effects when the inputs do not form a
// valid URL.
func BuildTokenURL(serverAddress, channelName string, userID uint32) (string, error) {
	if err := validation.ValidateServerAddress(serverAddress); err != nil {
		return "", err
	}
	if err := validation.ValidateChannelName(channelName); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/rtc/%s/publisher/uid/%d/", serverAddress, channelName, userID), nil
}

// Fetch requests a join token for the given channel name and user ID.
// It issues exactly one HTTP GET and blocks until the server responds, the
// timeout elapses or ctx is canceled. There are no retries and no caching.
//
// The returned Result is non-nil whenever an HTTP response was received,
// including failed requests, so the status code and raw body remain
// available for diagnostics. The error is ErrUnexpectedStatus, ErrEmptyBody,
// ErrMalformedResponse, ErrMissingToken, a validation error, or a wrapped
// transport error.
func (c *Client) Fetch(ctx context.Context, channelName string, userID uint32) (*Result, error) {
	url, err := BuildTokenURL(c.serverAddress, channelName, userID)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build token request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response body: %w", err)
	}

	result := &Result{
		StatusCode: resp.StatusCode,
		Body:       body,
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return result, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	if len(body) == 0 {
		return result, ErrEmptyBody
	}

	tokenResp := &tokenResponse{}
	if err := json.Unmarshal(body, tokenResp); err != nil {
		return result, fmt.Errorf("%w: %s", ErrMalformedResponse, err)
	}

	if tokenResp.RTCToken == nil || *tokenResp.RTCToken == "" {
		return result, ErrMissingToken
	}

	result.Token = *tokenResp.RTCToken

	return result, nil
}

// FetchToken requests a join token for the given channel name and user ID
// and returns it as a plain string. Every failure collapses to an empty
// string. Use Fetch when the failure reason matters.
func (c *Client) FetchToken(ctx context.Context, channelName string, userID uint32) string {
	result, err := c.Fetch(ctx, channelName, userID)
	if err != nil {
		return ""
	}

	return result.Token
}
