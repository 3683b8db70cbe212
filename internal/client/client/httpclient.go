package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/assessment/internal/client/models"
	"github.com/dmitrijs2005/assessment/internal/common"
	"github.com/dmitrijs2005/assessment/internal/logging"
	"github.com/google/uuid"
)

const DefaultBaseURL = "http://localhost:7777"

// HTTPClient implements Gateway against the backend's JSON API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

// Option customises HTTPClient construction.
type Option func(*HTTPClient)

// WithHTTPClient overrides the default http.Client. Its Jar carries the
// session credential; a client without a jar gets an in-memory one.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithJar sets the cookie jar used for the session credential.
func WithJar(jar http.CookieJar) Option {
	return func(c *HTTPClient) {
		if jar != nil {
			c.httpClient.Jar = jar
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.logger = l
		}
	}
}

// NormalizeBaseURL trims base, gives a bare host an http:// scheme and drops
// trailing slashes. An empty base yields DefaultBaseURL.
func NormalizeBaseURL(base string) (string, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid api base url %q", base)
	}
	return strings.TrimRight(trimmed, "/"), nil
}

// NewHTTPClient builds a gateway for base, e.g. "http://localhost:7777".
func NewHTTPClient(base string, opts ...Option) (*HTTPClient, error) {
	normalized, err := NormalizeBaseURL(base)
	if err != nil {
		return nil, err
	}

	c := &HTTPClient{
		baseURL:    normalized,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		c.httpClient.Jar = jar
	}
	return c, nil
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) FetchProfile(ctx context.Context) (models.User, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/profile/view", nil)
	if err != nil {
		return models.User{}, &AuthError{Kind: KindNetwork, Err: err}
	}
	switch {
	case status == http.StatusUnauthorized:
		return models.User{}, &AuthError{Kind: KindUnauthenticated, Status: status, Message: extractError(body)}
	case status >= http.StatusBadRequest:
		return models.User{}, &AuthError{Kind: KindNetwork, Status: status, Message: extractError(body)}
	}
	return decodeUser(status, body, "")
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.User, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return models.User{}, &AuthError{Kind: KindNetwork, Message: loginFallback, Err: err}
	}
	if status >= http.StatusBadRequest {
		return models.User{}, &AuthError{Kind: clientErrorKind(status, KindInvalidCredentials), Status: status, Message: messageOr(body, loginFallback)}
	}
	return decodeUser(status, body, loginFallback)
}

func (c *HTTPClient) Signup(ctx context.Context, in SignupInput) (models.User, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/signup", in)
	if err != nil {
		return models.User{}, &AuthError{Kind: KindNetwork, Message: signupFallback, Err: err}
	}
	if status >= http.StatusBadRequest {
		return models.User{}, &AuthError{Kind: clientErrorKind(status, KindValidation), Status: status, Message: messageOr(body, signupFallback)}
	}
	return decodeUser(status, body, signupFallback)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	status, body, err := c.do(ctx, http.MethodPost, "/logout", struct{}{})
	if err != nil {
		return &AuthError{Kind: KindNetwork, Err: err}
	}
	if status < 200 || status >= 300 {
		return &AuthError{Kind: KindNetwork, Status: status, Message: extractError(body)}
	}
	return nil
}

// do performs one request and returns the status and the full body. A
// non-nil error means no usable response was received.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	log := c.logger.With("request_id", requestID, "method", method, "path", path)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug(ctx, "request failed", "error", err)
		return 0, nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debug(ctx, "read body failed", "status", resp.StatusCode, "error", err)
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(started))
	return resp.StatusCode, data, nil
}

func decodeUser(status int, body []byte, fallback string) (models.User, error) {
	var env userEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.User{}, &AuthError{Kind: KindNetwork, Status: status, Message: fallback, Err: fmt.Errorf("decode response: %w", err)}
	}
	if env.Data == nil {
		return models.User{}, &AuthError{Kind: KindNetwork, Status: status, Message: fallback, Err: errors.New("response has no data")}
	}
	return *env.Data, nil
}

// clientErrorKind maps 4xx to kind and everything else to KindNetwork.
func clientErrorKind(status int, kind Kind) Kind {
	if status >= 400 && status < 500 {
		return kind
	}
	return KindNetwork
}

func messageOr(body []byte, fallback string) string {
	if msg := extractError(body); msg != "" {
		return msg
	}
	return fallback
}

// extractError reads {"error": "..."}; a non-JSON body is returned as text.
func extractError(body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}
	return strings.TrimSpace(payload.Error)
}
