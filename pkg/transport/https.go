package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TLS version constants
const (
	TLS12 = tls.VersionTLS12
	TLS13 = tls.VersionTLS13
)

// Recommended TLS 1.2 cipher suites
var RecommendedTLS12CipherSuites = []uint16{
	tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
	tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
	tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
	tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
}

// Response is what a Caller hands back: the raw status, content type
// and body, uninterpreted.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Caller sends one HTTP request and returns the raw response. It fails
// only on transport problems (connection, TLS, timeout), never on HTTP
// status codes.
type Caller interface {
	Call(ctx context.Context, method, url string, headers map[string]string, body []byte) (*Response, error)
}

// Error wraps a failure below the HTTP layer.
type Error struct {
	URL string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transport: calling %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPConfig contains HTTPS client configuration
type HTTPConfig struct {
	MinTLSVersion   uint16
	MaxTLSVersion   uint16
	CipherSuites    []uint16
	Timeout         time.Duration
	IdleConnTimeout time.Duration
	UserAgent       string
}

// DefaultHTTPConfig returns a default HTTPS configuration
func DefaultHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		MinTLSVersion:   TLS12,
		MaxTLSVersion:   TLS13,
		CipherSuites:    RecommendedTLS12CipherSuites,
		Timeout:         30 * time.Second,
		IdleConnTimeout: 90 * time.Second,
		UserAgent:       "bpost-api-library/1.0",
	}
}

// HTTPCaller is the production Caller, a thin wrapper over net/http
// with a pinned TLS configuration.
type HTTPCaller struct {
	client *http.Client
	config *HTTPConfig
}

// NewHTTPCaller creates an HTTPS caller
func NewHTTPCaller(config *HTTPConfig) *HTTPCaller {
	if config == nil {
		config = DefaultHTTPConfig()
	}

	tlsConfig := &tls.Config{
		MinVersion:   config.MinTLSVersion,
		MaxVersion:   config.MaxTLSVersion,
		CipherSuites: config.CipherSuites,
	}

	httpTransport := &http.Transport{
		TLSClientConfig:     tlsConfig,
		IdleConnTimeout:     config.IdleConnTimeout,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
	}

	return &HTTPCaller{
		client: &http.Client{
			Transport: httpTransport,
			Timeout:   config.Timeout,
		},
		config: config,
	}
}

// Call sends one request and reads the full response body.
func (c *HTTPCaller) Call(ctx context.Context, method, url string, headers map[string]string, body []byte) (*Response, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        responseBody,
	}, nil
}
