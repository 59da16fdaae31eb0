package source

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"pokemasdb/core/entity"
)

// HTTPSource reads records from the origin site's /trainer/ endpoints.
type HTTPSource struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewHTTP creates an HTTP source from the configuration.
func NewHTTP(cfg Config) *HTTPSource {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		// HTTP/1.1 only.
		ForceAttemptHTTP2:     false,
		MaxIdleConnsPerHost:   cfg.Concurrency,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &HTTPSource{
		client:    &http.Client{Transport: transport, Timeout: timeoutDuration},
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
	}
}

// NewHTTPWithClient creates an HTTP source around an existing client.
func NewHTTPWithClient(client *http.Client, baseURL string) *HTTPSource {
	return &HTTPSource{client: client, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *HTTPSource) Name() string {
	return "http"
}

func (s *HTTPSource) endpoint() string {
	return s.baseURL + "/trainer/"
}

func (s *HTTPSource) get(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: failed to read %s: %v", ErrUnavailable, url, err)
	}
	return resp.StatusCode, body, nil
}

// TrainerNames downloads the trainer listing.
func (s *HTTPSource) TrainerNames(ctx context.Context) ([]string, error) {
	url := s.endpoint()
	status, body, err := s.get(ctx, url)
	if err != nil {
		return nil, err
	}
	if status >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %s returned HTTP code %d", ErrUnavailable, url, status)
	}
	return parseListing(body)
}

// Trainer downloads one trainer record. Any status of 400 or above is a *LookupError.
func (s *HTTPSource) Trainer(ctx context.Context, name string) ([]byte, error) {
	url := s.endpoint() + entity.ResolveTrainerPath(name)
	status, body, err := s.get(ctx, url)
	if err != nil {
		return nil, err
	}
	if status >= http.StatusBadRequest {
		return nil, &LookupError{Trainer: name, Status: status, Location: url}
	}
	return body, nil
}
