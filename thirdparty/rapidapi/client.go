package rapidapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/muhammadheryan/supplier-sourcing/cmd/config"
	"github.com/muhammadheryan/supplier-sourcing/model"
	"golang.org/x/time/rate"
)

// SearchClient talks to the real-time product search API on RapidAPI.
type SearchClient interface {
	Search(ctx context.Context, params model.UpstreamSearchParams) (*model.UpstreamSearchPayload, error)
}

// RequestError means the upstream could not be reached.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string { return e.Err.Error() }
func (e *RequestError) Unwrap() error { return e.Err }

// StatusError is a non-2xx upstream answer.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// PayloadError means the upstream body was not JSON.
type PayloadError struct {
	Err error
}

func (e *PayloadError) Error() string { return e.Err.Error() }
func (e *PayloadError) Unwrap() error { return e.Err }

type client struct {
	baseURL    string
	host       string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg config.UpstreamConfig) SearchClient {
	limit := rate.Inf
	burst := 1
	if cfg.RatePerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RatePerMinute))
		burst = cfg.RatePerMinute
	}
	return &client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		host:    cfg.Host,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (c *client) Search(ctx context.Context, params model.UpstreamSearchParams) (*model.UpstreamSearchPayload, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &RequestError{Err: fmt.Errorf("rate limit wait: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+encodeParams(params), nil)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var payload model.UpstreamSearchPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &PayloadError{Err: fmt.Errorf("decode upstream body: %w", err)}
	}
	return &payload, nil
}

func encodeParams(p model.UpstreamSearchParams) string {
	values := url.Values{}
	set := func(key, val string) {
		if val != "" {
			values.Set(key, val)
		}
	}
	set("query", p.Query)
	set("page", p.Page)
	set("sort_by", p.SortBy)
	set("product_condition", p.ProductCondition)
	set("is_prime", p.IsPrime)
	return values.Encode()
}
