package khan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Client fetches content trees from the public content API.
type Client interface {
	// ContentForPath fetches the content node at path (a course slug path
	// such as "math/calculus-2" or a video page path) for a region.
	ContentForPath(ctx context.Context, path, region string) (*Response, error)
}

// httpClient implements Client over plain GET requests. Consecutive calls
// are spaced by the configured request delay.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer

	last time.Time
	now  func() time.Time
}

// NewClient creates a Client for the given config.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
		now:      time.Now,
	}
}

// queryVariables keeps path before countryCode in the encoded JSON.
type queryVariables struct {
	Path        string `json:"path"`
	CountryCode string `json:"countryCode"`
}

func (c *httpClient) ContentForPath(ctx context.Context, path, region string) (*Response, error) {
	if err := c.throttle(ctx); err != nil {
		return nil, fmt.Errorf("waiting to fetch %s: %w", path, err)
	}
	defer func() { c.last = c.now() }()

	start := time.Now()

	reqCtx := ctx
	if c.cfg.TimeoutMs > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	target, err := c.buildURL(path, region)
	if err != nil {
		return nil, err
	}

	resp, status, err := c.doRequest(reqCtx, target)
	latency := time.Since(start).Milliseconds()
	if err == nil {
		c.observer.OnCallComplete(CallEvent{
			Path:      path,
			Region:    region,
			Status:    status,
			LatencyMs: latency,
			Success:   true,
		})
		return resp, nil
	}

	switch {
	case ctx.Err() != nil:
		err = fmt.Errorf("fetching %s: %w", path, ctx.Err())
	case reqCtx.Err() != nil:
		err = fmt.Errorf("%w: %s after %dms", ErrTimeout, path, c.cfg.TimeoutMs)
	case isConnectionError(err):
		err = fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.observer.OnCallComplete(CallEvent{
		Path:      path,
		Region:    region,
		Status:    status,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return nil, err
}

func (c *httpClient) buildURL(path, region string) (string, error) {
	vars, err := json.Marshal(queryVariables{Path: path, CountryCode: region})
	if err != nil {
		return "", fmt.Errorf("encoding variables: %w", err)
	}

	q := url.Values{}
	q.Set("fastly_cacheable", "persist_until_publish")
	q.Set("pcv", c.cfg.PCV)
	q.Set("hash", c.cfg.Hash)
	q.Set("variables", string(vars))
	q.Set("lang", c.cfg.Lang)
	q.Set("app", c.cfg.App)
	return c.cfg.Endpoint + "?" + q.Encode(), nil
}

func (c *httpClient) doRequest(ctx context.Context, target string) (*Response, int, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, 0, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, httpResp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, httpResp.StatusCode, fmt.Errorf("%w: status %d: %s", ErrBadStatus, httpResp.StatusCode, truncate(string(body), 200))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, httpResp.StatusCode, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &resp, httpResp.StatusCode, nil
}

// throttle blocks until the request delay has elapsed since the previous
// call, or ctx is done.
func (c *httpClient) throttle(ctx context.Context) error {
	if c.last.IsZero() || c.cfg.RequestDelayMs <= 0 {
		return ctx.Err()
	}
	wait := time.Duration(c.cfg.RequestDelayMs)*time.Millisecond - c.now().Sub(c.last)
	if wait <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrBadStatus):
		return "BAD_STATUS"
	case errors.Is(err, ErrDecode):
		return "DECODE"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}
