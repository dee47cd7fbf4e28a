package reservation

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"saba-booking/internal/infra"
	"saba-booking/internal/pkg/config"
	"saba-booking/internal/pkg/errs"

	"golang.org/x/time/rate"
)

const maxErrorBody = 2048

// Client talks to the external reservation API over HTTP basic auth.
type Client struct {
	baseURL     string
	apiKey      string
	apiSecret   string
	httpClient  *http.Client
	limiter     *rate.Limiter
	maxRetries  int
	defaultWait time.Duration
	maxWait     time.Duration
	logger      *slog.Logger
}

func NewClient(cfg config.ReservationConfig, logger *slog.Logger) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.RequestTimeout}, logger)
}

func NewClientWithHTTP(cfg config.ReservationConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.APIBaseURL(), "/"),
		apiKey:      cfg.APIKey,
		apiSecret:   cfg.APISecret,
		httpClient:  httpClient,
		limiter:     rate.NewLimiter(limit, burst),
		maxRetries:  cfg.MaxRetries,
		defaultWait: cfg.DefaultWait,
		maxWait:     cfg.MaxRetryWait,
		logger:      logger,
	}
}

// do sends one logical request, retrying only when the API answers 429.
// The wait honours Retry-After, capped by the configured maximum.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, form url.Values, out any) error {
	for attempt := 0; ; attempt++ {
		wait, err := c.once(ctx, method, path, query, form, out)
		if err == nil {
			return nil
		}
		if !infra.IsKind(err, infra.KindRateLimited) {
			return err
		}
		if attempt >= c.maxRetries {
			c.logger.Error("reservation API still rate limited after retries",
				"path", path,
				"attempts", attempt+1)
			return err
		}

		c.logger.Warn("retrying reservation API call after rate limit",
			"path", path,
			"attempt", attempt+1,
			"wait_time", wait)

		select {
		case <-ctx.Done():
			return infra.WrapErr(c.logger, infra.KindTransport, "request cancelled while waiting to retry", ctx.Err())
		case <-time.After(wait):
		}
	}
}

func (c *Client) once(ctx context.Context, method, path string, query url.Values, form url.Values, out any) (time.Duration, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, infra.WrapErr(c.logger, infra.KindTransport, "request rate limiter", err)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return 0, infra.WrapErr(c.logger, infra.KindTransport, "build request", err)
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)
	req.Header.Set("Accept", "application/json")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, infra.WrapErr(c.logger, infra.KindTransport, method+" "+path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		_, _ = io.Copy(io.Discard, resp.Body)
		wait := c.retryAfter(resp.Header.Get("Retry-After"))
		return wait, infra.WrapRateLimitedErr(c.logger, wait, method+" "+path)
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return 0, infra.WrapErr(c.logger, infra.KindNotFound, method+" "+path, nil)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return 0, infra.WrapUpstreamErr(c.logger, resp.StatusCode, method+" "+path,
			errs.Newf("reservation API error %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return 0, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return 0, infra.WrapErr(c.logger, infra.KindDecode, "decode "+path, err)
	}
	return 0, nil
}

func (c *Client) retryAfter(header string) time.Duration {
	wait := c.defaultWait
	if secs, err := strconv.Atoi(strings.TrimSpace(header)); err == nil && secs >= 0 {
		wait = time.Duration(secs) * time.Second
	}
	if c.maxWait > 0 && wait > c.maxWait {
		wait = c.maxWait
	}
	return wait
}
