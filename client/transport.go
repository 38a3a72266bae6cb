package client

import (
	"context"
	"crypto/tls"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// newRetryClient wires the retry policy, backoff, throttle and logger into a
// retryablehttp client.
func (c *Client) newRetryClient() *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = c.newHTTPClient()
	rc.Logger = c.logger
	rc.RetryMax = max(c.maxRetries, 0)
	rc.RetryWaitMin = c.retryDelay
	rc.RetryWaitMax = c.maxRetryDelay
	rc.CheckRetry = c.checkRetry
	rc.Backoff = c.backoff
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return rc
}

// newHTTPClient returns the HTTP client used for every attempt. The throttle
// sits in the transport so that retries are throttled too.
func (c *Client) newHTTPClient() *http.Client {
	var hc http.Client
	if c.baseHTTP != nil {
		hc = *c.baseHTTP
	} else {
		hc = http.Client{Timeout: c.timeout}
	}

	base := hc.Transport
	if base == nil {
		tr := cleanhttp.DefaultPooledTransport()
		if c.selfSigned {
			tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		}
		base = tr
	}
	hc.Transport = &throttleTransport{base: base, throttle: c.throttle}
	return &hc
}

// throttleTransport acquires a throttle slot before every round trip.
type throttleTransport struct {
	base     http.RoundTripper
	throttle Throttle
}

func (t *throttleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.throttle.Acquire(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

type attemptsKey struct{}

// withAttempts attaches an attempt counter read by checkRetry.
func withAttempts(ctx context.Context) context.Context {
	var n int32
	return context.WithValue(ctx, attemptsKey{}, &n)
}

func nextAttempt(ctx context.Context) int {
	if n, ok := ctx.Value(attemptsKey{}).(*int32); ok {
		return int(atomic.AddInt32(n, 1))
	}
	return 1
}

// checkRetry retries network errors, 429 and 5xx (except 501).
func (c *Client) checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	attempt := nextAttempt(ctx)
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		info := core.RateLimitInfoFromResponse(resp, resp.Request.URL.String(), attempt)
		c.logger.RateLimit(info)
		if c.onRateLimit != nil {
			c.onRateLimit(info)
		}
		return true, nil
	case resp.StatusCode >= 500 && resp.StatusCode != http.StatusNotImplemented:
		return true, nil
	}
	return false, nil
}

// backoff returns the delay before the next attempt: Retry-After on 429,
// otherwise exponential backoff with +-10% jitter capped at maxDelay.
func (c *Client) backoff(minDelay, maxDelay time.Duration, attemptNum int, resp *http.Response) time.Duration {
	reason := "network error"
	if resp != nil {
		reason = resp.Status
		if resp.StatusCode == http.StatusTooManyRequests {
			if s, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && s >= 0 {
				delay := time.Duration(s) * time.Second
				c.logger.Retry(attemptNum+1, c.maxRetries, delay, reason)
				return delay
			}
		}
	}

	delay := calculateBackoff(minDelay, maxDelay, c.backoffMultiplier, attemptNum)
	c.logger.Retry(attemptNum+1, c.maxRetries, delay, reason)
	return delay
}

// calculateBackoff computes base * multiplier^attempt with +-10% jitter,
// capped at maxDelay.
func calculateBackoff(base, maxDelay time.Duration, multiplier float64, attempt int) time.Duration {
	if multiplier <= 0 {
		multiplier = 2
	}
	delay := float64(base) * math.Pow(multiplier, float64(attempt))
	jitter := delay * 0.1 * (2*rand.Float64() - 1)
	d := time.Duration(delay + jitter)
	if maxDelay > 0 && d > maxDelay {
		d = maxDelay
	}
	return d
}
