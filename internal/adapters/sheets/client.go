// Package sheets downloads the published CSV export of a spreadsheet
package sheets

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	perr "benchmarks/internal/platform/errors"
	"benchmarks/internal/platform/logger"

	"golang.org/x/time/rate"
)

// Fetch defaults
const (
	DefaultTimeout     = 20 * time.Second
	DefaultMinInterval = 2 * time.Second
)

const (
	defaultUA        = "benchmarks-sheets"
	defaultMaxRetry  = 3
	defaultRetryBase = 500 * time.Millisecond
	maxBody          = 32 << 20
)

// Options configures the Client
type Options struct {
	URL       string
	UserAgent string
	Timeout   time.Duration

	// MinInterval spaces upstream requests, 0 disables pacing
	MinInterval time.Duration

	MaxRetries int
	RetryBase  time.Duration
}

// Result is one fetched export
type Result struct {
	Body []byte
	// NotModified is true when the server answered 304 and Body is the previous copy
	NotModified  bool
	ETag         string
	LastModified string
}

// Client fetches one export URL, revalidating with ETag and Last-Modified
type Client struct {
	http    *http.Client
	opts    Options
	limiter *rate.Limiter
	log     logger.Logger
	sleep   func(time.Duration)

	mu   sync.Mutex
	last *Result
}

// NewClient creates a Client with defaults filled in
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	} else if o.MaxRetries == 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	lim := rate.NewLimiter(rate.Inf, 1)
	if o.MinInterval > 0 {
		lim = rate.NewLimiter(rate.Every(o.MinInterval), 1)
	}
	return &Client{
		http:    &http.Client{Timeout: o.Timeout},
		opts:    o,
		limiter: lim,
		log:     *logger.Named("sheets"),
		sleep:   time.Sleep,
	}
}

// URL returns the export URL
func (c *Client) URL() string { return c.opts.URL }

// Fetch downloads the export; a 304 hands back the last body
// transport failures and 5xx/429 are retried with exponential backoff
func (c *Client) Fetch(ctx context.Context) (*Result, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "sheets rate limiter")
		}
		res, retry, err := c.once(ctx)
		if err == nil {
			return res, nil
		}
		if !retry || attempt >= c.opts.MaxRetries || ctx.Err() != nil {
			return nil, err
		}
		back := c.backoff(attempt)
		c.log.Warn().Err(err).Dur("retry_in", back).Int("attempt", attempt).Msg("sheets fetch failed retrying")
		c.sleep(back)
	}
}

func (c *Client) once(ctx context.Context) (*Result, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.URL, nil)
	if err != nil {
		return nil, false, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "sheets bad url")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "text/csv")

	c.mu.Lock()
	last := c.last
	c.mu.Unlock()
	if last != nil {
		if last.ETag != "" {
			req.Header.Set("If-None-Match", last.ETag)
		}
		if last.LastModified != "" {
			req.Header.Set("If-Modified-Since", last.LastModified)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, true, perr.Wrap(err, perr.ErrorCodeUnavailable, "sheets request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Str("etag", resp.Header.Get("ETag")).
		Msg("sheets http response")

	switch {
	case resp.StatusCode == http.StatusNotModified && last != nil:
		out := *last
		out.NotModified = true
		return &out, false, nil

	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
		if err != nil {
			return nil, true, perr.Wrap(err, perr.ErrorCodeUnavailable, "sheets read body")
		}
		if len(body) > maxBody {
			return nil, false, perr.Upstreamf("sheets export exceeds %d bytes", maxBody)
		}
		if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "text/html") || looksLikeHTML(body) {
			// a sign-in page means the sheet is no longer published
			return nil, false, perr.Upstreamf("sheets returned html instead of csv")
		}
		res := &Result{
			Body:         body,
			ETag:         strings.TrimSpace(resp.Header.Get("ETag")),
			LastModified: strings.TrimSpace(resp.Header.Get("Last-Modified")),
		}
		c.mu.Lock()
		c.last = res
		c.mu.Unlock()
		return res, false, nil

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, true, perr.Unavailablef("sheets transient status %d", resp.StatusCode)
	}

	tail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return nil, false, perr.Upstreamf("sheets unexpected status %d body %s", resp.StatusCode, strconv.Quote(string(tail)))
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase << uint(attempt)
	return min(d, 30*time.Second)
}

func looksLikeHTML(b []byte) bool {
	head := bytes.ToLower(bytes.TrimSpace(b[:min(len(b), 64)]))
	return bytes.HasPrefix(head, []byte("<!doctype html")) || bytes.HasPrefix(head, []byte("<html"))
}
