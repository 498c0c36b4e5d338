// Package explorer fetches wallet transaction lists from an etherscan-compatible API.
package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goodnatureofminers/agenticid-backend/internal/clock"
	"github.com/goodnatureofminers/agenticid-backend/internal/reputation/model"
	"go.uber.org/ratelimit"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultPageSize = 1000
	defaultMaxPages = 10
	defaultRPS      = 5
	defaultBackoff  = 500 * time.Millisecond
	maxBackoff      = 5 * time.Second

	noTransactionsMessage = "No transactions found"
)

// Config describes the explorer endpoint.
type Config struct {
	BaseURL  string
	APIKey   string
	ChainID  string
	Timeout  time.Duration
	RPS      int
	PageSize int
	MaxPages int

	// Retries is how many extra attempts a page gets after a transient failure.
	Retries      int
	RetryBackoff time.Duration
}

// transientError marks failures worth retrying: transport errors, HTTP 429 and 5xx.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// Client calls the account/txlist endpoint with a bounded timeout and request rate.
type Client struct {
	cfg     Config
	http    *http.Client
	rl      ratelimit.Limiter
	metrics Metrics
	sleep   func(context.Context, time.Duration) error
}

// NewClient constructs a Client, filling unset limits with defaults.
func NewClient(cfg Config, metrics Metrics) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("explorer base url is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("parse explorer base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RPS <= 0 {
		cfg.RPS = defaultRPS
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = defaultMaxPages
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = defaultBackoff
	}

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		rl:      ratelimit.New(cfg.RPS),
		metrics: metrics,
		sleep:   clock.SleepWithContext,
	}, nil
}

type txListResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// FetchTransactions returns every raw transaction row for address in ascending block order.
// Failures are returned as *model.UpstreamDataError.
func (c *Client) FetchTransactions(ctx context.Context, address string) ([]Row, error) {
	rows := make([]Row, 0)
	for page := 1; page <= c.cfg.MaxPages; page++ {
		batch, err := c.fetchPageWithRetry(ctx, address, page)
		if err != nil {
			return nil, &model.UpstreamDataError{Op: "txlist", Err: err}
		}
		rows = append(rows, batch...)
		if len(batch) < c.cfg.PageSize {
			break
		}
	}
	return rows, nil
}

func (c *Client) fetchPageWithRetry(ctx context.Context, address string, page int) ([]Row, error) {
	for attempt := 0; ; attempt++ {
		rows, err := c.fetchPage(ctx, address, page)
		var transient *transientError
		if err == nil || !errors.As(err, &transient) || attempt >= c.cfg.Retries {
			return rows, err
		}
		if sleepErr := c.sleep(ctx, clock.Backoff(attempt+1, c.cfg.RetryBackoff, maxBackoff)); sleepErr != nil {
			return nil, err
		}
	}
}

func (c *Client) fetchPage(ctx context.Context, address string, page int) (rows []Row, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("txlist", err, started)
		if err == nil {
			c.metrics.ObserveRows(len(rows))
		}
	}()

	c.rl.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.txListURL(address, page), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request txlist: %w", err)
		}
		return nil, &transientError{err: fmt.Errorf("request txlist: %w", err)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("txlist returned HTTP %d", resp.StatusCode)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return nil, &transientError{err: err}
		}
		return nil, err
	}

	var body txListResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode txlist response: %w", err)
	}

	if body.Status != "1" {
		if body.Message == noTransactionsMessage {
			return []Row{}, nil
		}
		var detail string
		_ = json.Unmarshal(body.Result, &detail)
		return nil, fmt.Errorf("txlist error: %s: %s", body.Message, detail)
	}

	if err = json.Unmarshal(body.Result, &rows); err != nil {
		return nil, fmt.Errorf("decode txlist rows: %w", err)
	}
	return rows, nil
}

func (c *Client) txListURL(address string, page int) string {
	q := url.Values{}
	if c.cfg.ChainID != "" {
		q.Set("chainid", c.cfg.ChainID)
	}
	q.Set("module", "account")
	q.Set("action", "txlist")
	q.Set("address", address)
	q.Set("startblock", "0")
	q.Set("endblock", "99999999")
	q.Set("page", strconv.Itoa(page))
	q.Set("offset", strconv.Itoa(c.cfg.PageSize))
	q.Set("sort", "asc")
	if c.cfg.APIKey != "" {
		q.Set("apikey", c.cfg.APIKey)
	}
	return c.cfg.BaseURL + "?" + q.Encode()
}
