package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/m3rciful/cotabot/core/logger"
	"log/slog"
)

var (
	// ErrPairNotFound indicates the provider has no listing for the requested pair.
	ErrPairNotFound = errors.New("exchange: currency pair not quoted")
	// ErrQuoteUnavailable indicates a transport or response-format failure.
	ErrQuoteUnavailable = errors.New("exchange: quote unavailable")
)

// Options configure the quote client.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// Client fetches bid quotes from the AwesomeAPI economy endpoint.
// It is safe for concurrent use.
type Client struct {
	http *resty.Client
}

// NewClient builds a quote client with a bounded per-request timeout.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	c := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout)
	return &Client{http: c}
}

// quote mirrors the per-pair object of the provider response; bid arrives as a
// decimal string.
type quote struct {
	Bid string `json:"bid"`
}

// Bid returns the rate for converting one unit of src into dst.
//
// The provider responds with an object keyed by the concatenated pair codes
// ("BRLUSD"). A missing key, including same-currency pairs the provider does
// not quote, yields ErrPairNotFound. Calls are not retried here; the caller
// decides what a failed quote means for the conversation.
func (c *Client) Bid(ctx context.Context, src, dst Code) (float64, error) {
	pair := string(src) + string(dst)
	start := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/json/last/%s-%s", src, dst))
	if err != nil {
		logger.Error(ctx, "service.quotes", "quote.fetch",
			slog.String("status", "fail"),
			slog.String("pair", pair),
			slog.Duration("duration", logger.Took(start)),
			slog.String("err", err.Error()),
		)
		return 0, fmt.Errorf("%w: %v", ErrQuoteUnavailable, err)
	}
	if resp.IsError() {
		logger.Error(ctx, "service.quotes", "quote.fetch",
			slog.String("status", "fail"),
			slog.String("pair", pair),
			slog.Int("http_code", resp.StatusCode()),
			slog.Duration("duration", logger.Took(start)),
		)
		return 0, fmt.Errorf("%w: status %s", ErrQuoteUnavailable, resp.Status())
	}

	var payload map[string]quote
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return 0, fmt.Errorf("%w: decode: %v", ErrQuoteUnavailable, err)
	}

	q, ok := payload[pair]
	if !ok {
		logger.Warn(ctx, "service.quotes", "quote.fetch",
			slog.String("status", "skip"),
			slog.String("pair", pair),
		)
		return 0, ErrPairNotFound
	}

	bid, err := strconv.ParseFloat(q.Bid, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad bid %q", ErrQuoteUnavailable, q.Bid)
	}

	logger.Debug(ctx, "service.quotes", "quote.fetch",
		slog.String("status", "ok"),
		slog.String("pair", pair),
		slog.Float64("rate", bid),
		slog.Duration("duration", logger.Took(start)),
	)
	return bid, nil
}
