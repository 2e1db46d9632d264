package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func TestBidReturnsRate(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"BRLUSD":{"code":"BRL","codein":"USD","name":"Real/Dólar Americano","bid":"0.1823","ask":"0.1829"}}`))
	})

	rate, err := client.Bid(context.Background(), BRL, USD)
	require.NoError(t, err)
	assert.Equal(t, "/json/last/BRL-USD", gotPath)
	assert.InDelta(t, 0.1823, rate, 1e-9)
}

func TestBidPairNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.Bid(context.Background(), USD, USD)
	assert.ErrorIs(t, err, ErrPairNotFound)
}

func TestBidServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Bid(context.Background(), BRL, USD)
	assert.ErrorIs(t, err, ErrQuoteUnavailable)
}

func TestBidMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.Bid(context.Background(), BRL, USD)
	assert.ErrorIs(t, err, ErrQuoteUnavailable)
}

func TestBidUnparsableBid(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"EURGBP":{"bid":"n/a"}}`))
	})

	_, err := client.Bid(context.Background(), EUR, GBP)
	assert.ErrorIs(t, err, ErrQuoteUnavailable)
}

func TestBidTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(Options{BaseURL: srv.URL, Timeout: time.Second})

	_, err := client.Bid(context.Background(), BRL, JPY)
	assert.ErrorIs(t, err, ErrQuoteUnavailable)
}
