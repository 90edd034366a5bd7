package fuel

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
)

// DefaultPrice is the per-liter fallback used when no quote has ever been
// fetched and the remote source is unreachable. It can be corrected manually
// through the fuel settings.
const DefaultPrice = 48.50

// priceURL serves current Turkish gasoline prices per city.
const priceURL = "https://api.collectapi.com/gasPrice/turkeyGasoline"

// Price is one fetched per-liter price with its fetch time.
// It replaces a hidden module-level cache: staleness is an explicit
// predicate over the value, decided by whoever holds it.
type Price struct {
	Value     float64   `json:"price"`
	FetchedAt time.Time `json:"updated_at"`
}

// IsStale reports whether the price is older than ttl at the given instant.
// The zero Price is always stale.
func (p Price) IsStale(now time.Time, ttl time.Duration) bool {
	if p.FetchedAt.IsZero() {
		return true
	}
	return now.Sub(p.FetchedAt) >= ttl
}

// Quote is what callers receive: the price plus how it was obtained.
type Quote struct {
	Price
	Cached   bool `json:"cached"`
	Fallback bool `json:"fallback"`
}

// PriceClient fetches the current petrol price with retry and caches it for
// a TTL. Fetch failures degrade to the last known price (or DefaultPrice),
// flagged as Fallback — showing something beats blocking the tracker.
type PriceClient struct {
	httpc  *http.Client
	url    string
	apiKey string
	ttl    time.Duration
	now    func() time.Time

	mu     sync.Mutex
	cached Price
}

// NewPriceClient constructs a PriceClient. An empty apiKey is allowed; every
// fetch will then fall back, which keeps local development keyless.
func NewPriceClient(apiKey string, ttl time.Duration) *PriceClient {
	return &PriceClient{
		httpc:  &http.Client{Timeout: 10 * time.Second},
		url:    priceURL,
		apiKey: apiKey,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Current returns the cached quote when fresh, otherwise fetches a new one.
func (c *PriceClient) Current(ctx context.Context) Quote {
	c.mu.Lock()
	cached := c.cached
	c.mu.Unlock()

	if !cached.IsStale(c.now(), c.ttl) {
		return Quote{Price: cached, Cached: true}
	}
	return c.Refresh(ctx)
}

// Refresh ignores the cache and fetches a fresh quote.
// On failure it returns the previous price (or DefaultPrice) with Fallback set.
func (c *PriceClient) Refresh(ctx context.Context) Quote {
	price, err := c.fetch(ctx)
	if err != nil {
		slog.Warn("fuel price fetch failed, serving fallback", "error", err)

		c.mu.Lock()
		cached := c.cached
		c.mu.Unlock()

		if cached.FetchedAt.IsZero() {
			cached = Price{Value: DefaultPrice, FetchedAt: c.now()}
		}
		return Quote{Price: cached, Cached: true, Fallback: true}
	}

	c.mu.Lock()
	c.cached = price
	c.mu.Unlock()

	return Quote{Price: price}
}

// fetch queries the remote source, retrying transient failures with
// exponential backoff before giving up.
func (c *PriceClient) fetch(ctx context.Context) (Price, error) {
	var price Price

	backoff := retry.WithMaxRetries(2, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		p, err := c.fetchOnce(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		price = p
		return nil
	})
	if err != nil {
		return Price{}, fmt.Errorf("fuel.PriceClient.fetch: %w", err)
	}
	return price, nil
}

// cityPrice mirrors one entry of the remote response.
type cityPrice struct {
	City          string `json:"city"`
	GasolinePrice string `json:"gasolinePrice"`
}

func (c *PriceClient) fetchOnce(ctx context.Context) (Price, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Price{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "apikey "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Price{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Price{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Result []cityPrice `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Price{}, err
	}

	value, err := istanbulGasoline(body.Result)
	if err != nil {
		return Price{}, err
	}
	return Price{Value: value, FetchedAt: c.now()}, nil
}

// istanbulGasoline picks the Istanbul 95-octane price out of the per-city
// list. The source formats decimals with a comma ("48,50").
func istanbulGasoline(cities []cityPrice) (float64, error) {
	for _, cp := range cities {
		if !strings.Contains(strings.ToLower(cp.City), "istanbul") {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(cp.GasolinePrice, ",", "."), 64)
		if err != nil {
			return 0, fmt.Errorf("malformed gasoline price %q: %w", cp.GasolinePrice, err)
		}
		return v, nil
	}
	return 0, fmt.Errorf("no istanbul entry in %d cities", len(cities))
}
