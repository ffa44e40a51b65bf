// Package coingecko fetches crypto market data from the public
// CoinGecko API. Responses are cached on disk with a daily key so that
// repeated dashboard refreshes within a day do not hit the rate limit.
package coingecko

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

const defaultBaseURL = "https://api.coingecko.com/api/v3"

// DefaultCoins is the asset watchlist queried when no explicit ids are
// given.
var DefaultCoins = []string{
	"bitcoin", "ethereum", "solana", "dogecoin", "cardano",
	"polkadot", "litecoin", "shiba-inu", "avalanche-2", "tron",
}

// Coin is one market entry, priced in USD.
type Coin struct {
	ID           string
	Name         string
	Image        string
	CurrentPrice float64
	Change24h    float64 // percent, NaN when the API omits it
}

// Client queries the CoinGecko REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client against the public API, with the daily disk
// cache. COINGECKO_URL overrides the base URL, mostly for tests and
// proxies.
func New() *Client {
	base := os.Getenv("COINGECKO_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{baseURL: base, http: newDailyCachingClient()}
}

// NewWith returns a client against the given base URL using the given
// http.Client, bypassing the disk cache.
func NewWith(baseURL string, client *http.Client) *Client {
	return &Client{baseURL: baseURL, http: client}
}

// Markets returns market data for the given coin ids, ordered by
// market cap. With no ids it queries DefaultCoins. Coins unknown to the
// API are simply absent from the result, never an error.
func (c *Client) Markets(ctx context.Context, ids ...string) ([]Coin, error) {
	if len(ids) == 0 {
		ids = DefaultCoins
	}
	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("ids", strings.Join(ids, ","))
	q.Set("order", "market_cap_desc")
	q.Set("per_page", fmt.Sprint(len(ids)))
	q.Set("page", "1")
	q.Set("sparkline", "false")
	addr := c.baseURL + "/coins/markets?" + q.Encode()

	var jlist []map[string]any
	if err := jwget(ctx, c.http, addr, &jlist); err != nil {
		return nil, fmt.Errorf("error retrieving markets: %w", err)
	}

	coins := make([]Coin, 0, len(jlist))
	for _, jobj := range jlist {
		id, _ := jobj["id"].(string)
		name, _ := jobj["name"].(string)
		image, _ := jobj["image"].(string)
		price, err := asFloat(jobj["current_price"])
		if err != nil {
			return nil, fmt.Errorf("cannot read price of %q: %w", id, err)
		}
		// A missing 24h change is not an error, the coin is simply
		// listed without a variation figure.
		change, err := asFloat(jobj["price_change_percentage_24h"])
		if err != nil {
			change = math.NaN()
		}
		coins = append(coins, Coin{
			ID:           id,
			Name:         name,
			Image:        image,
			CurrentPrice: price,
			Change24h:    change,
		})
	}
	return coins, nil
}

// Price returns the current USD price and 24h change of a single coin.
func (c *Client) Price(ctx context.Context, id string) (price, change float64, err error) {
	q := url.Values{}
	q.Set("ids", id)
	q.Set("vs_currencies", "usd")
	q.Set("include_24hr_change", "true")
	addr := c.baseURL + "/simple/price?" + q.Encode()

	var jobj any
	if err := jwget(ctx, c.http, addr, &jobj); err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("error retrieving %q: %w", id, err)
	}

	path := fmt.Sprintf("$[%q].usd", id)
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("unknown coin %q: %q %w", id, path, err)
	}
	if price, err = asFloat(jval); err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("cannot read price of %q: %w", id, err)
	}

	jval, err = jsonpath.Get(fmt.Sprintf("$[%q].usd_24h_change", id), jobj)
	if err != nil {
		return price, math.NaN(), nil
	}
	if change, err = asFloat(jval); err != nil {
		return price, math.NaN(), nil
	}
	return price, change, nil
}
