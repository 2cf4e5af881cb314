// Package rates resolves exchange rates for display-currency checkout.
// Rates come from an external HTTP provider and are cached in Redis
// with a TTL; the pricing engine only ever sees the final multiplier.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/solistore/digital-storefront/internal/cache"
	"github.com/solistore/digital-storefront/internal/config"
	"github.com/solistore/digital-storefront/internal/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const fetchTimeout = 10 * time.Second

type Provider interface {
	GetRate(ctx context.Context, currency string) (float64, error)
	GetTable(ctx context.Context) (*Table, error)
}

// Table mirrors the provider payload: multipliers from the base
// currency, keyed by ISO 4217 code.
type Table struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetched_at"`
}

type provider struct {
	client *http.Client
	cache  cache.Cache
	cfg    *config.Currency
}

func NewProvider(cacheStore cache.Cache, cfg *config.Currency) Provider {
	return &provider{
		client: &http.Client{
			Timeout:   fetchTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		cache: cacheStore,
		cfg:   cfg,
	}
}

// GetRate returns the multiplier converting a base-currency amount into
// the given currency. The base currency is always 1.0 and never needs
// a fetch.
func (p *provider) GetRate(ctx context.Context, currency string) (float64, error) {

	currency = strings.ToUpper(currency)

	if currency == p.cfg.Base {
		return 1.0, nil
	}

	table, err := p.GetTable(ctx)
	if err != nil {
		return 0, err
	}

	rate, ok := table.Rates[currency]
	if !ok {
		return 0, errors.BadRequestError(fmt.Sprintf("Unsupported currency: %s", currency))
	}

	return rate, nil
}

func (p *provider) GetTable(ctx context.Context) (*Table, error) {

	key := cache.Key(cache.RatesKeyPrefix, p.cfg.Base)

	table := &Table{}

	found, err := p.cache.Get(ctx, key, table)
	if err != nil {
		// A broken cache degrades to a fetch, it does not fail checkout.
		slog.Warn("Rate cache read failed", slog.String("error", err.Error()))
	}

	if found {
		return table, nil
	}

	table, err = p.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, key, table, p.cfg.CacheTTL); err != nil {
		slog.Warn("Rate cache write failed", slog.String("error", err.Error()))
	}

	return table, nil
}

// providerPayload is the shape of the upstream response body.
type providerPayload struct {
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

func (p *provider) fetch(ctx context.Context) (*Table, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.ProviderURL, nil)
	if err != nil {
		return nil, errors.InternalError("Failed to build rate provider request").WithError(err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate provider is unreachable").WithError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.ThirdPartyError(fmt.Sprintf("Rate provider returned status %d", resp.StatusCode))
	}

	var payload providerPayload

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.ThirdPartyError("Failed to decode rate provider response").WithError(err)
	}

	if len(payload.Rates) == 0 {
		return nil, errors.ThirdPartyError("Rate provider returned no rates")
	}

	return &Table{
		Base:      payload.BaseCode,
		Rates:     payload.Rates,
		FetchedAt: time.Now(),
	}, nil
}
