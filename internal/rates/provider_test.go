package rates_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/solistore/digital-storefront/internal/cache"
	cachemocks "github.com/solistore/digital-storefront/internal/cache/mocks"
	"github.com/solistore/digital-storefront/internal/config"
	"github.com/solistore/digital-storefront/internal/errors"
	"github.com/solistore/digital-storefront/internal/rates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRateServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newProvider(t *testing.T, providerURL string) (rates.Provider, *cachemocks.Cache) {
	t.Helper()

	cacheMock := cachemocks.NewCache(t)
	cfg := &config.Currency{
		Base:        "USD",
		ProviderURL: providerURL,
		CacheTTL:    time.Hour,
	}

	return rates.NewProvider(cacheMock, cfg), cacheMock
}

const ratePayload = `{"base_code":"USD","rates":{"USD":1.0,"EUR":0.9,"GBP":0.78}}`

func TestGetRate(t *testing.T) {
	ratesKey := cache.Key(cache.RatesKeyPrefix, "USD")

	t.Run("Success - Base Currency Without Fetch", func(t *testing.T) {
		// Arrange
		provider, _ := newProvider(t, "http://unused.invalid")

		// Act
		rate, err := provider.GetRate(t.Context(), "usd")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1.0, rate)
	})

	t.Run("Success - Fetches And Caches On Miss", func(t *testing.T) {
		// Arrange
		srv := newRateServer(t, http.StatusOK, ratePayload)
		provider, cacheMock := newProvider(t, srv.URL)

		cacheMock.On("Get", mock.Anything, ratesKey, mock.Anything).Return(false, nil).Once()
		cacheMock.On("Set", mock.Anything, ratesKey, mock.MatchedBy(func(v any) bool {
			table, ok := v.(*rates.Table)

			return ok && table.Base == "USD" && table.Rates["EUR"] == 0.9
		}), time.Hour).Return(nil).Once()

		// Act
		rate, err := provider.GetRate(t.Context(), "EUR")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 0.9, rate)
	})

	t.Run("Success - Serves From Cache Without Fetch", func(t *testing.T) {
		// Arrange
		srv := newRateServer(t, http.StatusInternalServerError, "")
		provider, cacheMock := newProvider(t, srv.URL)

		cacheMock.On("Get", mock.Anything, ratesKey, mock.Anything).
			Run(func(args mock.Arguments) {
				table := args.Get(2).(*rates.Table)
				table.Base = "USD"
				table.Rates = map[string]float64{"GBP": 0.78}
			}).
			Return(true, nil).Once()

		// Act
		rate, err := provider.GetRate(t.Context(), "gbp")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 0.78, rate)
	})

	t.Run("Failure - Unsupported Currency", func(t *testing.T) {
		// Arrange
		srv := newRateServer(t, http.StatusOK, ratePayload)
		provider, cacheMock := newProvider(t, srv.URL)

		cacheMock.On("Get", mock.Anything, ratesKey, mock.Anything).Return(false, nil).Once()
		cacheMock.On("Set", mock.Anything, ratesKey, mock.Anything, time.Hour).Return(nil).Once()

		// Act
		rate, err := provider.GetRate(t.Context(), "XXX")

		// Assert
		require.Error(t, err)
		assert.Zero(t, rate)

		appErr, ok := errors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeBadRequest, appErr.Code)
	})
}

func TestGetTable(t *testing.T) {
	ratesKey := cache.Key(cache.RatesKeyPrefix, "USD")

	t.Run("Success - Cache Errors Degrade To Fetch", func(t *testing.T) {
		// Arrange
		srv := newRateServer(t, http.StatusOK, ratePayload)
		provider, cacheMock := newProvider(t, srv.URL)

		cacheMock.On("Get", mock.Anything, ratesKey, mock.Anything).Return(false, assert.AnError).Once()
		cacheMock.On("Set", mock.Anything, ratesKey, mock.Anything, time.Hour).Return(assert.AnError).Once()

		// Act
		table, err := provider.GetTable(t.Context())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "USD", table.Base)
		assert.Len(t, table.Rates, 3)
		assert.WithinDuration(t, time.Now(), table.FetchedAt, time.Minute)
	})

	t.Run("Failure - Provider Returns 5xx", func(t *testing.T) {
		// Arrange
		srv := newRateServer(t, http.StatusBadGateway, "")
		provider, cacheMock := newProvider(t, srv.URL)

		cacheMock.On("Get", mock.Anything, ratesKey, mock.Anything).Return(false, nil).Once()

		// Act
		table, err := provider.GetTable(t.Context())

		// Assert
		require.Error(t, err)
		assert.Nil(t, table)

		appErr, ok := errors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeThirdPartyError, appErr.Code)
	})

	t.Run("Failure - Empty Rate Set", func(t *testing.T) {
		// Arrange
		srv := newRateServer(t, http.StatusOK, `{"base_code":"USD","rates":{}}`)
		provider, cacheMock := newProvider(t, srv.URL)

		cacheMock.On("Get", mock.Anything, ratesKey, mock.Anything).Return(false, nil).Once()

		// Act
		table, err := provider.GetTable(t.Context())

		// Assert
		require.Error(t, err)
		assert.Nil(t, table)
	})

	t.Run("Failure - Provider Unreachable", func(t *testing.T) {
		// Arrange
		srv := newRateServer(t, http.StatusOK, ratePayload)
		srv.Close()
		provider, cacheMock := newProvider(t, srv.URL)

		cacheMock.On("Get", mock.Anything, ratesKey, mock.Anything).Return(false, nil).Once()

		// Act
		table, err := provider.GetTable(t.Context())

		// Assert
		require.Error(t, err)
		assert.Nil(t, table)

		appErr, ok := errors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeThirdPartyError, appErr.Code)
	})
}
