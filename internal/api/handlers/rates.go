package handlers

import (
	"net/http"
	"strings"

	"github.com/solistore/digital-storefront/internal/errors"
	"github.com/solistore/digital-storefront/internal/models"
	"github.com/solistore/digital-storefront/internal/rates"
	"github.com/solistore/digital-storefront/internal/utils/response"
)

type RatesHandler struct {
	provider rates.Provider
}

func NewRatesHandler(provider rates.Provider) *RatesHandler {
	return &RatesHandler{provider: provider}
}

// GetRate resolves a single conversion rate relative to the base currency.
func (h *RatesHandler) GetRate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		currency := strings.ToUpper(r.PathValue("currency"))
		if len(currency) != 3 {
			response.Error(w, errors.BadRequestError("Currency must be a three-letter ISO 4217 code"))
			return
		}

		rate, err := h.provider.GetRate(r.Context(), currency)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, &models.RateResponse{Currency: currency, Rate: rate})
	}
}

func (h *RatesHandler) GetTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		table, err := h.provider.GetTable(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, table)
	}
}
