package handlers

import (
	"net/http"

	"github.com/solistore/digital-storefront/internal/api/middleware"
	"github.com/solistore/digital-storefront/internal/errors"
	service "github.com/solistore/digital-storefront/internal/services"
	"github.com/solistore/digital-storefront/internal/utils/response"
)

type LoyaltyHandler struct {
	loyaltyService service.LoyaltyService
}

func NewLoyaltyHandler(loyaltyService service.LoyaltyService) *LoyaltyHandler {
	return &LoyaltyHandler{loyaltyService: loyaltyService}
}

func (h *LoyaltyHandler) GetAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		account, err := h.loyaltyService.GetAccount(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, account)
	}
}
