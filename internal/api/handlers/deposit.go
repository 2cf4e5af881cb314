package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/solistore/digital-storefront/internal/api/middleware"
	"github.com/solistore/digital-storefront/internal/errors"
	"github.com/solistore/digital-storefront/internal/models"
	service "github.com/solistore/digital-storefront/internal/services"
	"github.com/solistore/digital-storefront/internal/utils"
	"github.com/solistore/digital-storefront/internal/utils/response"
)

type DepositHandler struct {
	depositService service.DepositService
	validator      *validator.Validate
}

func NewDepositHandler(depositService service.DepositService) *DepositHandler {
	return &DepositHandler{depositService: depositService, validator: validator.New()}
}

func (h *DepositHandler) CreateDeposit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreateDepositRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		deposit, err := h.depositService.CreateDeposit(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Deposit creation failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Deposit created", slog.String("depositId", deposit.ID.String()))
		response.Success(w, http.StatusCreated, deposit)
	}
}

func (h *DepositHandler) ListDeposits() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		deposits, err := h.depositService.ListDeposits(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, deposits)
	}
}

func (h *DepositHandler) GetBalance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		balance, err := h.depositService.GetBalance(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, balance)
	}
}

// back-office confirmation of a sighted payment
func (h *DepositHandler) UpdateDepositStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid deposit id"))
			return
		}

		var req models.UpdateDepositStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		deposit, err := h.depositService.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			logger.Error("Deposit status update failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, deposit)
	}
}
