package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/solistore/digital-storefront/internal/api/handlers"
	appErrors "github.com/solistore/digital-storefront/internal/errors"
	"github.com/solistore/digital-storefront/internal/models"
	"github.com/solistore/digital-storefront/internal/services/mocks"
	"github.com/solistore/digital-storefront/internal/testutils"
	"github.com/solistore/digital-storefront/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserHandler_Register(t *testing.T) {
	mockUserService := mocks.NewMockUserService(t)
	userHandler := handlers.NewUserHandler(mockUserService)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		registerReq := &models.RegisterRequest{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "P@ssword123!",
		}
		reqBody, _ := json.Marshal(registerReq)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register", bytes.NewBuffer(reqBody), nil)
		w := httptest.NewRecorder()

		createdUser := &models.User{
			ID:    uuid.New(),
			Name:  registerReq.Name,
			Email: registerReq.Email,
			Role:  models.RoleCustomer,
		}
		mockUserService.On("Register", mock.Anything, mock.MatchedBy(func(r *models.RegisterRequest) bool {
			return r.Email == registerReq.Email
		})).Return(createdUser, nil).Once()

		// Act
		userHandler.Register()(w, req)

		// Assert
		assert.Equal(t, http.StatusCreated, w.Code)

		var respBody response.APIResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
		assert.True(t, respBody.Success)

		jsonData, _ := json.Marshal(respBody.Data)
		var extracted models.User
		assert.NoError(t, json.Unmarshal(jsonData, &extracted))
		assert.Equal(t, createdUser.ID, extracted.ID)
		assert.Equal(t, createdUser.Email, extracted.Email)
	})

	t.Run("Failure - Invalid Input", func(t *testing.T) {
		// Arrange
		invalid := map[string]any{"email": "not-an-email"}
		reqBody, _ := json.Marshal(invalid)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register", bytes.NewBuffer(reqBody), nil)
		w := httptest.NewRecorder()

		// Act
		userHandler.Register()(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var respBody response.APIResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
		assert.False(t, respBody.Success)
		assert.Equal(t, appErrors.ErrCodeValidation, respBody.Error.Code)
	})

	t.Run("Failure - Duplicate Email", func(t *testing.T) {
		// Arrange
		registerReq := &models.RegisterRequest{Name: "Test User", Email: "taken@example.com", Password: "P@ssword123!"}
		reqBody, _ := json.Marshal(registerReq)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register", bytes.NewBuffer(reqBody), nil)
		w := httptest.NewRecorder()

		mockUserService.On("Register", mock.Anything, mock.AnythingOfType("*models.RegisterRequest")).
			Return(nil, appErrors.DuplicateEntryError("Email already registered")).Once()

		// Act
		userHandler.Register()(w, req)

		// Assert
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	mockUserService := mocks.NewMockUserService(t)
	userHandler := handlers.NewUserHandler(mockUserService)

	loginReq := &models.LoginRequest{Email: "test@example.com", Password: "P@ssword123!"}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		reqBody, _ := json.Marshal(loginReq)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/login", bytes.NewBuffer(reqBody), nil)
		w := httptest.NewRecorder()

		mockUserService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
			Return(&models.LoginResponse{Success: true, Token: "signed.jwt.token", ExpiresIn: 86400}, nil).Once()

		// Act
		userHandler.Login()(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)

		var respBody response.APIResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
		assert.True(t, respBody.Success)
	})

	t.Run("Failure - Wrong Credentials", func(t *testing.T) {
		// Arrange
		reqBody, _ := json.Marshal(loginReq)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/login", bytes.NewBuffer(reqBody), nil)
		w := httptest.NewRecorder()

		mockUserService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
			Return(&models.LoginResponse{Success: false, Message: "Invalid email or password", RemainingTries: 3}, nil).Once()

		// Act
		userHandler.Login()(w, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var result models.LoginResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.False(t, result.Success)
		assert.Equal(t, 3, result.RemainingTries)
	})

	t.Run("Failure - Rate Limited", func(t *testing.T) {
		// Arrange
		reqBody, _ := json.Marshal(loginReq)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/login", bytes.NewBuffer(reqBody), nil)
		w := httptest.NewRecorder()

		mockUserService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
			Return(&models.LoginResponse{Success: false, RetryAfter: 42}, nil).Once()

		// Act
		userHandler.Login()(w, req)

		// Assert
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})
}

func TestUserHandler_Profile(t *testing.T) {
	mockUserService := mocks.NewMockUserService(t)
	userHandler := handlers.NewUserHandler(mockUserService)
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/users/profile", nil, userID, nil)
		w := httptest.NewRecorder()

		mockUserService.On("GetUserByID", mock.Anything, userID).
			Return(&models.User{ID: userID, Email: "test@example.com"}, nil).Once()

		// Act
		userHandler.Profile()(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failure - Missing Claims", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/users/profile", nil, nil)
		w := httptest.NewRecorder()

		// Act
		userHandler.Profile()(w, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
