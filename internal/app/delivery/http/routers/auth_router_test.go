package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"preplan-service/internal/app/config"
	"preplan-service/internal/app/delivery/http/middlewares"
	"preplan-service/internal/app/services/core/auth"
	"preplan-service/internal/pkg/dto/requests"
	"preplan-service/internal/pkg/dto/responses"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.RegisterUser), args.Error(1)
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.LoginUser), args.Error(1)
}

func (m *MockAuthUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	args := m.Called(ctx, sessionData)
	return args.Error(0)
}

func TestAuthRouter_Register(t *testing.T) {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret"},
	}

	mockAuthUsecase := new(MockAuthUsecase)
	authController := auth.NewAuthController(logger, mockAuthUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachAuthRoutes(router, middlewareInstance, authController)

	t.Run("Register with a valid payload", func(t *testing.T) {
		mockAuthUsecase.On("RegisterUser", mock.Anything, mock.AnythingOfType("*requests.RegisterUser")).Return(&responses.RegisterUser{
			UserID: "user-1",
			Email:  "rafi@g.bracu.ac.bd",
		}, nil)

		requestBody := requests.RegisterUser{
			Email:          "rafi@g.bracu.ac.bd",
			FullName:       "Rafiul Islam",
			StudentID:      "21101234",
			Password:       "Str0ng!Pass",
			RetypePassword: "Str0ng!Pass",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("Register with a weak password fails validation", func(t *testing.T) {
		requestBody := requests.RegisterUser{
			Email:          "rafi@g.bracu.ac.bd",
			FullName:       "Rafiul Islam",
			Password:       "weakpass",
			RetypePassword: "weakpass",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Logout without a token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/logout", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
