package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/translator/internal/domain"
	"github.com/GlebRadaev/translator/internal/dto"
	"github.com/GlebRadaev/translator/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func userCtx() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, 1)
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetBalance(userCtx(), 1).Return(int64(42), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Balance: 42},
		},
		{
			name: "No wallet yet",
			prepareMock: func() {
				service.EXPECT().GetBalance(userCtx(), 1).Return(int64(0), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Balance: 0},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetBalance(userCtx(), 1).Return(int64(0), errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/wallet", nil).WithContext(userCtx())
			w := httptest.NewRecorder()

			handler.GetBalance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestWalletHandlerWithoutUser(t *testing.T) {
	handler, _ := NewMock(t)

	w := httptest.NewRecorder()
	handler.GetBalance(w, httptest.NewRequest(http.MethodGet, "/api/wallet", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	handler.TopUp(w, httptest.NewRequest(http.MethodPost, "/api/wallet/topup", bytes.NewBufferString(`{"amount":1}`)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTopUpHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  string
	}{
		{
			name: "Successful top up",
			body: `{"amount":10}`,
			prepareMock: func() {
				service.EXPECT().Credit(userCtx(), 1, int64(10), domain.TransactionKindTopUp).Return(int64(15), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"balance":15}`,
		},
		{
			name:          "Invalid request body",
			body:          `{"amount":"ten"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Zero amount",
			body:          `{"amount":0}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "amount must be greater than 0",
		},
		{
			name:          "Negative amount",
			body:          `{"amount":-5}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "amount must be greater than 0",
		},
		{
			name: "Wallet service rejects amount",
			body: `{"amount":10}`,
			prepareMock: func() {
				service.EXPECT().Credit(userCtx(), 1, int64(10), domain.TransactionKindTopUp).Return(int64(0), domain.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "amount must be positive",
		},
		{
			name: "Internal server error",
			body: `{"amount":10}`,
			prepareMock: func() {
				service.EXPECT().Credit(userCtx(), 1, int64(10), domain.TransactionKindTopUp).Return(int64(0), errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/wallet/topup", bytes.NewBufferString(tt.body)).WithContext(userCtx())
			w := httptest.NewRecorder()

			handler.TopUp(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
