package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/GlebRadaev/translator/docs"
	"github.com/GlebRadaev/translator/internal/service"
	"github.com/GlebRadaev/translator/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		JWTService: auth.NewMockJWTServiceInterface(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.WalletHandler)
	assert.NotNil(t, h.TranslateHandler)
	assert.NotNil(t, h.HistoryHandler)
}

func newRouter(t *testing.T) (chi.Router, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)

	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockTranslateHandler := NewMockTranslateHandler(ctrl)
	mockHistoryHandler := NewMockHistoryHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Me(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().TopUp(gomock.Any(), gomock.Any()).AnyTimes()
	mockTranslateHandler.EXPECT().Translate(gomock.Any(), gomock.Any()).AnyTimes()
	mockTranslateHandler.EXPECT().Enqueue(gomock.Any(), gomock.Any()).AnyTimes()
	mockTranslateHandler.EXPECT().GetTask(gomock.Any(), gomock.Any()).AnyTimes()
	mockHistoryHandler.EXPECT().GetHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockHistoryHandler.EXPECT().GetTranslations(gomock.Any(), gomock.Any()).AnyTimes()
	mockHistoryHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:      mockAuthHandler,
		WalletHandler:    mockWalletHandler,
		TranslateHandler: mockTranslateHandler,
		HistoryHandler:   mockHistoryHandler,
		jwtService:       jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)
	return router, jwtService
}

var protectedRoutes = []struct {
	method string
	url    string
}{
	{"GET", "/api/auth/me"},
	{"GET", "/api/wallet"},
	{"POST", "/api/wallet/topup"},
	{"POST", "/api/translate"},
	{"POST", "/api/translate/queue"},
	{"GET", "/api/translate/task/abc"},
	{"GET", "/api/history"},
	{"GET", "/api/history/translations"},
	{"GET", "/api/history/transactions"},
}

func TestInitRoutes(t *testing.T) {
	router, jwtService := newRouter(t)
	jwtService.EXPECT().ValidateToken("bad").Return(nil, errors.New("invalid")).AnyTimes()

	public := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"GET", "/metrics", http.StatusOK},
		{"GET", "/api/unknown", http.StatusNotFound},
	}
	for _, tt := range public {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}

	for _, tt := range protectedRoutes {
		t.Run("no token "+tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
		t.Run("bad token "+tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer bad")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInitRoutesAuthorized(t *testing.T) {
	router, jwtService := newRouter(t)
	jwtService.EXPECT().ValidateToken("good").Return(&auth.Claims{UserID: 1}, nil).Times(len(protectedRoutes))

	for _, tt := range protectedRoutes {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer good")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
