package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/translator/docs"
	authhandlers "github.com/GlebRadaev/translator/internal/handlers/auth"
	historyhandlers "github.com/GlebRadaev/translator/internal/handlers/history"
	translatehandlers "github.com/GlebRadaev/translator/internal/handlers/translate"
	wallethandlers "github.com/GlebRadaev/translator/internal/handlers/wallet"
	"github.com/GlebRadaev/translator/internal/service"
	"github.com/GlebRadaev/translator/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	TopUp(w http.ResponseWriter, r *http.Request)
}

type TranslateHandler interface {
	Translate(w http.ResponseWriter, r *http.Request)
	Enqueue(w http.ResponseWriter, r *http.Request)
	GetTask(w http.ResponseWriter, r *http.Request)
}

type HistoryHandler interface {
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetTranslations(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	WalletHandler    WalletHandler
	TranslateHandler TranslateHandler
	HistoryHandler   HistoryHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		WalletHandler:    wallethandlers.New(s.WalletService),
		TranslateHandler: translatehandlers.New(s.TranslationService, s.TaskService),
		HistoryHandler:   historyhandlers.New(s.HistoryService, s.TranslationService, s.WalletService),
		jwtService:       s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Get("/auth/me", h.AuthHandler.Me)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetBalance)
				r.Post("/topup", h.WalletHandler.TopUp)
			})
			r.Route("/translate", func(r chi.Router) {
				r.Post("/", h.TranslateHandler.Translate)
				r.Post("/queue", h.TranslateHandler.Enqueue)
				r.Get("/task/{taskID}", h.TranslateHandler.GetTask)
			})
			r.Route("/history", func(r chi.Router) {
				r.Get("/", h.HistoryHandler.GetHistory)
				r.Get("/translations", h.HistoryHandler.GetTranslations)
				r.Get("/transactions", h.HistoryHandler.GetTransactions)
			})
		})
	})

	return r
}
