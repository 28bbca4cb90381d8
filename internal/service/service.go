package service

import (
	"github.com/GlebRadaev/translator/internal/config"
	"github.com/GlebRadaev/translator/internal/pg"
	"github.com/GlebRadaev/translator/internal/repo"
	"github.com/GlebRadaev/translator/internal/service/authservice"
	"github.com/GlebRadaev/translator/internal/service/historyservice"
	"github.com/GlebRadaev/translator/internal/service/taskservice"
	"github.com/GlebRadaev/translator/internal/service/translationservice"
	"github.com/GlebRadaev/translator/internal/service/walletservice"
	pkgauth "github.com/GlebRadaev/translator/pkg/auth"
)

type Services struct {
	AuthService        *authservice.Service
	WalletService      *walletservice.Service
	TranslationService *translationservice.Service
	TaskService        *taskservice.Service
	HistoryService     *historyservice.Service
	JWTService         pkgauth.JWTServiceInterface
}

func New(
	cfg *config.Config,
	repo *repo.Repositories,
	txManager pg.TXManager,
	translator translationservice.Translator,
	publisher taskservice.Publisher,
) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	walletService := walletservice.New(repo.WalletRepo, repo.TransactionRepo, txManager)

	return &Services{
		AuthService:        authservice.New(repo.UserRepo, pkgauth.NewHashService(0), jwtService, cfg.TokenTTL),
		WalletService:      walletService,
		TranslationService: translationservice.New(repo.TranslationRepo, walletService, translator, cfg.TranslationFee),
		TaskService:        taskservice.New(repo.TranslationRepo, publisher, cfg.TaskQueue),
		HistoryService:     historyservice.New(repo.TranslationRepo, repo.TransactionRepo),
		JWTService:         jwtService,
	}
}
