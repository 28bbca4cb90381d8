package repo

import (
	"github.com/GlebRadaev/translator/internal/pg"
	transactionrepo "github.com/GlebRadaev/translator/internal/repo/transaction-repo"
	translationrepo "github.com/GlebRadaev/translator/internal/repo/translation-repo"
	userrepo "github.com/GlebRadaev/translator/internal/repo/user-repo"
	walletrepo "github.com/GlebRadaev/translator/internal/repo/wallet-repo"
	"github.com/GlebRadaev/translator/internal/service/authservice"
	"github.com/GlebRadaev/translator/internal/service/taskservice"
	"github.com/GlebRadaev/translator/internal/service/translationservice"
	"github.com/GlebRadaev/translator/internal/service/walletservice"
)

// TranslationRepo is the record store as seen by the translation flow and
// by task status lookups.
type TranslationRepo interface {
	translationservice.Repo
	taskservice.Repo
}

type Repositories struct {
	UserRepo        authservice.Repo
	WalletRepo      walletservice.WalletRepo
	TransactionRepo walletservice.TransactionRepo
	TranslationRepo TranslationRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		WalletRepo:      walletrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		TranslationRepo: translationrepo.New(conn),
	}
}
