package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/translator/internal/config"
	"github.com/GlebRadaev/translator/internal/handlers"
	"github.com/GlebRadaev/translator/internal/pg"
	"github.com/GlebRadaev/translator/internal/repo"
	"github.com/GlebRadaev/translator/internal/service"
	"github.com/GlebRadaev/translator/internal/service/translationservice"
	"github.com/GlebRadaev/translator/internal/worker"
	"github.com/GlebRadaev/translator/pkg/clients"
	"github.com/GlebRadaev/translator/pkg/logger"
	"github.com/GlebRadaev/translator/pkg/mq"
	"github.com/GlebRadaev/translator/pkg/translator"
	"github.com/GlebRadaev/translator/pkg/workerpool"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	worker *worker.Service

	dbpool *pgxpool.Pool
	rabbit *mq.RabbitMQ
	pool   *workerpool.WorkerPool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	dbpool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.dbpool = dbpool
	if err := pg.RunMigrations(dbpool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(dbpool)

	rabbit, err := mq.NewConnection(cfg.RabbitURL)
	if err != nil {
		return fmt.Errorf("can't connect to rabbitmq: %w", err)
	}
	a.rabbit = rabbit
	if err := rabbit.DeclareQueues(cfg.TaskQueue); err != nil {
		return fmt.Errorf("can't declare queues: %w", err)
	}
	publisher, err := rabbit.CreatePublisher()
	if err != nil {
		return fmt.Errorf("can't create publisher: %w", err)
	}

	conn := pg.New(dbpool)
	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(cfg, a.repo, txManager, newTranslator(cfg), publisher)
	a.api = handlers.New(a.srv)

	a.pool = workerpool.New(cfg.WorkerCount)
	consumer, err := rabbit.CreateConsumer(a.pool)
	if err != nil {
		return fmt.Errorf("can't create consumer: %w", err)
	}
	a.worker = worker.New(cfg, consumer, a.repo.TranslationRepo, a.srv.TranslationService)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startWorker(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func newTranslator(cfg *config.Config) translationservice.Translator {
	if cfg.TranslatorAddress == "" {
		zap.L().Warn("no translation engine configured, using echo engine")
		return translator.NewEchoEngine()
	}
	return translator.NewHTTPEngine(cfg.TranslatorAddress, clients.NewHTTPClient())
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startWorker(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.worker.Run(ctx); err != nil {
			a.errCh <- fmt.Errorf("task worker exited with error: %w", err)
		}
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	a.close()

	return appErr
}

// close releases resources in reverse start order. In-flight tasks finish
// before the broker connection goes away so their acks can still be sent.
func (a *Application) close() {
	if a.pool != nil {
		a.pool.Close()
	}
	if a.rabbit != nil {
		if err := a.rabbit.Close(); err != nil {
			zap.L().Error("failed to close rabbitmq connection", zap.Error(err))
		}
	}
	if a.dbpool != nil {
		a.dbpool.Close()
	}
}
