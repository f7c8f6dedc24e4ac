// Package server initializes and runs the auth server: it loads
// configuration, connects storage, wires the auth service, and starts the
// gRPC endpoint with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mkorchagin/authsvc/internal/logging"
	"github.com/mkorchagin/authsvc/internal/server/auth"
	"github.com/mkorchagin/authsvc/internal/server/config"
	"github.com/mkorchagin/authsvc/internal/server/db"
	gs "github.com/mkorchagin/authsvc/internal/server/grpc"
	"github.com/mkorchagin/authsvc/internal/server/services"
	"github.com/mkorchagin/authsvc/internal/server/token"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	store       *db.PostgresStore
	authService *services.AuthService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	store, err := db.NewPostgresStore(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	as := services.NewAuthService(
		store.Users(),
		auth.NewHasher(cfg.BcryptCost),
		token.NewCodec([]byte(cfg.SecretKey), cfg.TokenTTL),
		logger,
	)

	return &App{config: cfg, logger: logger, store: store, authService: as}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err.Error())
	}
}
