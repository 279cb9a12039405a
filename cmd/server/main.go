package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"vms/internal/api"
	"vms/internal/auth"
	"vms/internal/config"
	"vms/internal/db"
	"vms/internal/db/repository"
	"vms/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = config.LoadDotEnv(".env")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	writeDB, readDB, err := db.OpenSQLitePair(cfg.DBPath, 4)
	if err != nil {
		return err
	}
	defer func() {
		_ = readDB.Close()
		_ = writeDB.Close()
	}()

	if err := db.RunMigrations(writeDB); err != nil {
		return err
	}

	roleRepo := repository.NewRoleRepo(writeDB)
	userRepo := repository.NewUserRepo(writeDB)
	volunteerRepo := repository.NewVolunteerRepo(writeDB)
	eventRepo := repository.NewEventRepo(writeDB)

	// The authenticator resolves a principal on every request; point it at
	// the concurrent read pool so lookups never queue behind ledger writes.
	userDirectory := repository.NewUserRepo(readDB)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.SeedRoles(ctx, roleRepo); err != nil {
		return err
	}

	tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	authSvc := service.NewAuthService(userRepo, roleRepo, volunteerRepo, tokens, cfg.Auth.BcryptCost)
	eventSvc := service.NewEventService(eventRepo)
	registrationSvc := service.NewRegistrationService(eventRepo, volunteerRepo)
	userSvc := service.NewUserService(userRepo)
	volunteerSvc := service.NewVolunteerService(volunteerRepo)

	handler := api.NewHandler(authSvc, eventSvc, registrationSvc, userSvc, volunteerSvc,
		logger.With("component", "api"))
	router := api.NewRouter(
		handler, tokens, userDirectory,
		eventSvc.IsOrganizer, volunteerSvc.IsProfileOwner,
		cfg, logger.With("component", "http"),
	)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http api listening", "addr", cfg.ListenAddr, "db", cfg.DBPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
