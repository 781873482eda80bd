package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/latin-ecom/backoffice-manager/config"
	httpapi "github.com/latin-ecom/backoffice-manager/internal/api/http"
	"github.com/latin-ecom/backoffice-manager/internal/apisrv/auth"
	"github.com/latin-ecom/backoffice-manager/internal/auth/pwhash"
	"github.com/latin-ecom/backoffice-manager/internal/store"
	"github.com/latin-ecom/backoffice-manager/log"
)

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := log.New(&cfg.Logger)
	slog.SetDefault(logger)

	hasher, err := pwhash.New(cfg.Auth.PasswordHasherSaltSize, cfg.Auth.PasswordHasherIterations)
	if err != nil {
		return fmt.Errorf("cannot init the password hasher %v", err.Error())
	}

	memStore, err := store.New(cfg.Store, hasher.HashPassword)
	if err != nil {
		return fmt.Errorf("cannot init the store %v", err.Error())
	}

	authSrv, err := auth.New(&cfg.Auth, memStore.Users(), hasher)
	if err != nil {
		return fmt.Errorf("cannot init the auth server %v", err.Error())
	}

	srv := httpapi.New(&cfg.HTTP, memStore, authSrv)
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("cannot start the http server %v", err.Error())
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	select {
	case s := <-sigCh:
		logger.With("signal", s.String()).Warn("signal received, exiting")
		srv.Stop(ctx)
		logger.Info("application exited")
	case <-srv.Done():
		logger.Error("application exited")
	}

	return nil
}
