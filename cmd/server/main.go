package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"itemkeeper/internal/app/server/api"
	"itemkeeper/internal/config"
	"itemkeeper/internal/domain/item"
	"itemkeeper/internal/domain/user"
	"itemkeeper/internal/infrastructure/storage/memory"
	"itemkeeper/internal/infrastructure/storage/snapshot"
	"itemkeeper/internal/utils/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	snap := snapshot.New(cfg.Snapshot.Path, log)

	// An absent snapshot means a first run; a malformed one is fatal.
	seed, err := snap.Load(context.Background())
	if err != nil {
		log.Error("cannot load snapshot", "path", cfg.Snapshot.Path, "error", err)
		os.Exit(1)
	}

	itemStore := memory.NewItemStore(seed, snap, log)
	userStore := memory.NewUserStore()

	itemService := item.NewService(itemStore, log)
	userService := user.NewService(userStore, user.NewBcryptHasher(), user.NewRandomIssuer(), log)

	mux := api.New(itemService, userService, log)

	srv := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", "addr", cfg.Server.RunAddress, "snapshot", cfg.Snapshot.Path)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
