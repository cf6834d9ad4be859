package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moldovancsaba/fancamera-sub002/internal/config"
	"github.com/moldovancsaba/fancamera-sub002/internal/server"
	"github.com/moldovancsaba/fancamera-sub002/pkg/logger"
)

func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	sugar := log.Sugar()

	cfg, err := config.Load()
	if err != nil {
		sugar.Fatal("Failed to load config: ", err)
	}

	srv, err := server.New(cfg, log)
	if err != nil {
		sugar.Fatal("Failed to create server: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Run(); err != nil {
			sugar.Error("Server failed: ", err)
		}
	}()

	<-ctx.Done()

	sugar.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Error("Server forced to shutdown: ", err)
	}

	sugar.Info("Server exited")
}
