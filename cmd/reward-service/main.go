package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/app/background"
	"github.com/adcoin/adcoin-reward-service/internal/app/setup"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/migrate"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}

	if deps.Config.RewardDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(deps.DB, deps.Config.RewardDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	usecases, err := setup.InitializeUseCases(deps)
	if err != nil {
		log.Fatalf("failed to init usecases: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tasks := background.NewBackgroundTasks(
		usecases.IngestUsecase,
		time.Duration(deps.Config.Ingest.PollIntervalSeconds)*time.Second,
	)
	tasks.StartAll(ctx)

	http.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf("%s:%s", deps.Config.HTTPServer.Host, deps.Config.HTTPServer.Port)

	server := &http.Server{Addr: addr}
	go func() {
		log.Printf("metrics server started on %s\n", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v\n", err)
	}
}
