package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/DimaSavchenko/brokerage/internal/api"
	"github.com/DimaSavchenko/brokerage/internal/repository"
	"github.com/DimaSavchenko/brokerage/internal/service"
	"github.com/DimaSavchenko/brokerage/pkg/broker"
	"github.com/DimaSavchenko/brokerage/pkg/config"
	"github.com/DimaSavchenko/brokerage/pkg/job"
	"github.com/DimaSavchenko/brokerage/pkg/logger"
	"github.com/DimaSavchenko/brokerage/pkg/postgres"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 2 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.BalanceUpdatedTopic)
	defer producer.Close()

	s := service.New(repo, producer)

	runner := job.NewRunner().
		Register("reconcile ledger", cfg.Jobs.ReconcileInterval, s.ReconcileLedger)
	runner.Start(ctx)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(repo)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
		runner.Stop()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
