package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"properlyapi/internal/config"
	apphttp "properlyapi/internal/http"
	"properlyapi/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	client, err := store.NewClient(ctx, cfg.AWSRegion, cfg.DynamoEndpoint)
	if err != nil {
		slog.Error("create dynamodb client", "error", err)
		os.Exit(1)
	}

	repos := store.NewRepositories(client, store.Tables{
		Homes:            cfg.HomesTable,
		Authors:          cfg.AuthorsTable,
		Books:            cfg.BooksTable,
		BooksAuthorIndex: cfg.BooksAuthorIndex,
	})

	mux := apphttp.NewRouter(
		apphttp.NewHomeHandler(repos.Homes),
		apphttp.NewAuthorHandler(repos.Authors),
		apphttp.NewBookHandler(repos.Books),
	)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("starting server", "addr", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
