package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pkamnerd/linkdesk/pkg/adapters/handler"
	"github.com/pkamnerd/linkdesk/pkg/adapters/repository/sqlite"
	"github.com/pkamnerd/linkdesk/pkg/config"
	"github.com/pkamnerd/linkdesk/pkg/core/services"
	"github.com/pkamnerd/linkdesk/pkg/logger"
)

func main() {
	cfg := config.Load("shorturl")
	zl := logger.New(cfg.Service, cfg.LogFile)
	defer zl.Sync()

	repo, err := sqlite.NewLinkRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	service := services.NewLinkService(repo)

	links, clicks, err := service.Summary(context.Background())
	if err != nil {
		log.Fatalf("Failed to read database summary: %v", err)
	}
	zl.Info("database initialized",
		zap.String("database_url", cfg.DatabaseURL),
		zap.Int64("total_links", links),
		zap.Int64("total_clicks", clicks),
	)

	mux := handler.NewShortURLRouter(service, cfg.BaseURL, zl)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	zl.Info("server starting", zap.String("port", cfg.Port))
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
