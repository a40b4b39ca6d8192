package main

import (
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
	cfg := config.Load("todo")
	zl := logger.New(cfg.Service, cfg.LogFile)
	defer zl.Sync()

	repo, err := sqlite.NewTaskRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	service := services.NewTaskService(repo)
	zl.Info("database initialized", zap.String("database_url", cfg.DatabaseURL))

	mux := handler.NewTodoRouter(service, zl)

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
